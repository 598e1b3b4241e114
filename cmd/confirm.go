package cmd

import (
	"fmt"
	"os"
	"strings"
)

// confirmAction prompts for confirmation unless yes is set.
func confirmAction(yes bool, prompt string) bool {
	if yes {
		fmt.Fprintln(os.Stderr, "\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprintf(os.Stderr, "\n⚠️  %s Type 'yes' to confirm: ", prompt)
	response, err := stdin.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
