package cmd

import (
	"pot-portal/feature/payment"

	"github.com/spf13/cobra"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List supporter packs",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		packs, err := payment.NewService(a.client).GetSupporterPacks(cmd.Context())
		if err != nil {
			return err
		}
		return a.printer.Print(packs)
	}),
}

func init() {
	RootCmd.AddCommand(packsCmd)
}
