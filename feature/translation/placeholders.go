package translation

import (
	"regexp"
	"slices"
)

var placeholderPattern = regexp.MustCompile(`\{\d+\}`)

// placeholders returns the distinct positional placeholders in s, sorted.
func placeholders(s string) []string {
	found := placeholderPattern.FindAllString(s, -1)
	slices.Sort(found)
	return slices.Compact(found)
}
