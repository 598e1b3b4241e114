package models

import (
	"fmt"
	"strconv"
	"strings"

	"pot-portal/core/output"
	"pot-portal/core/reconcile"
)

// ImportResult is the outcome of importing one localization file.
type ImportResult struct {
	Language string             `json:"language" yaml:"language"`
	Category string             `json:"category" yaml:"category"`
	Entries  []TranslationEntry `json:"entries" yaml:"entries"`
	Stats    reconcile.Stats    `json:"stats" yaml:"stats"`
	// Created counts entries accepted by the backend; zero for dry runs.
	Created int  `json:"created" yaml:"created"`
	Applied bool `json:"applied" yaml:"applied"`
}

// Table implements output.Tabular.
func (r ImportResult) Table() output.Table {
	t := output.Table{Headers: []string{"key", "value"}}
	for _, e := range r.Entries {
		t.Rows = append(t.Rows, []string{e.Key, e.Value})
	}
	return t
}

// Summary is a one-line description of the import.
func (r ImportResult) Summary() string {
	mode := "dry run"
	if r.Applied {
		mode = fmt.Sprintf("created %d", r.Created)
	}
	return fmt.Sprintf("%s/%s: %d total, %d new, %d existing (%s)",
		r.Language, r.Category, r.Stats.Total, r.Stats.Added, r.Stats.Skipped, mode)
}

// PlaceholderMismatch is a key whose translated value uses different
// positional placeholders than the English original.
type PlaceholderMismatch struct {
	Key      string   `json:"key" yaml:"key"`
	Expected []string `json:"expected" yaml:"expected"`
	Found    []string `json:"found" yaml:"found"`
}

// CoverageReport compares a language against the English strings.
type CoverageReport struct {
	Language              string                `json:"language" yaml:"language"`
	EnglishTotal          int                   `json:"english_total" yaml:"english_total"`
	Translated            int                   `json:"translated" yaml:"translated"`
	Missing               []string              `json:"missing" yaml:"missing"`
	Orphans               []string              `json:"orphans" yaml:"orphans"`
	PlaceholderMismatches []PlaceholderMismatch `json:"placeholder_mismatches" yaml:"placeholder_mismatches"`
}

// Coverage returns the translated share of English keys in percent.
func (r CoverageReport) Coverage() float64 {
	if r.EnglishTotal == 0 {
		return 100
	}
	return float64(r.Translated) * 100 / float64(r.EnglishTotal)
}

// Table implements output.Tabular.
func (r CoverageReport) Table() output.Table {
	t := output.Table{Headers: []string{"issue", "key", "detail"}}
	for _, k := range r.Missing {
		t.Rows = append(t.Rows, []string{"missing", k, ""})
	}
	for _, k := range r.Orphans {
		t.Rows = append(t.Rows, []string{"orphan", k, ""})
	}
	for _, m := range r.PlaceholderMismatches {
		t.Rows = append(t.Rows, []string{
			"placeholder",
			m.Key,
			"expected " + strings.Join(m.Expected, " ") + ", found " + strings.Join(m.Found, " "),
		})
	}
	t.Rows = append(t.Rows, []string{"coverage", r.Language, strconv.FormatFloat(r.Coverage(), 'f', 1, 64) + "%"})
	return t
}
