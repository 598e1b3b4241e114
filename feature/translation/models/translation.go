package models

import (
	"pot-portal/core/output"
)

// TranslationEntry is one localized string stored by the backend.
// ID is empty for entries that have not been created yet.
type TranslationEntry struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Category string `json:"category" yaml:"category"`
	Key      string `json:"key" yaml:"key"`
	Language string `json:"language" yaml:"language"`
	Value    string `json:"value" yaml:"value"`
}

// EnglishTranslation is a canonical English string.
type EnglishTranslation struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// TranslationEntries is a list view of entries.
type TranslationEntries []TranslationEntry

// Table implements output.Tabular.
func (e TranslationEntries) Table() output.Table {
	t := output.Table{Headers: []string{"id", "category", "key", "value"}}
	for _, entry := range e {
		t.Rows = append(t.Rows, []string{entry.ID, entry.Category, entry.Key, entry.Value})
	}
	return t
}
