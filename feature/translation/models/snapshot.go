package models

import "time"

// Snapshot is a locally stored copy of a backend entry, used for offline imports.
type Snapshot struct {
	ID        uint   `gorm:"primaryKey"`
	Language  string `gorm:"size:32;index:idx_snapshot_lang_key,unique"`
	Key       string `gorm:"size:512;index:idx_snapshot_lang_key,unique"`
	Category  string `gorm:"size:128"`
	EntryID   string `gorm:"size:64"`
	Value     string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName implements gorm's tabler.
func (Snapshot) TableName() string {
	return "translation_snapshots"
}
