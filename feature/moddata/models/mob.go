package models

import (
	"strconv"

	"pot-portal/core/output"
)

// MobData is the spawn configuration of one mob type.
type MobData struct {
	FriendlyName string     `json:"friendlyName" yaml:"friendlyName"`
	NetID        int        `json:"netId" yaml:"netId"`
	Entries      []MobEntry `json:"entries" yaml:"entries"`
}

// MobEntry is one weighted variant of a mob.
type MobEntry struct {
	Scale        *float64   `json:"scale,omitempty" yaml:"scale,omitempty"`
	Prefix       string     `json:"prefix" yaml:"prefix"`
	Weight       float64    `json:"weight" yaml:"weight"`
	Stats        MobStats   `json:"stats" yaml:"stats"`
	Affixes      []MobAffix `json:"affixes" yaml:"affixes"`
	Requirements string     `json:"requirements" yaml:"requirements"`
}

// MobStats holds level and experience reward.
type MobStats struct {
	Level      int `json:"level" yaml:"level"`
	Experience int `json:"experience" yaml:"experience"`
}

// MobAffix names an affix rolled on the mob.
type MobAffix struct {
	Name string `json:"name" yaml:"name"`
}

// MobDataList is a list view of mobs.
type MobDataList []MobData

// Table implements output.Tabular.
func (m MobDataList) Table() output.Table {
	t := output.Table{Headers: []string{"net id", "name", "entries"}}
	for _, mob := range m {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(mob.NetID),
			mob.FriendlyName,
			strconv.Itoa(len(mob.Entries)),
		})
	}
	return t
}

// ArchiveEntry is one file inside an export archive.
type ArchiveEntry struct {
	Name string `json:"name" yaml:"name"`
	Size uint64 `json:"size" yaml:"size"`
}

// ArchiveEntries is a list view of archive members.
type ArchiveEntries []ArchiveEntry

// Table implements output.Tabular.
func (a ArchiveEntries) Table() output.Table {
	t := output.Table{Headers: []string{"name", "size"}}
	for _, e := range a {
		t.Rows = append(t.Rows, []string{e.Name, strconv.FormatUint(e.Size, 10)})
	}
	return t
}
