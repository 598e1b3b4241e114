package models

import (
	"strconv"

	"pot-portal/core/output"
)

// Player is a character registered to an account.
type Player struct {
	ID    string      `json:"id" yaml:"id"`
	Name  string      `json:"name" yaml:"name"`
	Stats PlayerStats `json:"stats" yaml:"stats"`
}

// PlayerStats holds the progression of a character.
type PlayerStats struct {
	Experience   int    `json:"experience" yaml:"experience"`
	Level        int    `json:"level" yaml:"level"`
	Class        string `json:"class" yaml:"class"`
	Strength     int    `json:"strength" yaml:"strength"`
	Dexterity    int    `json:"dexterity" yaml:"dexterity"`
	Intelligence int    `json:"intelligence" yaml:"intelligence"`
}

// Players is a list view of characters.
type Players []Player

// Table implements output.Tabular.
func (p Players) Table() output.Table {
	t := output.Table{Headers: []string{"id", "name", "class", "level", "experience"}}
	for _, pl := range p {
		t.Rows = append(t.Rows, []string{
			pl.ID,
			pl.Name,
			pl.Stats.Class,
			strconv.Itoa(pl.Stats.Level),
			strconv.Itoa(pl.Stats.Experience),
		})
	}
	return t
}

// Table implements output.Tabular.
func (p Player) Table() output.Table {
	return output.Table{
		Headers: []string{"field", "value"},
		Rows: [][]string{
			{"id", p.ID},
			{"name", p.Name},
			{"class", p.Stats.Class},
			{"level", strconv.Itoa(p.Stats.Level)},
			{"experience", strconv.Itoa(p.Stats.Experience)},
			{"strength", strconv.Itoa(p.Stats.Strength)},
			{"dexterity", strconv.Itoa(p.Stats.Dexterity)},
			{"intelligence", strconv.Itoa(p.Stats.Intelligence)},
		},
	}
}
