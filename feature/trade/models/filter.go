package models

import "pot-portal/core/utils"

// GearFilter narrows the trade listing search. Nil and empty fields are not sent.
type GearFilter struct {
	Name          string
	TypeName      string
	Rarity        *Rarity
	Type          *int
	IsCorrupted   *bool
	IsMirrored    *bool
	MinStack      *int
	MaxStack      *int
	AffixName     string
	AffixMinTier  *int
	AffixMinValue *float64
}

// Query builds the filter's query parameters in the order the backend documents them.
func (f GearFilter) Query() *utils.Query {
	q := new(utils.Query)
	if f.Name != "" {
		q.Add("Name", f.Name)
	}
	if f.TypeName != "" {
		q.Add("TypeName", f.TypeName)
	}
	if f.Rarity != nil {
		q.Add("Rarity", int(*f.Rarity))
	}
	q.Add("Type", f.Type)
	q.Add("IsCorrupted", f.IsCorrupted)
	q.Add("IsMirrored", f.IsMirrored)
	q.Add("MinStack", f.MinStack)
	q.Add("MaxStack", f.MaxStack)
	if f.AffixName != "" {
		q.Add("AffixName", f.AffixName)
	}
	q.Add("AffixMinTier", f.AffixMinTier)
	q.Add("AffixMinValue", f.AffixMinValue)
	return q
}
