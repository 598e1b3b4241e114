package models

import (
	"strconv"
	"strings"

	"pot-portal/core/output"
)

// PackType is how a supporter pack is billed.
type PackType string

const (
	PackTypeSubscription PackType = "Subscription"
	PackTypeOneTime      PackType = "OneTime"
)

// LeaguePack is a supporter product offered on the store page.
type LeaguePack struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	Description       string   `json:"description" yaml:"description"`
	Type              PackType `json:"type" yaml:"type"`
	Price             *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	MarketingFeatures []string `json:"marketingFeatures,omitempty" yaml:"marketingFeatures,omitempty"`
}

// PriceLabel renders the price, or "-" when the pack has none.
func (p LeaguePack) PriceLabel() string {
	if p.Price == nil {
		return "-"
	}
	return strconv.FormatFloat(*p.Price, 'f', 2, 64)
}

// LeaguePacks is a list view of supporter packs.
type LeaguePacks []LeaguePack

// Table implements output.Tabular.
func (p LeaguePacks) Table() output.Table {
	t := output.Table{Headers: []string{"id", "name", "type", "price", "features"}}
	for _, pack := range p {
		t.Rows = append(t.Rows, []string{
			pack.ID,
			pack.Name,
			string(pack.Type),
			pack.PriceLabel(),
			strings.Join(pack.MarketingFeatures, ", "),
		})
	}
	return t
}
