package models

import (
	"fmt"
	"strconv"

	"pot-portal/core/output"
)

// Currency is the shard a listing is priced in.
type Currency int

const (
	GlitteringShard Currency = iota
	UnfoldingShard
	GlimmeringShard
	LimpidShard
	RadiantShard
	EchoingShard
	CorruptionShard
)

var currencyNames = []string{
	"GlitteringShard",
	"UnfoldingShard",
	"GlimmeringShard",
	"LimpidShard",
	"RadiantShard",
	"EchoingShard",
	"CorruptionShard",
}

func (c Currency) String() string {
	if c < 0 || int(c) >= len(currencyNames) {
		return fmt.Sprintf("Currency(%d)", int(c))
	}
	return currencyNames[c]
}

// Rarity is the rarity tier of an item.
type Rarity int

const (
	Normal Rarity = iota
	Magic
	Rare
	Unique
)

var rarityNames = []string{"Normal", "Magic", "Rare", "Unique"}

func (r Rarity) String() string {
	if r < 0 || int(r) >= len(rarityNames) {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// ParseRarity accepts a rarity name (case sensitive) or its number.
func ParseRarity(s string) (Rarity, error) {
	for i, name := range rarityNames {
		if s == name {
			return Rarity(i), nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= len(rarityNames) {
		return 0, fmt.Errorf("unknown rarity %q", s)
	}
	return Rarity(n), nil
}

// TradeListing is an item offered for sale.
type TradeListing struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Currency    Currency `json:"currency" yaml:"currency"`
	Amount      int      `json:"amount" yaml:"amount"`
	Note        string   `json:"note" yaml:"note"`
	ItemData    ItemData `json:"itemData" yaml:"itemData"`
	IsCorrupted bool     `json:"isCorrupted" yaml:"isCorrupted"`
	IsMirrored  bool     `json:"isMirrored" yaml:"isMirrored"`
}

// ItemData describes the listed item.
type ItemData struct {
	Name       string      `json:"name" yaml:"name"`
	Rarity     Rarity      `json:"rarity" yaml:"rarity"`
	Properties []ItemAffix `json:"properties" yaml:"properties"`
}

// ItemAffix is one rolled affix on an item.
type ItemAffix struct {
	Name             string  `json:"name" yaml:"name"`
	Value            float64 `json:"value" yaml:"value"`
	AffixTier        int     `json:"affixTier" yaml:"affixTier"`
	IsCorruptedAffix bool    `json:"isCorruptedAffix" yaml:"isCorruptedAffix"`
}

// TradeListings is a list view of listings.
type TradeListings []TradeListing

// Table implements output.Tabular.
func (l TradeListings) Table() output.Table {
	t := output.Table{Headers: []string{"id", "item", "rarity", "price", "affixes", "corrupted", "mirrored"}}
	for _, listing := range l {
		t.Rows = append(t.Rows, []string{
			listing.ID,
			listing.ItemData.Name,
			listing.ItemData.Rarity.String(),
			fmt.Sprintf("%d %s", listing.Amount, listing.Currency),
			strconv.Itoa(len(listing.ItemData.Properties)),
			strconv.FormatBool(listing.IsCorrupted),
			strconv.FormatBool(listing.IsMirrored),
		})
	}
	return t
}
