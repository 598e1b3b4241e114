package trade_test

import (
	"context"
	"net/http"
	"testing"

	"pot-portal/core/api/apitest"
	"pot-portal/feature/trade"
	"pot-portal/feature/trade/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const listingsJSON = `[{
  "id":"t1","currency":4,"amount":12,"note":"fast",
  "itemData":{"name":"Iron Sword","rarity":2,"properties":[{"name":"Sharp","value":3.5,"affixTier":2,"isCorruptedAffix":false}]},
  "isCorrupted":true,"isMirrored":false
}]`

func ptr[T any](v T) *T { return &v }

func TestGetTradeListings(t *testing.T) {
	srv := apitest.NewServer(t).JSON(http.MethodGet, "TradeListing", listingsJSON)
	svc := trade.NewService(srv.Client(t), zap.NewNop())

	listings, err := svc.GetTradeListings(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)

	l := listings[0]
	assert.Equal(t, models.RadiantShard, l.Currency)
	assert.Equal(t, models.Rare, l.ItemData.Rarity)
	assert.Equal(t, 2, l.ItemData.Properties[0].AffixTier)
	assert.True(t, l.IsCorrupted)

	assert.Equal(t, []string{"t1", "Iron Sword", "Rare", "12 RadiantShard", "1", "true", "false"}, listings.Table().Rows[0])
}

func TestGetFilteredTrades(t *testing.T) {
	tests := []struct {
		name   string
		filter models.GearFilter
		query  string
	}{
		{"Empty", models.GearFilter{}, ""},
		{"NameOnly", models.GearFilter{Name: "Iron Sword"}, "Name=Iron+Sword"},
		{
			"ZeroValuesAreSent",
			models.GearFilter{Rarity: ptr(models.Normal), IsCorrupted: ptr(false), MinStack: ptr(0)},
			"Rarity=0&IsCorrupted=false&MinStack=0",
		},
		{
			"AllFieldsInOrder",
			models.GearFilter{
				AffixMinValue: ptr(2.5),
				AffixMinTier:  ptr(1),
				AffixName:     "Sharp",
				MaxStack:      ptr(10),
				MinStack:      ptr(1),
				IsMirrored:    ptr(true),
				IsCorrupted:   ptr(false),
				Type:          ptr(3),
				Rarity:        ptr(models.Unique),
				TypeName:      "Sword",
				Name:          "Blade",
			},
			"Name=Blade&TypeName=Sword&Rarity=3&Type=3&IsCorrupted=false&IsMirrored=true&MinStack=1&MaxStack=10&AffixName=Sharp&AffixMinTier=1&AffixMinValue=2.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := apitest.NewServer(t).JSON(http.MethodGet, "TradeListing/Filter", listingsJSON)
			svc := trade.NewService(srv.Client(t), zap.NewNop())

			listings, err := svc.GetFilteredTrades(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Len(t, listings, 1)
			assert.Equal(t, tt.query, srv.Last().Query)
		})
	}
}

func TestRequestTradeListingSold(t *testing.T) {
	srv := apitest.NewServer(t).JSON(http.MethodPost, "TradeListing/t1/RequestSold", "")
	svc := trade.NewService(srv.Client(t), zap.NewNop())

	require.NoError(t, svc.RequestTradeListingSold(context.Background(), "t1", "76561198000000000"))
	assert.JSONEq(t, `{"buyerSteamId":"76561198000000000"}`, srv.Last().Body)
}

func TestParseRarity(t *testing.T) {
	r, err := models.ParseRarity("Magic")
	require.NoError(t, err)
	assert.Equal(t, models.Magic, r)

	r, err = models.ParseRarity("3")
	require.NoError(t, err)
	assert.Equal(t, models.Unique, r)

	_, err = models.ParseRarity("Legendary")
	assert.Error(t, err)
}

func TestCurrencyString(t *testing.T) {
	assert.Equal(t, "GlitteringShard", models.GlitteringShard.String())
	assert.Equal(t, "CorruptionShard", models.CorruptionShard.String())
	assert.Equal(t, "Currency(9)", models.Currency(9).String())
}
