package payment_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"pot-portal/core/api"
	"pot-portal/core/api/apitest"
	"pot-portal/feature/payment"
	"pot-portal/feature/payment/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSupporterPacks(t *testing.T) {
	srv := apitest.NewServer(t).JSON(http.MethodGet, "Payments/SupporterProducts", `[
	  {"id":"sub","name":"Patron","description":"Monthly","type":"Subscription","price":4.99,"marketingFeatures":["Badge","Colour"]},
	  {"id":"free","name":"Fan","description":"Thanks","type":"OneTime"}
	]`)
	svc := payment.NewService(srv.Client(t))

	packs, err := svc.GetSupporterPacks(context.Background())
	require.NoError(t, err)
	require.Len(t, packs, 2)

	assert.Equal(t, models.PackTypeSubscription, packs[0].Type)
	require.NotNil(t, packs[0].Price)
	assert.InDelta(t, 4.99, *packs[0].Price, 0.0001)
	assert.Nil(t, packs[1].Price)
	assert.Equal(t, models.PackTypeOneTime, packs[1].Type)

	table := packs.Table()
	assert.Equal(t, []string{"sub", "Patron", "Subscription", "4.99", "Badge, Colour"}, table.Rows[0])
	assert.Equal(t, "-", table.Rows[1][3])
}

func TestGetSupporterPacks_ServerError(t *testing.T) {
	srv := apitest.NewServer(t).Handle(http.MethodGet, "Payments/SupporterProducts",
		apitest.Route{Status: http.StatusInternalServerError, Body: `{"title":"boom"}`})
	svc := payment.NewService(srv.Client(t))

	packs, err := svc.GetSupporterPacks(context.Background())
	assert.Nil(t, packs)
	assert.True(t, errors.Is(err, api.ErrServer))
	assert.Equal(t, api.KindServer, api.KindOf(err))
}
