package trade

import (
	"context"
	"fmt"

	"pot-portal/core/api"
	"pot-portal/core/utils"
	"pot-portal/feature/trade/models"

	"go.uber.org/zap"
)

// Service handles trade listing operations.
type Service struct {
	client api.Requester
	logger *zap.Logger
}

// NewService creates a new trade service.
func NewService(client api.Requester, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// GetTradeListings returns every active listing.
func (s *Service) GetTradeListings(ctx context.Context) (models.TradeListings, error) {
	return s.list(ctx, "TradeListing")
}

// GetFilteredTrades returns listings matching filter.
func (s *Service) GetFilteredTrades(ctx context.Context, filter models.GearFilter) (models.TradeListings, error) {
	return s.list(ctx, utils.WithQuery("TradeListing/Filter", filter.Query()))
}

// RequestTradeListingSold asks the backend to mark a listing as sold to buyerSteamID.
func (s *Service) RequestTradeListingSold(ctx context.Context, listingID, buyerSteamID string) error {
	body := map[string]string{"buyerSteamId": buyerSteamID}
	if err := s.client.Post(ctx, "TradeListing/"+utils.PathSegment(listingID)+"/RequestSold", body, nil); err != nil {
		return fmt.Errorf("failed to request sale of listing %s: %w", listingID, err)
	}
	s.logger.Info("Trade listing sale requested",
		zap.String("listing_id", listingID),
		zap.String("buyer_steam_id", buyerSteamID),
	)
	return nil
}

func (s *Service) list(ctx context.Context, path string) (models.TradeListings, error) {
	var listings models.TradeListings
	if err := s.client.Get(ctx, path, &listings); err != nil {
		return nil, fmt.Errorf("failed to load trade listings: %w", err)
	}
	if listings == nil {
		listings = models.TradeListings{}
	}
	return listings, nil
}
