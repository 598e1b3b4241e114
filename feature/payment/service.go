package payment

import (
	"context"
	"fmt"

	"pot-portal/core/api"
	"pot-portal/feature/payment/models"
)

// Service handles payment catalogue lookups.
type Service struct {
	client api.Requester
}

// NewService creates a new payment service.
func NewService(client api.Requester) *Service {
	return &Service{client: client}
}

// GetSupporterPacks returns the supporter packs on sale.
func (s *Service) GetSupporterPacks(ctx context.Context) (models.LeaguePacks, error) {
	var packs models.LeaguePacks
	if err := s.client.Get(ctx, "Payments/SupporterProducts", &packs); err != nil {
		return nil, fmt.Errorf("failed to load supporter packs: %w", err)
	}
	if packs == nil {
		packs = models.LeaguePacks{}
	}
	return packs, nil
}
