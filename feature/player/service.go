package player

import (
	"context"
	"fmt"

	"pot-portal/core/api"
	"pot-portal/core/utils"
	"pot-portal/feature/player/models"

	"go.uber.org/zap"
)

const (
	// DefaultLeaderboardCount is the page size used when none is given.
	DefaultLeaderboardCount = 50
)

// Service handles player operations.
type Service struct {
	client api.Requester
	logger *zap.Logger
}

// NewService creates a new player service.
func NewService(client api.Requester, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// GetLeaderboards returns one page of the leaderboard. A count of zero or less uses DefaultLeaderboardCount.
func (s *Service) GetLeaderboards(ctx context.Context, count, skip int) (models.Players, error) {
	if count <= 0 {
		count = DefaultLeaderboardCount
	}
	if skip < 0 {
		skip = 0
	}

	q := new(utils.Query).Add("count", count).Add("skip", skip)
	var players models.Players
	if err := s.client.Get(ctx, utils.WithQuery("Player/Leaderboard", q), &players); err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	if players == nil {
		players = models.Players{}
	}
	return players, nil
}

// GetPlayer returns a character by name.
func (s *Service) GetPlayer(ctx context.Context, name string) (*models.Player, error) {
	var p models.Player
	if err := s.client.Get(ctx, "Player/"+utils.PathSegment(name), &p); err != nil {
		return nil, fmt.Errorf("failed to load player %s: %w", name, err)
	}
	return &p, nil
}

// DeletePlayer removes a character owned by the current user.
func (s *Service) DeletePlayer(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "Player/"+utils.PathSegment(id), nil); err != nil {
		return fmt.Errorf("failed to delete player %s: %w", id, err)
	}
	s.logger.Info("Player deleted", zap.String("id", id))
	return nil
}
