package translation

import (
	"context"

	"pot-portal/core/hjson"
	"pot-portal/core/reconcile"
	"pot-portal/feature/translation/models"

	"go.uber.org/zap"
)

// ImportRequest describes one localization file to import.
type ImportRequest struct {
	// Text is the file content.
	Text     string
	Language string
	Category string

	// DryRun plans without creating anything.
	DryRun bool
	// Confirmed must be set for entries to be created.
	Confirmed bool
	// Concurrency bounds parallel create requests.
	Concurrency int
	// Offline plans against the local snapshot instead of the backend.
	Offline bool
}

// Import parses req.Text, compares it with the keys already stored for the
// language and, when confirmed, creates the missing entries.
//
// When creation fails part way, the result still reports how many entries were created.
func (s *Service) Import(ctx context.Context, req ImportRequest) (*models.ImportResult, error) {
	language, err := ValidateLanguage(req.Language)
	if err != nil {
		return nil, err
	}

	parsed := hjson.Parse(req.Text, req.Category)

	existing, err := s.existingFor(ctx, language, req.Offline)
	if err != nil {
		return nil, err
	}

	plan := PlanEntries(parsed, language, req.Category, existing)
	result := &models.ImportResult{
		Language: language,
		Category: req.Category,
		Entries:  plan.Items(),
		Stats:    plan.Stats,
	}

	s.logger.Info("Import planned",
		zap.String("language", language),
		zap.String("category", req.Category),
		zap.Int("total", plan.Stats.Total),
		zap.Int("added", plan.Stats.Added),
		zap.Int("skipped", plan.Stats.Skipped),
	)

	opts := reconcile.Options{
		DryRun:      req.DryRun,
		Confirmed:   req.Confirmed,
		Concurrency: req.Concurrency,
	}
	if !opts.Confirmed || opts.DryRun || len(plan.Actions) == 0 {
		return result, nil
	}

	created, err := reconcile.ApplyPlan(ctx, plan, reconcile.CreatorFunc[models.TranslationEntry](s.Create), opts)
	result.Created = created
	result.Applied = true
	s.InvalidateKeys(language)
	if err != nil {
		s.logger.Error("Import stopped", zap.Int("created", created), zap.Error(err))
		return result, err
	}

	s.logger.Info("Import applied", zap.String("language", language), zap.Int("created", created))
	return result, nil
}

func (s *Service) existingFor(ctx context.Context, language string, offline bool) (reconcile.KeySet, error) {
	if !offline {
		return s.ExistingKeys(ctx, language)
	}
	if s.repo == nil {
		return nil, ErrNoRepository
	}
	return s.repo.SnapshotKeys(ctx, language)
}
