package translation

import (
	"context"
	"slices"

	"pot-portal/core/reconcile"
	"pot-portal/feature/translation/models"

	"golang.org/x/sync/errgroup"
)

// Check compares the entries of language with the English strings.
func (s *Service) Check(ctx context.Context, language string) (*models.CoverageReport, error) {
	language, err := ValidateLanguage(language)
	if err != nil {
		return nil, err
	}

	var (
		english []models.EnglishTranslation
		entries models.TranslationEntries
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		english, err = s.GetEnglishTranslations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.GetByLanguage(gctx, language)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildCoverage(language, english, entries), nil
}

func buildCoverage(language string, english []models.EnglishTranslation, entries []models.TranslationEntry) *models.CoverageReport {
	report := &models.CoverageReport{
		Language:              language,
		EnglishTotal:          len(english),
		Missing:               []string{},
		Orphans:               []string{},
		PlaceholderMismatches: []models.PlaceholderMismatch{},
	}

	translated := make(map[string]string, len(entries))
	stored := reconcile.NewKeySet()
	for _, e := range entries {
		if _, ok := translated[e.Key]; !ok {
			translated[e.Key] = e.Value
		}
		stored.Add(e.Key)
	}

	known := reconcile.NewKeySet()
	for _, en := range english {
		known.Add(en.Key)

		value, ok := translated[en.Key]
		if !ok {
			report.Missing = append(report.Missing, en.Key)
			continue
		}
		report.Translated++

		want, got := placeholders(en.Value), placeholders(value)
		if !slices.Equal(want, got) {
			report.PlaceholderMismatches = append(report.PlaceholderMismatches, models.PlaceholderMismatch{
				Key:      en.Key,
				Expected: want,
				Found:    got,
			})
		}
	}

	if orphans := stored.Missing(known); len(orphans) > 0 {
		report.Orphans = orphans
	}

	return report
}
