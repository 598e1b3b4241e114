package translation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pot-portal/core/api"
	"pot-portal/core/reconcile"
	"pot-portal/core/utils"
	"pot-portal/feature/translation/models"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// DefaultKeyCacheTTL bounds how long existing keys of a language are reused between imports.
const DefaultKeyCacheTTL = time.Minute

// ErrNoRepository is returned by offline operations when no snapshot database is configured.
var ErrNoRepository = errors.New("snapshot repository is not configured")

// Service handles translation entries.
type Service struct {
	client api.Requester
	repo   *Repository
	logger *zap.Logger
	keys   *reconcile.KeyCache
}

// NewService creates a new translation service. repo may be nil when offline
// imports and snapshots are not needed.
func NewService(client api.Requester, repo *Repository, logger *zap.Logger, keyTTL time.Duration) *Service {
	s := &Service{
		client: client,
		repo:   repo,
		logger: logger,
	}
	s.keys = reconcile.NewKeyCache(keyTTL, s.loadKeys)
	return s
}

// GetEnglishTranslations returns the canonical English strings in document order.
func (s *Service) GetEnglishTranslations(ctx context.Context) ([]models.EnglishTranslation, error) {
	body, err := s.client.Download(ctx, http.MethodGet, "TranslationEntry/EnglishTranslationsJson", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load english translations: %w", err)
	}

	out := []models.EnglishTranslation{}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("english translations: invalid json")
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, fmt.Errorf("english translations: expected an object, got %s", doc.Type)
	}
	doc.ForEach(func(key, value gjson.Result) bool {
		out = append(out, models.EnglishTranslation{Key: key.String(), Value: value.String()})
		return true
	})
	return out, nil
}

// GetByLanguage returns every entry stored for language.
func (s *Service) GetByLanguage(ctx context.Context, language string) (models.TranslationEntries, error) {
	var entries models.TranslationEntries
	if err := s.client.Get(ctx, "TranslationEntry/Language/"+utils.PathSegment(language), &entries); err != nil {
		return nil, fmt.Errorf("failed to load %s translations: %w", language, err)
	}
	if entries == nil {
		entries = models.TranslationEntries{}
	}
	return entries, nil
}

// Create stores a new entry.
func (s *Service) Create(ctx context.Context, entry models.TranslationEntry) error {
	if err := s.client.Post(ctx, "TranslationEntry", entry, nil); err != nil {
		return fmt.Errorf("translation entry rejected: %w", err)
	}
	return nil
}

// Update replaces an existing entry.
func (s *Service) Update(ctx context.Context, entry models.TranslationEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("cannot update %s: entry has no id", entry.Key)
	}
	if err := s.client.Put(ctx, "TranslationEntry/"+utils.PathSegment(entry.ID), entry, nil); err != nil {
		return fmt.Errorf("failed to update %s: %w", entry.Key, err)
	}
	return nil
}

// Delete removes an entry by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "TranslationEntry/"+utils.PathSegment(id), nil); err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", id, err)
	}
	return nil
}

// ExistingKeys returns the keys the backend already stores for language.
// Results are cached per language and concurrent lookups share one request.
func (s *Service) ExistingKeys(ctx context.Context, language string) (reconcile.KeySet, error) {
	return s.keys.Get(ctx, language)
}

// InvalidateKeys drops the cached keys of language.
func (s *Service) InvalidateKeys(language string) {
	s.keys.Invalidate(language)
}

func (s *Service) loadKeys(ctx context.Context, language string) (reconcile.KeySet, error) {
	entries, err := s.GetByLanguage(ctx, language)
	if err != nil {
		return nil, err
	}
	keys := reconcile.NewKeySet()
	for _, e := range entries {
		keys.Add(e.Key)
	}
	return keys, nil
}

// SaveSnapshot copies the backend entries of language into the local repository
// and returns how many were fetched.
func (s *Service) SaveSnapshot(ctx context.Context, language string) (int, error) {
	if s.repo == nil {
		return 0, ErrNoRepository
	}
	entries, err := s.GetByLanguage(ctx, language)
	if err != nil {
		return 0, err
	}
	if err := s.repo.SaveSnapshot(ctx, language, entries); err != nil {
		return 0, err
	}
	s.logger.Info("Snapshot saved", zap.String("language", language), zap.Int("entries", len(entries)))
	return len(entries), nil
}

// LocalEntries returns the entries of language from the last saved snapshot.
func (s *Service) LocalEntries(ctx context.Context, language string) (models.TranslationEntries, error) {
	if s.repo == nil {
		return nil, ErrNoRepository
	}
	return s.repo.Snapshot(ctx, language)
}
