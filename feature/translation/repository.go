package translation

import (
	"context"
	"fmt"

	"pot-portal/core/reconcile"
	"pot-portal/feature/translation/models"

	"gorm.io/gorm"
)

const snapshotBatchSize = 200

// Repository stores per-language snapshots of backend entries so imports can
// be planned without reaching the backend.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the snapshot table.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.Snapshot{}); err != nil {
		return fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return nil
}

// SaveSnapshot replaces the stored snapshot of language with entries.
func (r *Repository) SaveSnapshot(ctx context.Context, language string, entries []models.TranslationEntry) error {
	rows := make([]models.Snapshot, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		// The backend may return the same key twice; the first one wins.
		if _, dup := seen[e.Key]; dup {
			continue
		}
		seen[e.Key] = struct{}{}
		rows = append(rows, models.Snapshot{
			Language: language,
			Key:      e.Key,
			Category: e.Category,
			EntryID:  e.ID,
			Value:    e.Value,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("language = ?", language).Delete(&models.Snapshot{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, snapshotBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save %s snapshot: %w", language, err)
	}
	return nil
}

// SnapshotKeys returns the keys stored for language.
func (r *Repository) SnapshotKeys(ctx context.Context, language string) (reconcile.KeySet, error) {
	var keys []string
	err := r.db.WithContext(ctx).
		Model(&models.Snapshot{}).
		Where("language = ?", language).
		Pluck("key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load %s snapshot keys: %w", language, err)
	}
	return reconcile.NewKeySet(keys...), nil
}

// Snapshot returns the stored entries of language in insertion order.
func (r *Repository) Snapshot(ctx context.Context, language string) (models.TranslationEntries, error) {
	var rows []models.Snapshot
	if err := r.db.WithContext(ctx).Where("language = ?", language).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load %s snapshot: %w", language, err)
	}

	entries := make(models.TranslationEntries, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.TranslationEntry{
			ID:       row.EntryID,
			Category: row.Category,
			Key:      row.Key,
			Language: row.Language,
			Value:    row.Value,
		})
	}
	return entries, nil
}
