package moddata

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"pot-portal/core/api"
	"pot-portal/core/storage"
	"pot-portal/feature/moddata/models"

	"go.uber.org/zap"
)

// ExportFileName is the archive name used when no destination is given.
const ExportFileName = "mob_data.zip"

// Service handles mod data operations.
type Service struct {
	client  api.Requester
	storage storage.Client
	bucket  string
	logger  *zap.Logger
}

// NewService creates a new mod data service. store may be nil when exports are only written locally.
func NewService(client api.Requester, store storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		storage: store,
		bucket:  bucket,
		logger:  logger,
	}
}

// GetMobData returns the spawn data of every mob.
func (s *Service) GetMobData(ctx context.Context) (models.MobDataList, error) {
	var mobs models.MobDataList
	if err := s.client.Get(ctx, "ModData/Mobs", &mobs); err != nil {
		return nil, fmt.Errorf("failed to load mob data: %w", err)
	}
	if mobs == nil {
		mobs = models.MobDataList{}
	}
	return mobs, nil
}

// ExportMobData sends data to the exporter and returns the generated zip archive.
func (s *Service) ExportMobData(ctx context.Context, data []models.MobData) ([]byte, error) {
	if data == nil {
		data = []models.MobData{}
	}
	blob, err := s.client.Download(ctx, http.MethodPost, "ModData/ExportMobs", data)
	if err != nil {
		return nil, fmt.Errorf("failed to export mob data: %w", err)
	}
	s.logger.Debug("Mob data exported", zap.Int("mobs", len(data)), zap.Int("bytes", len(blob)))
	return blob, nil
}

// Destination says where SaveExport puts an archive.
// Exactly one of Path or Object is used; Object wins when both are set.
type Destination struct {
	// Path is a local file or directory. Empty means ExportFileName in the working directory.
	Path string
	// Object is an object name in the storage bucket.
	Object string
}

// SaveExport writes blob to dest and returns where it went.
func (s *Service) SaveExport(ctx context.Context, blob []byte, dest Destination) (string, error) {
	if dest.Object != "" {
		if s.storage == nil {
			return "", fmt.Errorf("object storage is not configured")
		}
		if err := storage.UploadBytes(ctx, s.storage, s.bucket, dest.Object, blob, "application/zip"); err != nil {
			return "", err
		}
		location := s.bucket + "/" + dest.Object
		s.logger.Info("Mob data export uploaded", zap.String("location", location))
		return location, nil
	}

	path := dest.Path
	if path == "" {
		path = ExportFileName
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ExportFileName)
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export %s: %w", path, err)
	}
	s.logger.Info("Mob data export saved", zap.String("path", path))
	return path, nil
}
