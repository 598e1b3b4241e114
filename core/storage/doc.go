// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so localization sources can be imported straight from a
// bucket and mob data exports can be archived next to them. This works against AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - ReadObject: downloads an object fully (e.g. an .hjson localization file).
//   - UploadBytes: uploads a blob, creating the bucket if needed.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	data, err := storage.ReadObject(ctx, client, cfg.Bucket, "Localization/ru-RU_Mods.PathOfTerraria.hjson")
package storage
