// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so favorites backups
// and storage health checks can run against AWS S3, a self-hosted MinIO instance,
// or the testify mock in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket presence, used by EnsureBucket.
//   - PutObject / GetObject: write and read backup documents.
//   - ListObjects: enumerate backups under a prefix.
//   - RemoveObject: prune backups beyond the retention count.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
