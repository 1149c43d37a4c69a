// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the illustration cache needs. This abstraction supports both AWS
// S3 and self-hosted MinIO instances.
//
// # Role
//
// Generated step illustrations live on local disk first. When storage is
// enabled, the cache mirrors each image to a bucket so replicas and fresh
// deployments can rehydrate instead of paying for regeneration.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config.Bucket)
package storage
