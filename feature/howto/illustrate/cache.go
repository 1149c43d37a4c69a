package illustrate

import (
	"bytes"
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"guidegen/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Cache stores generated illustrations on local disk, optionally mirrored to
// object storage so other replicas can rehydrate them.
type Cache struct {
	dir    string
	mirror storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewCache creates a Cache rooted at dir. mirror may be nil; the cache is
// then purely local.
func NewCache(dir string, mirror storage.Client, bucket, prefix string, logg *zap.Logger) *Cache {
	return &Cache{dir: dir, mirror: mirror, bucket: bucket, prefix: prefix, logger: logg}
}

// Path returns the local file path for a cache key.
func (c *Cache) Path(key string) string {
	return filepath.Join(c.dir, key+".png")
}

// Has reports whether the key is cached. A miss on disk checks the mirror
// and materializes a local copy on hit, so the static file server can serve
// it.
func (c *Cache) Has(ctx context.Context, key string) bool {
	if _, err := os.Stat(c.Path(key)); err == nil {
		return true
	}
	if c.mirror == nil {
		return false
	}

	obj, err := c.mirror.GetObject(ctx, c.bucket, c.objectName(key), minio.GetObjectOptions{})
	if err != nil {
		return false
	}
	defer obj.Close()

	img, err := io.ReadAll(obj)
	if err != nil || len(img) == 0 {
		return false
	}
	if err := c.write(key, img); err != nil {
		c.logger.Warn("Failed to materialize mirrored illustration",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Put stores image bytes under key, atomically on disk and best effort on
// the mirror.
func (c *Cache) Put(ctx context.Context, key string, img []byte) error {
	if err := c.write(key, img); err != nil {
		return err
	}

	if c.mirror != nil {
		opts := minio.PutObjectOptions{ContentType: "image/png"}
		_, err := c.mirror.PutObject(ctx, c.bucket, c.objectName(key), bytes.NewReader(img), int64(len(img)), opts)
		if err != nil {
			c.logger.Warn("Failed to mirror illustration",
				zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

// write lands bytes at the final path via a temp file rename, so a crash
// mid-write never leaves a truncated image behind.
func (c *Cache) write(key string, img []byte) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}

	final := c.Path(key)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, img, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, final)
}

func (c *Cache) objectName(key string) string {
	return path.Join(c.prefix, key+".png")
}
