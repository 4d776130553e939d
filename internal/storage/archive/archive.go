// internal/storage/archive/archive.go
package archive

import (
	"context"
	"fmt"

	"github.com/Giri-Aayush/1inch-lop/internal/config"
	"github.com/Giri-Aayush/1inch-lop/internal/core"
)

// Storage keeps timestamped copies of generated strategy configs so a config
// overwritten on disk can still be recovered and compared.
type Storage interface {
	// Write stores a strategy config document at the given key
	Write(ctx context.Context, key string, data []byte) error

	// Read retrieves a previously archived document
	Read(ctx context.Context, key string) ([]byte, error)

	// List returns all archived keys under the prefix
	List(ctx context.Context, prefix string) ([]string, error)

	// Exists checks whether a document is archived at the key
	Exists(ctx context.Context, key string) (bool, error)
}

// New builds the archive backend selected by the tool configuration.
// Returns nil when archiving is disabled; callers treat a nil Storage as
// "don't archive".
func New(cfg config.ArchiveConfig) (Storage, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	switch cfg.Type {
	case "localfs":
		s, err := NewLocalFS(cfg.Path)
		if err != nil {
			return nil, core.WrapError(core.ErrStoreFailed, err)
		}
		return s, nil
	case "s3":
		s, err := NewS3(S3Options{
			Bucket:    cfg.S3.Bucket,
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Prefix:    cfg.S3.Prefix,
		})
		if err != nil {
			return nil, core.WrapError(core.ErrStoreFailed, err)
		}
		return s, nil
	default:
		return nil, core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown archive type %q", cfg.Type))
	}
}

// Key returns the archive key for a strategy config: family/unix-filename,
// e.g. "volatility/1700000000-volatility-config.json".
func Key(family string, unixTime int64, filename string) string {
	return fmt.Sprintf("%s/%d-%s", family, unixTime, filename)
}
