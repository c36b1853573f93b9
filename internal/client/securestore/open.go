package securestore

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/trainerhub/internal/cryptox"
	"github.com/dmitrijs2005/trainerhub/internal/filex"
	"github.com/redis/go-redis/v9"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

const (
	dbFileName  = "credentials.db"
	keyFileName = "device.key"
)

// Options selects and configures a backend.
type Options struct {
	Backend string
	DataDir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open builds the configured backend. SQLite and Redis share the device key
// stored in DataDir.
func Open(ctx context.Context, opts Options) (ClosableStore, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil

	case BackendSQLite, "":
		dir, sealer, err := deviceSealer(opts.DataDir)
		if err != nil {
			return nil, err
		}
		return OpenSQLite(ctx, filepath.Join(dir, dbFileName), sealer)

	case BackendRedis:
		_, sealer, err := deviceSealer(opts.DataDir)
		if err != nil {
			return nil, err
		}

		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping %s: %w", opts.RedisAddr, err)
		}
		return NewRedisStore(client, sealer, opts.RedisPrefix), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}

func deviceSealer(dataDir string) (string, *cryptox.Sealer, error) {
	dir, err := filex.EnsureDir(dataDir)
	if err != nil {
		return "", nil, err
	}

	key, err := filex.LoadOrCreateKey(filepath.Join(dir, keyFileName), cryptox.KeySize, cryptox.GenerateKey)
	if err != nil {
		return "", nil, err
	}

	sealer, err := cryptox.NewSealer(key)
	if err != nil {
		return "", nil, err
	}
	return dir, sealer, nil
}
