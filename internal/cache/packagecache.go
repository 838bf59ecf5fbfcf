package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	activePackagesKey = "packages:active"
	packagesTTL       = 5 * time.Minute
)

// PackageCache keeps the active-package catalog in Redis so the hot listing
// endpoint does not hit Postgres on every request.
type PackageCache struct {
	client *redis.Client
}

func NewPackageCache(addr string) *PackageCache {
	if addr == "" {
		return nil
	}
	return &PackageCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *PackageCache) GetActive(ctx context.Context) ([]domain.Package, bool) {
	data, err := c.client.Get(ctx, activePackagesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("package cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var packages []domain.Package
	if err := json.Unmarshal(data, &packages); err != nil {
		zap.L().Warn("package cache payload malformed", zap.Error(err))
		return nil, false
	}
	return packages, true
}

func (c *PackageCache) SetActive(ctx context.Context, packages []domain.Package) {
	data, err := json.Marshal(packages)
	if err != nil {
		zap.L().Warn("can't marshal packages for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, activePackagesKey, data, packagesTTL).Err(); err != nil {
		zap.L().Warn("package cache write failed", zap.Error(err))
	}
}

func (c *PackageCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, activePackagesKey).Err(); err != nil {
		zap.L().Warn("package cache invalidation failed", zap.Error(err))
	}
}
