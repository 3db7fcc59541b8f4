package oracle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/redis"
)

const cacheKeyPrefix = "oracle:screenshot:"

// resultCache is the subset of *redis.Client the cache needs.
type resultCache interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value any, expiration time.Duration) error
}

// CachedOracle remembers analyses per image URL, so a customer resending the
// same screenshot does not cost another model call. Cache failures fall
// through to the wrapped oracle.
type CachedOracle struct {
	inner  ports.ScreenshotOracle
	cache  resultCache
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedOracle(inner ports.ScreenshotOracle, cache resultCache, ttl time.Duration, log logger.Logger) *CachedOracle {
	return &CachedOracle{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: log,
	}
}

func (c *CachedOracle) Extract(ctx context.Context, imageURL string) (*domain.ScreenshotAnalysis, error) {
	key := cacheKey(imageURL)

	cached, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var res domain.ScreenshotAnalysis
		if err = json.Unmarshal([]byte(cached), &res); err == nil {
			c.logger.Debug("oracle cache hit", logger.String("key", key))
			return &res, nil
		}
		c.logger.Warn("corrupt oracle cache entry",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	case !errors.Is(err, redis.NoMatches):
		c.logger.Warn("oracle cache unavailable",
			logger.String("error", err.Error()),
		)
	}

	res, err := c.inner.Extract(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(res)
	if err != nil {
		return res, nil
	}
	if err = c.cache.SetWithExpiration(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("failed to cache oracle result",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}

	return res, nil
}

func cacheKey(imageURL string) string {
	sum := sha256.Sum256([]byte(imageURL))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
