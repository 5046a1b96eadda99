package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/KdbAzizul/rescuemesh-sos-service/external/matching"
)

const (
	logPrefix      = "cache"
	defaultTimeout = 2 * time.Second
	matchesTTL     = 30 * time.Second
)

// Cache is a process-wide redis handle. It only ever holds soft state
// (match lists for enriched reads); losing it degrades reads to a direct
// matching-service call, nothing more.
type Cache struct {
	client *redis.Client
}

func New(addr string) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

// Ping - ping redis
func (c *Cache) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return c.client.Ping(ctx).Err()
}

func matchesKey(requestID string) string {
	return fmt.Sprintf("matches:%s", requestID)
}

// GetMatches returns the cached match list for a request, if any.
func (c *Cache) GetMatches(requestID string) ([]matching.Match, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	value, err := c.client.Get(ctx, matchesKey(requestID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.WithFields(log.Fields{
				"prefix":     logPrefix,
				"request_id": requestID,
				"error":      err,
			}).Warn("get cached matches")
		}
		return nil, false
	}

	var matches []matching.Match
	if err := json.Unmarshal(value, &matches); err != nil {
		return nil, false
	}

	return matches, true
}

// SetMatches caches a match list with a short TTL. Failures are logged
// and ignored.
func (c *Cache) SetMatches(requestID string, matches []matching.Match) {
	value, err := json.Marshal(matches)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := c.client.Set(ctx, matchesKey(requestID), value, matchesTTL).Err(); err != nil {
		log.WithFields(log.Fields{
			"prefix":     logPrefix,
			"request_id": requestID,
			"error":      err,
		}).Warn("set cached matches")
	}
}

// Close - close redis connections
func (c *Cache) Close() {
	log.WithField("prefix", logPrefix).Info("closing redis connections")
	_ = c.client.Close()
}
