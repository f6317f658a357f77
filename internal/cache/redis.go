package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/traininglab/exlink/internal/compress"
	"github.com/traininglab/exlink/internal/model"
)

const linkCacheTTL = 5 * time.Minute

func exerciseLinksKey(id string) string {
	return "exercise:links:" + id
}

var _ LinkCache = (*RedisLinkCache)(nil)

type RedisLinkCache struct {
	client  *redis.Client
	encoder compress.Compress
}

func NewRedisLinkCache(addr string, encoder compress.Compress) *RedisLinkCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       0,  // Use default DB
		Protocol: 2,  // Connection protocol
	})

	return &RedisLinkCache{client: client, encoder: encoder}
}

func (r *RedisLinkCache) GetLinks(ctx context.Context, exerciseID string) ([]*model.ExerciseLink, bool) {
	data, err := r.client.Get(ctx, exerciseLinksKey(exerciseID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.Warnf("link cache read failed for %s: %v", exerciseID, err)
		}
		return nil, false
	}

	decoded, err := r.encoder.Decode(data)
	if err != nil {
		logrus.Warnf("link cache decode failed for %s: %v", exerciseID, err)
		return nil, false
	}

	var links []*model.ExerciseLink
	if err := json.Unmarshal(decoded, &links); err != nil {
		logrus.Warnf("link cache unmarshal failed for %s: %v", exerciseID, err)
		return nil, false
	}

	return links, true
}

func (r *RedisLinkCache) SetLinks(ctx context.Context, exerciseID string, links []*model.ExerciseLink) error {
	data, err := json.Marshal(links)
	if err != nil {
		return err
	}

	encoded, err := r.encoder.Encode(data)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, exerciseLinksKey(exerciseID), encoded, linkCacheTTL).Err()
}

func (r *RedisLinkCache) Invalidate(ctx context.Context, exerciseIDs ...string) error {
	if len(exerciseIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(exerciseIDs))
	for _, id := range exerciseIDs {
		keys = append(keys, exerciseLinksKey(id))
	}

	return r.client.Del(ctx, keys...).Err()
}

// NopLinkCache satisfies LinkCache when no redis address is configured.
type NopLinkCache struct{}

func NewNopLinkCache() NopLinkCache { return NopLinkCache{} }

func (NopLinkCache) GetLinks(ctx context.Context, exerciseID string) ([]*model.ExerciseLink, bool) {
	return nil, false
}

func (NopLinkCache) SetLinks(ctx context.Context, exerciseID string, links []*model.ExerciseLink) error {
	return nil
}

func (NopLinkCache) Invalidate(ctx context.Context, exerciseIDs ...string) error {
	return nil
}
