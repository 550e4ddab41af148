package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Shelfscore/config"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisRecommendationCache struct {
	rdb *goredis.Client
}

func NewRedisRecommendationCache(cfg config.Redis) (RecommendationCache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("Redis recommendation cache connected")
	return &redisRecommendationCache{rdb: rdb}, nil
}

func (c *redisRecommendationCache) Get(ctx context.Context, userID, ratingID uint) (*RecommendationEntry, error) {
	raw, err := c.rdb.Get(ctx, entryKey(userID, ratingID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get recommendation: %w", err)
	}
	var e RecommendationEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		// a corrupt entry is treated as a miss and overwritten by the caller
		log.Warn().Err(err).Uint("userID", userID).Uint("ratingID", ratingID).Msg("Discarding undecodable recommendation cache entry")
		return nil, nil
	}
	return &e, nil
}

func (c *redisRecommendationCache) Generation(ctx context.Context, userID, evaluationID uint) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey(userID, evaluationID)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get recommendation generation: %w", err)
	}
	return gen, nil
}

// Set watches the generation key, so an invalidation that lands between the
// check and the write aborts the transaction instead of leaving a stale entry.
func (c *redisRecommendationCache) Set(ctx context.Context, userID uint, entry RecommendationEntry) (bool, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return false, fmt.Errorf("encode recommendation entry: %w", err)
	}
	key := entryKey(userID, entry.RatingID)
	genKey := generationKey(userID, entry.EvaluationID)

	stored := false
	err = c.rdb.Watch(ctx, func(tx *goredis.Tx) error {
		gen, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		if gen != entry.Generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, raw, 0)
			pipe.SAdd(ctx, indexKey(userID, entry.EvaluationID), key)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, genKey)
	if errors.Is(err, goredis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis set recommendation: %w", err)
	}
	return stored, nil
}

func (c *redisRecommendationCache) InvalidateEvaluation(ctx context.Context, userID, evaluationID uint) error {
	if err := c.rdb.Incr(ctx, generationKey(userID, evaluationID)).Err(); err != nil {
		return fmt.Errorf("redis bump recommendation generation: %w", err)
	}
	idx := indexKey(userID, evaluationID)
	keys, err := c.rdb.SMembers(ctx, idx).Result()
	if err != nil {
		return fmt.Errorf("redis read recommendation index: %w", err)
	}
	keys = append(keys, idx)
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis invalidate recommendations: %w", err)
	}
	return nil
}
