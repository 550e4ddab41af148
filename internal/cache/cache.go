// Package cache stores computed book rankings per (user, rating).
//
// Entries never expire. They are dropped only when the user submits a new
// rating for the same evaluation, which is the one event that can change the
// authoritative scores behind a ranking. Every invalidation bumps a
// generation for (user, evaluation); an entry computed under an older
// generation is never stored.
package cache

import (
	"context"
	"fmt"

	"github.com/lshigami/Shelfscore/config"
	"github.com/lshigami/Shelfscore/internal/matching"
	"github.com/rs/zerolog/log"
)

type RecommendationEntry struct {
	RatingID        uint  `json:"rating_id"`
	EvaluationID    uint  `json:"evaluation_id"`
	SettingsVersion int64 `json:"settings_version"`
	// Generation of (user, evaluation) read before the ranking was computed.
	Generation int64             `json:"generation"`
	Results    []matching.Result `json:"results"`
}

type RecommendationCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, userID, ratingID uint) (*RecommendationEntry, error)
	// Generation returns the invalidation count of (userID, evaluationID).
	Generation(ctx context.Context, userID, evaluationID uint) (int64, error)
	// Set stores entry unless its Generation is behind the current one, in
	// which case it is dropped and stored is false.
	Set(ctx context.Context, userID uint, entry RecommendationEntry) (stored bool, err error)
	// InvalidateEvaluation bumps the generation and drops every entry of
	// userID whose rating belongs to evaluationID.
	InvalidateEvaluation(ctx context.Context, userID, evaluationID uint) error
}

// NewRecommendationCache picks redis when REDIS_ADDR is configured and falls
// back to process memory otherwise.
func NewRecommendationCache(cfg *config.Config) (RecommendationCache, error) {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("REDIS_ADDR is not set. Recommendation cache is kept in process memory.")
		return NewMemoryRecommendationCache(), nil
	}
	c, err := NewRedisRecommendationCache(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis recommendation cache: %w", err)
	}
	return c, nil
}

func entryKey(userID, ratingID uint) string {
	return fmt.Sprintf("shelfscore:reco:%d:%d", userID, ratingID)
}

func indexKey(userID, evaluationID uint) string {
	return fmt.Sprintf("shelfscore:reco-idx:%d:%d", userID, evaluationID)
}

func generationKey(userID, evaluationID uint) string {
	return fmt.Sprintf("shelfscore:reco-gen:%d:%d", userID, evaluationID)
}
