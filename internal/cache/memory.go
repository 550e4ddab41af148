package cache

import (
	"context"
	"sync"

	"github.com/lshigami/Shelfscore/internal/matching"
)

type memoryRecommendationCache struct {
	mu          sync.RWMutex
	entries     map[string]RecommendationEntry
	index       map[string]map[string]struct{}
	generations map[string]int64
}

func NewMemoryRecommendationCache() RecommendationCache {
	return &memoryRecommendationCache{
		entries:     make(map[string]RecommendationEntry),
		index:       make(map[string]map[string]struct{}),
		generations: make(map[string]int64),
	}
}

func (c *memoryRecommendationCache) Get(_ context.Context, userID, ratingID uint) (*RecommendationEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[entryKey(userID, ratingID)]
	if !ok {
		return nil, nil
	}
	e.Results = cloneResults(e.Results)
	return &e, nil
}

func (c *memoryRecommendationCache) Generation(_ context.Context, userID, evaluationID uint) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generations[generationKey(userID, evaluationID)], nil
}

func (c *memoryRecommendationCache) Set(_ context.Context, userID uint, entry RecommendationEntry) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry.Generation != c.generations[generationKey(userID, entry.EvaluationID)] {
		return false, nil
	}

	key := entryKey(userID, entry.RatingID)
	entry.Results = cloneResults(entry.Results)
	c.entries[key] = entry

	idx := indexKey(userID, entry.EvaluationID)
	if c.index[idx] == nil {
		c.index[idx] = make(map[string]struct{})
	}
	c.index[idx][key] = struct{}{}
	return true, nil
}

func (c *memoryRecommendationCache) InvalidateEvaluation(_ context.Context, userID, evaluationID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[generationKey(userID, evaluationID)]++
	idx := indexKey(userID, evaluationID)
	for key := range c.index[idx] {
		delete(c.entries, key)
	}
	delete(c.index, idx)
	return nil
}

// cloneResults copies results down to the nested slices so neither the
// caller nor the cache can change the other's rankings.
func cloneResults(in []matching.Result) []matching.Result {
	if in == nil {
		return nil
	}
	out := make([]matching.Result, len(in))
	for i, r := range in {
		r.EvaluationResults = append(r.EvaluationResults[:0:0], r.EvaluationResults...)
		r.UnattemptedEvaluationIDs = append(r.UnattemptedEvaluationIDs[:0:0], r.UnattemptedEvaluationIDs...)
		out[i] = r
	}
	return out
}
