// Package settings turns the flat settings table into one immutable,
// versioned snapshot that is handed to the matcher and price resolver for the
// duration of a request.
package settings

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	KeyRecommendationThreshold = "recommendation_threshold"
	KeyRecommendedBookDiscount = "recommended_book_discount"
)

const (
	DefaultRecommendationThreshold = 70.0
	DefaultDisplayBoundary         = 70.0
)

var (
	ErrUnknownKey   = errors.New("unknown setting key")
	ErrInvalidValue = errors.New("invalid setting value")
)

// Snapshot is read once per request. DisplayBoundary drives the
// meetsThreshold presentation flag and is configured separately from the
// admin-tunable RecommendationThreshold.
type Snapshot struct {
	Version                 int64    `json:"version"`
	RecommendationThreshold float64  `json:"recommendation_threshold"`
	RecommendedBookDiscount *float64 `json:"recommended_book_discount,omitempty"`
	DisplayBoundary         float64  `json:"display_boundary"`
}

func Default() Snapshot {
	return Snapshot{
		RecommendationThreshold: DefaultRecommendationThreshold,
		DisplayBoundary:         DefaultDisplayBoundary,
	}
}

func KnownKey(key string) bool {
	return key == KeyRecommendationThreshold || key == KeyRecommendedBookDiscount
}

// ParsePercentage parses a stored setting value. Empty means unset.
func ParsePercentage(key, raw string) (*float64, error) {
	if !KnownKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > 100 {
		return nil, fmt.Errorf("%w: %s=%q must be a percentage between 0 and 100", ErrInvalidValue, key, raw)
	}
	return &v, nil
}

// FromValues builds a snapshot from raw key/value rows. Unknown keys are
// ignored so unrelated settings can share the table.
func FromValues(version int64, values map[string]string, displayBoundary float64) (Snapshot, error) {
	snap := Default()
	snap.Version = version
	if displayBoundary > 0 {
		snap.DisplayBoundary = displayBoundary
	}

	if raw, ok := values[KeyRecommendationThreshold]; ok {
		v, err := ParsePercentage(KeyRecommendationThreshold, raw)
		if err != nil {
			return Snapshot{}, err
		}
		if v != nil {
			snap.RecommendationThreshold = *v
		}
	}
	if raw, ok := values[KeyRecommendedBookDiscount]; ok {
		v, err := ParsePercentage(KeyRecommendedBookDiscount, raw)
		if err != nil {
			return Snapshot{}, err
		}
		snap.RecommendedBookDiscount = v
	}
	return snap, nil
}
