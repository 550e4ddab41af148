package service

import (
	"context"
	"fmt"

	"github.com/lshigami/Shelfscore/config"
	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/cache"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/matching"
	"github.com/lshigami/Shelfscore/internal/model"
	"github.com/lshigami/Shelfscore/internal/repository"
	"github.com/lshigami/Shelfscore/internal/settings"
	"github.com/rs/zerolog/log"
)

type RecommendationService interface {
	// ForRating ranks books for a submitted rating. Results are cached per
	// (user, rating) until the user submits again for the same evaluation or
	// the settings change.
	ForRating(ctx context.Context, userID, ratingID uint) (*dto.RecommendationsResponseDTO, error)
	// ForBook matches a single book against the user's authoritative scores.
	ForBook(ctx context.Context, userID uint, book model.Book, snap settings.Snapshot) (matching.Result, error)
}

type recommendationService struct {
	ratingRepo repository.RatingRepository
	bookRepo   repository.BookRepository
	settingSvc SettingService
	recoCache  cache.RecommendationCache
	limit      int
}

func NewRecommendationService(
	ratingRepo repository.RatingRepository,
	bookRepo repository.BookRepository,
	settingSvc SettingService,
	recoCache cache.RecommendationCache,
	cfg *config.Config,
) RecommendationService {
	limit := cfg.Recommendation.Limit
	if limit <= 0 {
		limit = matching.DefaultLimit
	}
	return &recommendationService{
		ratingRepo: ratingRepo,
		bookRepo:   bookRepo,
		settingSvc: settingSvc,
		recoCache:  recoCache,
		limit:      limit,
	}
}

func (s *recommendationService) ForRating(ctx context.Context, userID, ratingID uint) (*dto.RecommendationsResponseDTO, error) {
	rating, err := s.ratingRepo.FindByID(ctx, ratingID)
	if err != nil {
		return nil, lookupErr(err, "rating", ratingID)
	}
	if rating.UserID != userID {
		return nil, apperr.Forbidden(fmt.Sprintf("rating %d belongs to another user", ratingID))
	}
	if rating.Status != model.RatingSubmitted {
		return nil, apperr.Conflict(fmt.Sprintf("rating %d is not submitted yet", ratingID))
	}

	snap, err := s.settingSvc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.RecommendationsResponseDTO{
		RatingID:        rating.ID,
		EvaluationID:    rating.EvaluationID,
		SettingsVersion: snap.Version,
		Threshold:       snap.RecommendationThreshold,
	}

	entry, err := s.recoCache.Get(ctx, userID, ratingID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Uint("ratingID", ratingID).Msg("Recommendation cache read failed, recomputing")
	}
	if entry != nil && entry.SettingsVersion == snap.Version {
		resp.Cached = true
		resp.Books = entry.Results
		return resp, nil
	}

	// Read before the scores: a submission that lands while ranking bumps it
	// and the result below is not cached.
	generation, genErr := s.recoCache.Generation(ctx, userID, rating.EvaluationID)
	if genErr != nil {
		log.Warn().Err(genErr).Uint("userID", userID).Uint("evaluationID", rating.EvaluationID).Msg("Recommendation cache generation read failed")
	}

	scores, err := s.authoritativeScores(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.candidates(ctx, rating.EvaluationID)
	if err != nil {
		return nil, err
	}
	resp.Books = matching.Rank(candidates, scores, matching.ParamsFrom(snap, s.limit))

	if genErr == nil {
		stored, err := s.recoCache.Set(ctx, userID, cache.RecommendationEntry{
			RatingID:        rating.ID,
			EvaluationID:    rating.EvaluationID,
			SettingsVersion: snap.Version,
			Generation:      generation,
			Results:         resp.Books,
		})
		switch {
		case err != nil:
			log.Warn().Err(err).Uint("userID", userID).Uint("ratingID", ratingID).Msg("Recommendation cache write failed")
		case !stored:
			log.Debug().Uint("userID", userID).Uint("ratingID", ratingID).Msg("Scores changed while ranking, result not cached")
		}
	}
	log.Debug().Uint("userID", userID).Uint("ratingID", ratingID).Int("books", len(resp.Books)).
		Int64("settingsVersion", snap.Version).Msg("Recommendations computed")
	return resp, nil
}

func (s *recommendationService) ForBook(ctx context.Context, userID uint, book model.Book, snap settings.Snapshot) (matching.Result, error) {
	scores, err := s.authoritativeScores(ctx, userID)
	if err != nil {
		return matching.Result{}, err
	}
	return matching.Match(matching.CandidateFromBook(book), scores, matching.ParamsFrom(snap, s.limit)), nil
}

func (s *recommendationService) authoritativeScores(ctx context.Context, userID uint) (map[uint]matching.EvaluationScore, error) {
	ratings, err := s.ratingRepo.FindAuthoritative(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores for user %d: %w", userID, err)
	}
	scores := make(map[uint]matching.EvaluationScore, len(ratings))
	for _, r := range ratings {
		scores[r.EvaluationID] = matching.EvaluationScore{
			EvaluationID: r.EvaluationID,
			RatingID:     r.ID,
			Percentage:   *r.TotalScore,
		}
	}
	return scores, nil
}

// candidates returns the books linked to the evaluation, topped up from the
// rest of the catalog when there are fewer than the ranking limit.
func (s *recommendationService) candidates(ctx context.Context, evaluationID uint) ([]matching.Candidate, error) {
	linked, err := s.bookRepo.FindByEvaluation(ctx, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load books for evaluation %d: %w", evaluationID, err)
	}
	out := make([]matching.Candidate, 0, s.limit)
	seen := make(map[uint]bool, len(linked))
	for _, b := range linked {
		seen[b.ID] = true
		out = append(out, matching.CandidateFromBook(b))
	}
	if len(out) >= s.limit {
		return out, nil
	}

	rest, err := s.bookRepo.FindAllWithCategories(ctx, s.limit+len(linked))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	for _, b := range rest {
		if len(out) >= s.limit {
			break
		}
		if !seen[b.ID] {
			seen[b.ID] = true
			out = append(out, matching.CandidateFromBook(b))
		}
	}
	return out, nil
}
