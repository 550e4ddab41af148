package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/cache"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/model"
	"github.com/lshigami/Shelfscore/internal/repository"
	"github.com/lshigami/Shelfscore/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type RatingService interface {
	// StartRating returns the user's open draft for the evaluation, creating one if needed.
	StartRating(ctx context.Context, userID, evaluationID uint) (*dto.RatingResponseDTO, error)
	SaveAnswers(ctx context.Context, ratingID uint, req dto.RatingItemsSaveDTO) (*dto.RatingResponseDTO, error)
	SubmitRating(ctx context.Context, ratingID, userID uint) (*dto.RatingResponseDTO, error)
	GetRating(ctx context.Context, ratingID, userID uint) (*dto.RatingResponseDTO, error)
	ListUserRatings(ctx context.Context, userID uint, evaluationID *uint) ([]dto.RatingResponseDTO, error)
}

type ratingService struct {
	evaluationRepo repository.EvaluationRepository
	ratingRepo     repository.RatingRepository
	recoCache      cache.RecommendationCache
	now            func() time.Time
}

func NewRatingService(
	evaluationRepo repository.EvaluationRepository,
	ratingRepo repository.RatingRepository,
	recoCache cache.RecommendationCache,
) RatingService {
	return &ratingService{
		evaluationRepo: evaluationRepo,
		ratingRepo:     ratingRepo,
		recoCache:      recoCache,
		now:            time.Now,
	}
}

func (s *ratingService) StartRating(ctx context.Context, userID, evaluationID uint) (*dto.RatingResponseDTO, error) {
	evaluation, err := s.evaluationRepo.FindByID(ctx, evaluationID)
	if err != nil {
		return nil, lookupErr(err, "evaluation", evaluationID)
	}
	if evaluation.Status != model.EvaluationActive {
		return nil, apperr.Conflict(fmt.Sprintf("evaluation %d is %s and cannot be started", evaluationID, evaluation.Status))
	}

	draft, err := s.ratingRepo.FindDraft(ctx, userID, evaluationID)
	if err == nil {
		return s.getRating(ctx, draft.ID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up draft rating: %w", err)
	}

	rating := model.Rating{UserID: userID, EvaluationID: evaluationID, Status: model.RatingDraft}
	if err := s.ratingRepo.Create(ctx, &rating); err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("evaluationID", evaluationID).Msg("Failed to create rating")
		return nil, writeErr(err, "rating")
	}
	log.Info().Uint("ratingID", rating.ID).Uint("userID", userID).Uint("evaluationID", evaluationID).Msg("Rating started")
	return s.getRating(ctx, rating.ID)
}

func (s *ratingService) SaveAnswers(ctx context.Context, ratingID uint, req dto.RatingItemsSaveDTO) (*dto.RatingResponseDTO, error) {
	rating, err := s.ownedDraft(ctx, ratingID, req.UserID)
	if err != nil {
		return nil, err
	}
	evaluation, err := s.evaluationRepo.FindByIDWithCriteria(ctx, rating.EvaluationID)
	if err != nil {
		return nil, lookupErr(err, "evaluation", rating.EvaluationID)
	}

	known := make(map[uint]bool, len(evaluation.Criteria))
	for _, c := range evaluation.Criteria {
		known[c.ID] = true
	}
	var details []string
	seen := make(map[uint]bool, len(req.Items))
	items := make([]model.RatingItem, 0, len(req.Items))
	for _, it := range req.Items {
		switch {
		case !known[it.CriterionID]:
			details = append(details, fmt.Sprintf("criterion %d does not belong to evaluation %d", it.CriterionID, evaluation.ID))
		case seen[it.CriterionID]:
			details = append(details, fmt.Sprintf("criterion %d is answered twice", it.CriterionID))
		case it.Score < 1 || it.Score > model.LikertPoints:
			details = append(details, fmt.Sprintf("criterion %d: score %d is outside 1-%d", it.CriterionID, it.Score, model.LikertPoints))
		}
		seen[it.CriterionID] = true
		items = append(items, model.RatingItem{CriterionID: it.CriterionID, Score: it.Score})
	}
	if len(details) > 0 {
		return nil, &apperr.Error{Code: apperr.CodeInvalid, Message: "invalid answers", Details: details}
	}

	if err := s.ratingRepo.UpsertItems(ctx, rating.ID, items); err != nil {
		log.Error().Err(err).Uint("ratingID", rating.ID).Msg("Failed to save answers")
		return nil, fmt.Errorf("failed to save answers for rating %d: %w", rating.ID, err)
	}
	return s.getRating(ctx, rating.ID)
}

func (s *ratingService) SubmitRating(ctx context.Context, ratingID, userID uint) (*dto.RatingResponseDTO, error) {
	rating, err := s.ownedDraft(ctx, ratingID, userID)
	if err != nil {
		return nil, err
	}
	evaluation, err := s.evaluationRepo.FindByIDWithCriteria(ctx, rating.EvaluationID)
	if err != nil {
		return nil, lookupErr(err, "evaluation", rating.EvaluationID)
	}

	if len(rating.Items) == 0 {
		return nil, &apperr.Error{Code: apperr.CodeIncomplete, Message: "rating has no answers"}
	}
	if missing := scoring.MissingRequired(evaluation.Criteria, rating.Items); len(missing) > 0 {
		details := make([]string, len(missing))
		for i, id := range missing {
			details[i] = strconv.FormatUint(uint64(id), 10)
		}
		return nil, &apperr.Error{Code: apperr.CodeIncomplete, Message: "required criteria are unanswered", Details: details}
	}

	result, err := scoring.Score(evaluation.Criteria, rating.Items)
	if err != nil {
		log.Error().Err(err).Uint("ratingID", rating.ID).Msg("Rating could not be scored")
		return nil, apperr.New(apperr.CodeInvalid, err.Error(), err)
	}
	if !result.Scoreable {
		return nil, apperr.Conflict(fmt.Sprintf("evaluation %d has no criteria to score", evaluation.ID))
	}
	for _, d := range result.Defects {
		log.Warn().Uint("evaluationID", evaluation.ID).Str("kind", string(d.Kind)).Uint("criterionID", d.CriterionID).
			Float64("total", d.Total).Msg("Evaluation authoring defect")
	}

	total := scoring.Round2(result.Percentage)
	submittedAt := s.now()
	rating.TotalScore = &total
	rating.ScoreWarnings = result.Warnings()
	rating.SubmittedAt = &submittedAt

	ok, err := s.ratingRepo.MarkSubmitted(ctx, rating)
	if err != nil {
		log.Error().Err(err).Uint("ratingID", rating.ID).Msg("Failed to submit rating")
		return nil, fmt.Errorf("failed to submit rating %d: %w", rating.ID, err)
	}
	if !ok {
		return nil, apperr.Conflict(fmt.Sprintf("rating %d was already submitted", rating.ID))
	}
	log.Info().Uint("ratingID", rating.ID).Uint("userID", userID).Float64("score", total).Msg("Rating submitted")

	if err := s.recoCache.InvalidateEvaluation(ctx, userID, rating.EvaluationID); err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("evaluationID", rating.EvaluationID).Msg("Failed to invalidate recommendation cache")
	}
	return s.getRating(ctx, rating.ID)
}

func (s *ratingService) GetRating(ctx context.Context, ratingID, userID uint) (*dto.RatingResponseDTO, error) {
	rating, err := s.ratingRepo.FindByIDWithItems(ctx, ratingID)
	if err != nil {
		return nil, lookupErr(err, "rating", ratingID)
	}
	if rating.UserID != userID {
		return nil, apperr.Forbidden(fmt.Sprintf("rating %d belongs to another user", ratingID))
	}
	return toRatingResponse(rating), nil
}

func (s *ratingService) ListUserRatings(ctx context.Context, userID uint, evaluationID *uint) ([]dto.RatingResponseDTO, error) {
	ratings, err := s.ratingRepo.FindAllByUser(ctx, userID, evaluationID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to list ratings")
		return nil, fmt.Errorf("failed to list ratings for user %d: %w", userID, err)
	}
	resp := make([]dto.RatingResponseDTO, 0, len(ratings))
	for i := range ratings {
		resp = append(resp, *toRatingResponse(&ratings[i]))
	}
	return resp, nil
}

// ownedDraft loads a rating with its items and checks it can still be edited by userID.
func (s *ratingService) ownedDraft(ctx context.Context, ratingID, userID uint) (*model.Rating, error) {
	rating, err := s.ratingRepo.FindByIDWithItems(ctx, ratingID)
	if err != nil {
		return nil, lookupErr(err, "rating", ratingID)
	}
	if rating.UserID != userID {
		return nil, apperr.Forbidden(fmt.Sprintf("rating %d belongs to another user", ratingID))
	}
	if rating.Status != model.RatingDraft {
		return nil, apperr.Conflict(fmt.Sprintf("rating %d is already submitted", ratingID))
	}
	return rating, nil
}

func (s *ratingService) getRating(ctx context.Context, ratingID uint) (*dto.RatingResponseDTO, error) {
	rating, err := s.ratingRepo.FindByIDWithItems(ctx, ratingID)
	if err != nil {
		return nil, lookupErr(err, "rating", ratingID)
	}
	return toRatingResponse(rating), nil
}

func toRatingResponse(rating *model.Rating) *dto.RatingResponseDTO {
	var resp dto.RatingResponseDTO
	copier.Copy(&resp, rating)
	resp.Status = string(rating.Status)
	resp.EvaluationTitle = rating.Evaluation.Title
	resp.ScoreWarnings = []string(rating.ScoreWarnings)
	return &resp
}
