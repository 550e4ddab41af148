package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/model"
	"github.com/lshigami/Shelfscore/internal/repository"
	"github.com/rs/zerolog/log"
)

type EvaluationService interface {
	CreateEvaluation(ctx context.Context, req dto.EvaluationCreateDTO) (*dto.EvaluationResponseDTO, error)
	UpdateStatus(ctx context.Context, id uint, status model.EvaluationStatus) (*dto.EvaluationResponseDTO, error)
	// ListActive returns the evaluations users can currently take.
	ListActive(ctx context.Context) ([]dto.EvaluationSummaryDTO, error)
	// GetEvaluation hides drafts from users.
	GetEvaluation(ctx context.Context, id uint) (*dto.EvaluationResponseDTO, error)
}

type evaluationService struct {
	evaluationRepo repository.EvaluationRepository
}

func NewEvaluationService(evaluationRepo repository.EvaluationRepository) EvaluationService {
	return &evaluationService{evaluationRepo: evaluationRepo}
}

func (s *evaluationService) CreateEvaluation(ctx context.Context, req dto.EvaluationCreateDTO) (*dto.EvaluationResponseDTO, error) {
	if len(req.Criteria) == 0 {
		return nil, apperr.Invalid("an evaluation needs at least one criterion")
	}

	status := model.EvaluationDraft
	if req.Status != "" {
		status = model.EvaluationStatus(req.Status)
		if !status.Valid() {
			return nil, apperr.Invalid(fmt.Sprintf("unknown evaluation status %q", req.Status))
		}
	}

	evaluation := model.Evaluation{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}

	var details []string
	totalQuestion := 0.0
	seenOrder := make(map[int]bool)
	for i, cReq := range req.Criteria {
		if seenOrder[cReq.OrderInEvaluation] {
			details = append(details, fmt.Sprintf("criterion %d: order_in_evaluation %d is used twice", i+1, cReq.OrderInEvaluation))
		}
		seenOrder[cReq.OrderInEvaluation] = true
		if cReq.QuestionPercentage < 0 || cReq.QuestionPercentage > 100 {
			details = append(details, fmt.Sprintf("criterion %d: question_percentage %.2f is outside 0-100", i+1, cReq.QuestionPercentage))
		}
		totalQuestion += cReq.QuestionPercentage

		dist, err := model.NewAnswerDistribution(cReq.AnswerPercentages...)
		if err != nil {
			details = append(details, fmt.Sprintf("criterion %d: %v", i+1, err))
			continue
		}
		criterion := model.Criterion{
			Title:              cReq.Title,
			OrderInEvaluation:  cReq.OrderInEvaluation,
			Weight:             cReq.Weight,
			MaxScore:           cReq.MaxScore,
			QuestionPercentage: cReq.QuestionPercentage,
			IsRequired:         cReq.IsRequired,
		}
		criterion.SetDistribution(dist)
		evaluation.Criteria = append(evaluation.Criteria, criterion)
	}
	if !model.SumsToHundred(totalQuestion) {
		details = append(details, fmt.Sprintf("question percentages sum to %.2f, expected 100", totalQuestion))
	}
	if len(details) > 0 {
		log.Warn().Str("title", req.Title).Strs("details", details).Msg("Rejected evaluation authoring request")
		return nil, &apperr.Error{Code: apperr.CodeInvalid, Message: "invalid evaluation", Details: details}
	}

	if err := s.evaluationRepo.Create(ctx, &evaluation); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create evaluation")
		return nil, writeErr(err, "evaluation "+req.Title)
	}
	log.Info().Uint("evaluationID", evaluation.ID).Int("criteria", len(evaluation.Criteria)).Msg("Evaluation created")
	return s.getEvaluation(ctx, evaluation.ID)
}

// getEvaluation returns an evaluation in any status.
func (s *evaluationService) getEvaluation(ctx context.Context, id uint) (*dto.EvaluationResponseDTO, error) {
	evaluation, err := s.evaluationRepo.FindByIDWithCriteria(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "evaluation", id)
	}
	var resp dto.EvaluationResponseDTO
	copier.Copy(&resp, evaluation)
	return &resp, nil
}

func (s *evaluationService) UpdateStatus(ctx context.Context, id uint, status model.EvaluationStatus) (*dto.EvaluationResponseDTO, error) {
	if !status.Valid() {
		return nil, apperr.Invalid(fmt.Sprintf("unknown evaluation status %q", status))
	}
	if err := s.evaluationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, lookupErr(err, "evaluation", id)
	}
	log.Info().Uint("evaluationID", id).Str("status", string(status)).Msg("Evaluation status changed")
	return s.getEvaluation(ctx, id)
}

func (s *evaluationService) ListActive(ctx context.Context) ([]dto.EvaluationSummaryDTO, error) {
	status := model.EvaluationActive
	rows, err := s.evaluationRepo.FindAllWithCriterionCount(ctx, &status)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list evaluations")
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	summaries := make([]dto.EvaluationSummaryDTO, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, dto.EvaluationSummaryDTO{
			ID:             r.ID,
			Title:          r.Title,
			Description:    r.Description,
			Status:         string(r.Status),
			CriterionCount: r.CriterionCount,
			CreatedAt:      r.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *evaluationService) GetEvaluation(ctx context.Context, id uint) (*dto.EvaluationResponseDTO, error) {
	resp, err := s.getEvaluation(ctx, id)
	if err != nil {
		return nil, err
	}
	if resp.Status == string(model.EvaluationDraft) {
		return nil, apperr.NotFound(fmt.Sprintf("evaluation %d not found", id))
	}
	return resp, nil
}
