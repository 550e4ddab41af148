package dto

import (
	"time"

	"github.com/lshigami/Shelfscore/internal/matching"
)

// RatingStartDTO opens (or resumes) a draft rating.
type RatingStartDTO struct {
	UserID uint `json:"user_id" binding:"required"` // Temporary, for non-auth user identification
}

type RatingItemDTO struct {
	CriterionID uint `json:"criterion_id" binding:"required"`
	Score       int  `json:"score" binding:"required,min=1,max=5"`
}

// RatingItemsSaveDTO saves answers on a draft. Answering a criterion again overwrites it.
type RatingItemsSaveDTO struct {
	UserID uint            `json:"user_id" binding:"required"`
	Items  []RatingItemDTO `json:"items" binding:"required,min=1,dive"`
}

type RatingSubmitDTO struct {
	UserID uint `json:"user_id" binding:"required"`
}

type RatingItemResponseDTO struct {
	ID          uint `json:"id"`
	CriterionID uint `json:"criterion_id"`
	Score       int  `json:"score"`
}

type RatingResponseDTO struct {
	ID              uint                    `json:"id"`
	UserID          uint                    `json:"user_id"`
	EvaluationID    uint                    `json:"evaluation_id"`
	EvaluationTitle string                  `json:"evaluation_title,omitempty"`
	Status          string                  `json:"status"`
	TotalScore      *float64                `json:"total_score,omitempty"`
	ScoreWarnings   []string                `json:"score_warnings,omitempty"`
	SubmittedAt     *time.Time              `json:"submitted_at,omitempty"`
	Items           []RatingItemResponseDTO `json:"items,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

// RecommendationsResponseDTO is the ranked book list for one submitted rating.
type RecommendationsResponseDTO struct {
	RatingID        uint              `json:"rating_id"`
	EvaluationID    uint              `json:"evaluation_id"`
	SettingsVersion int64             `json:"settings_version"`
	Threshold       float64           `json:"threshold"`
	Cached          bool              `json:"cached"`
	Books           []matching.Result `json:"books"`
}
