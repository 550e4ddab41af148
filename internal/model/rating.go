package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RatingStatus string

const (
	RatingDraft     RatingStatus = "DRAFT"
	RatingSubmitted RatingStatus = "SUBMITTED"
)

type Rating struct {
	ID            uint                        `gorm:"primarykey" json:"id"`
	UserID        uint                        `json:"user_id" gorm:"not null;index:idx_ratings_user_evaluation"`
	EvaluationID  uint                        `json:"evaluation_id" gorm:"not null;index:idx_ratings_user_evaluation"`
	Evaluation    Evaluation                  `json:"evaluation,omitempty" gorm:"foreignKey:EvaluationID"`
	Status        RatingStatus                `json:"status" gorm:"not null;default:'DRAFT'"`
	TotalScore    *float64                    `json:"total_score,omitempty"`
	ScoreWarnings datatypes.JSONSlice[string] `json:"score_warnings,omitempty"`
	SubmittedAt   *time.Time                  `json:"submitted_at,omitempty"`
	Items         []RatingItem                `json:"items,omitempty" gorm:"foreignKey:RatingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
	DeletedAt     gorm.DeletedAt              `gorm:"index" json:"-"`
}

// RatingItem is unique per (rating, criterion); answering again overwrites Score.
type RatingItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	RatingID    uint      `json:"rating_id" gorm:"not null;uniqueIndex:idx_rating_items_rating_criterion"`
	CriterionID uint      `json:"criterion_id" gorm:"not null;uniqueIndex:idx_rating_items_rating_criterion"`
	Criterion   Criterion `json:"criterion,omitempty" gorm:"foreignKey:CriterionID"`
	Score       int       `json:"score" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
