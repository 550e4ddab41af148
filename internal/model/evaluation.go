package model

import (
	"time"

	"gorm.io/gorm"
)

type EvaluationStatus string

const (
	EvaluationDraft     EvaluationStatus = "DRAFT"
	EvaluationActive    EvaluationStatus = "ACTIVE"
	EvaluationArchived  EvaluationStatus = "ARCHIVED"
	EvaluationCompleted EvaluationStatus = "COMPLETED"
)

func (s EvaluationStatus) Valid() bool {
	switch s {
	case EvaluationDraft, EvaluationActive, EvaluationArchived, EvaluationCompleted:
		return true
	}
	return false
}

type Evaluation struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	Title       string           `json:"title" gorm:"not null;uniqueIndex"`
	Description string           `json:"description,omitempty" gorm:"type:text"`
	Status      EvaluationStatus `json:"status" gorm:"not null;default:'DRAFT';index"`
	Criteria    []Criterion      `json:"criteria,omitempty" gorm:"foreignKey:EvaluationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}
