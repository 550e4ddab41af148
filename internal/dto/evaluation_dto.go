package dto

import "time"

// CriterionCreateDTO is one criterion of an evaluation being authored.
// AnswerPercentages lists the share earned for answers 1..5 and must sum to 100.
type CriterionCreateDTO struct {
	Title              string    `json:"title" binding:"required"`
	OrderInEvaluation  int       `json:"order_in_evaluation" binding:"required,min=1"`
	Weight             float64   `json:"weight" binding:"gte=0"`
	MaxScore           float64   `json:"max_score" binding:"gte=0"`
	QuestionPercentage float64   `json:"question_percentage" binding:"gte=0,lte=100"`
	IsRequired         bool      `json:"is_required"`
	AnswerPercentages  []float64 `json:"answer_percentages" binding:"required,len=5,dive,gte=0,lte=100"`
}

// EvaluationCreateDTO is for admin to author an evaluation with all its criteria.
type EvaluationCreateDTO struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description,omitempty"`
	Status      string               `json:"status,omitempty" binding:"omitempty,oneof=DRAFT ACTIVE ARCHIVED COMPLETED"`
	Criteria    []CriterionCreateDTO `json:"criteria" binding:"required,min=1,dive"`
}

type EvaluationStatusUpdateDTO struct {
	Status string `json:"status" binding:"required,oneof=DRAFT ACTIVE ARCHIVED COMPLETED"`
}

type CriterionResponseDTO struct {
	ID                 uint    `json:"id"`
	Title              string  `json:"title"`
	OrderInEvaluation  int     `json:"order_in_evaluation"`
	Weight             float64 `json:"weight"`
	MaxScore           float64 `json:"max_score"`
	QuestionPercentage float64 `json:"question_percentage"`
	IsRequired         bool    `json:"is_required"`
	Answer1Percentage  float64 `json:"answer1_percentage"`
	Answer2Percentage  float64 `json:"answer2_percentage"`
	Answer3Percentage  float64 `json:"answer3_percentage"`
	Answer4Percentage  float64 `json:"answer4_percentage"`
	Answer5Percentage  float64 `json:"answer5_percentage"`
}

type EvaluationResponseDTO struct {
	ID          uint                   `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Status      string                 `json:"status"`
	Criteria    []CriterionResponseDTO `json:"criteria,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// EvaluationSummaryDTO is used for listing evaluations available to users.
type EvaluationSummaryDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	CriterionCount int       `json:"criterion_count"`
	CreatedAt      time.Time `json:"created_at"`
}
