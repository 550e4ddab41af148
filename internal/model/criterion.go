package model

import (
	"time"

	"gorm.io/gorm"
)

type Criterion struct {
	ID                 uint    `gorm:"primarykey" json:"id"`
	EvaluationID       uint    `json:"evaluation_id" gorm:"not null;index"`
	Title              string  `json:"title" gorm:"type:text;not null"`
	OrderInEvaluation  int     `json:"order_in_evaluation" gorm:"not null"`
	Weight             float64 `json:"weight"` // informational only
	MaxScore           float64 `json:"max_score"`
	QuestionPercentage float64 `json:"question_percentage" gorm:"not null"`
	IsRequired         bool    `json:"is_required" gorm:"not null;default:false"`

	Answer1Percentage float64 `json:"answer1_percentage" gorm:"not null"`
	Answer2Percentage float64 `json:"answer2_percentage" gorm:"not null"`
	Answer3Percentage float64 `json:"answer3_percentage" gorm:"not null"`
	Answer4Percentage float64 `json:"answer4_percentage" gorm:"not null"`
	Answer5Percentage float64 `json:"answer5_percentage" gorm:"not null"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Criterion) TableName() string {
	return "criteria"
}

// SetDistribution writes a validated distribution into the answer columns.
func (c *Criterion) SetDistribution(d AnswerDistribution) {
	v := d.Percentages()
	c.Answer1Percentage = v[0]
	c.Answer2Percentage = v[1]
	c.Answer3Percentage = v[2]
	c.Answer4Percentage = v[3]
	c.Answer5Percentage = v[4]
}

// StoredPercentages returns the answer columns as persisted, without
// re-checking the 100 sum. Historical rows may have drifted.
func (c Criterion) StoredPercentages() [LikertPoints]float64 {
	return [LikertPoints]float64{
		c.Answer1Percentage,
		c.Answer2Percentage,
		c.Answer3Percentage,
		c.Answer4Percentage,
		c.Answer5Percentage,
	}
}

// AnswerPercentage returns answer{score}Percentage; ok is false for scores outside 1..5.
func (c Criterion) AnswerPercentage(score int) (pct float64, ok bool) {
	if score < 1 || score > LikertPoints {
		return 0, false
	}
	return c.StoredPercentages()[score-1], true
}
