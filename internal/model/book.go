package model

import (
	"time"

	"gorm.io/gorm"
)

// BookCategory groups books and points at no more than one evaluation.
type BookCategory struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `json:"name" gorm:"not null;uniqueIndex"`
	EvaluationID *uint          `json:"evaluation_id,omitempty" gorm:"index"`
	Evaluation   *Evaluation    `json:"evaluation,omitempty" gorm:"foreignKey:EvaluationID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

type Book struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	Title              string         `json:"title" gorm:"not null"`
	Author             string         `json:"author,omitempty"`
	Price              float64        `json:"price" gorm:"not null"`
	DiscountPercentage *float64       `json:"discount_percentage,omitempty"`
	Categories         []BookCategory `json:"categories,omitempty" gorm:"many2many:book_category_links;"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// LinkedEvaluations returns the distinct evaluations reachable through the
// book's categories, in category order.
func (b Book) LinkedEvaluations() []Evaluation {
	seen := make(map[uint]bool)
	var out []Evaluation
	for _, c := range b.Categories {
		if c.EvaluationID == nil || seen[*c.EvaluationID] {
			continue
		}
		seen[*c.EvaluationID] = true
		ev := Evaluation{ID: *c.EvaluationID}
		if c.Evaluation != nil {
			ev = *c.Evaluation
		}
		out = append(out, ev)
	}
	return out
}
