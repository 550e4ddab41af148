package dto

import "time"

type CategoryCreateDTO struct {
	Name         string `json:"name" binding:"required"`
	EvaluationID *uint  `json:"evaluation_id"`
}

type CategoryResponseDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	EvaluationID *uint     `json:"evaluation_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookCreateDTO struct {
	Title              string   `json:"title" binding:"required"`
	Author             string   `json:"author,omitempty"`
	Price              float64  `json:"price" binding:"gte=0"`
	DiscountPercentage *float64 `json:"discount_percentage" binding:"omitempty,gte=0,lte=100"`
	CategoryIDs        []uint   `json:"category_ids"`
}

type BookResponseDTO struct {
	ID                 uint                  `json:"id"`
	Title              string                `json:"title"`
	Author             string                `json:"author,omitempty"`
	Price              float64               `json:"price"`
	DiscountPercentage *float64              `json:"discount_percentage,omitempty"`
	Categories         []CategoryResponseDTO `json:"categories,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
}
