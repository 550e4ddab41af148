package model

import (
	"time"

	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

type Coupon struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	Code              string         `json:"code" gorm:"not null;uniqueIndex"`
	DiscountType      DiscountType   `json:"discount_type" gorm:"not null"`
	DiscountValue     float64        `json:"discount_value" gorm:"not null"`
	MinPurchaseAmount *float64       `json:"min_purchase_amount,omitempty"`
	MaxDiscountAmount *float64       `json:"max_discount_amount,omitempty"` // PERCENTAGE only
	UserID            *uint          `json:"user_id,omitempty" gorm:"index"`
	UsageLimit        *int           `json:"usage_limit,omitempty"` // nil = unlimited
	UsedCount         int            `json:"used_count" gorm:"not null;default:0"`
	ValidFrom         time.Time      `json:"valid_from" gorm:"not null"`
	ValidUntil        *time.Time     `json:"valid_until,omitempty"`
	IsActive          bool           `json:"is_active" gorm:"not null"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
