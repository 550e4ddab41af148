package dto

import (
	"time"

	"github.com/lshigami/Shelfscore/internal/pricing"
)

type CouponCreateDTO struct {
	Code              string     `json:"code" binding:"required"`
	DiscountType      string     `json:"discount_type" binding:"required,oneof=PERCENTAGE FIXED_AMOUNT"`
	DiscountValue     float64    `json:"discount_value" binding:"gt=0"`
	MinPurchaseAmount *float64   `json:"min_purchase_amount" binding:"omitempty,gte=0"`
	MaxDiscountAmount *float64   `json:"max_discount_amount" binding:"omitempty,gt=0"`
	UserID            *uint      `json:"user_id"`
	UsageLimit        *int       `json:"usage_limit" binding:"omitempty,min=1"`
	ValidFrom         *time.Time `json:"valid_from"` // defaults to now
	ValidUntil        *time.Time `json:"valid_until"`
	IsActive          *bool      `json:"is_active"` // defaults to true
}

type CouponResponseDTO struct {
	ID                uint       `json:"id"`
	Code              string     `json:"code"`
	DiscountType      string     `json:"discount_type"`
	DiscountValue     float64    `json:"discount_value"`
	MinPurchaseAmount *float64   `json:"min_purchase_amount,omitempty"`
	MaxDiscountAmount *float64   `json:"max_discount_amount,omitempty"`
	UserID            *uint      `json:"user_id,omitempty"`
	UsageLimit        *int       `json:"usage_limit,omitempty"`
	UsedCount         int        `json:"used_count"`
	ValidFrom         time.Time  `json:"valid_from"`
	ValidUntil        *time.Time `json:"valid_until,omitempty"`
	IsActive          bool       `json:"is_active"`
}

// CheckoutRequestDTO is shared by the quote and purchase endpoints.
type CheckoutRequestDTO struct {
	UserID     uint   `json:"user_id" binding:"required"`
	CouponCode string `json:"coupon_code,omitempty"`
}

type QuoteResponseDTO struct {
	BookID          uint          `json:"book_id"`
	UserID          uint          `json:"user_id"`
	IsRecommended   bool          `json:"is_recommended"`
	MatchPercentage float64       `json:"match_percentage"`
	SettingsVersion int64         `json:"settings_version"`
	Quote           pricing.Quote `json:"quote"`
}

type PurchaseResponseDTO struct {
	Reference            string             `json:"reference"`
	UserID               uint               `json:"user_id"`
	BookID               uint               `json:"book_id"`
	CouponID             *uint              `json:"coupon_id,omitempty"`
	ListPrice            float64            `json:"list_price"`
	BookDiscountAmount   float64            `json:"book_discount_amount"`
	CouponDiscountAmount float64            `json:"coupon_discount_amount"`
	FinalPrice           float64            `json:"final_price"`
	Status               string             `json:"status"`
	PaidAt               *time.Time         `json:"paid_at,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	CouponRejection      *pricing.Rejection `json:"coupon_rejection,omitempty"`
}
