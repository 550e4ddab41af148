package model

import "time"

type PurchaseStatus string

const (
	PurchasePending PurchaseStatus = "PENDING"
	PurchasePaid    PurchaseStatus = "PAID"
)

type Purchase struct {
	ID                   uint           `gorm:"primarykey" json:"id"`
	Reference            string         `json:"reference" gorm:"not null;uniqueIndex;size:36"`
	UserID               uint           `json:"user_id" gorm:"not null;index"`
	BookID               uint           `json:"book_id" gorm:"not null;index"`
	Book                 Book           `json:"book,omitempty" gorm:"foreignKey:BookID"`
	CouponID             *uint          `json:"coupon_id,omitempty" gorm:"index"`
	ListPrice            float64        `json:"list_price"`
	BookDiscountAmount   float64        `json:"book_discount_amount"`
	CouponDiscountAmount float64        `json:"coupon_discount_amount"`
	FinalPrice           float64        `json:"final_price"`
	Status               PurchaseStatus `json:"status" gorm:"not null;default:'PENDING'"`
	PaidAt               *time.Time     `json:"paid_at,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
