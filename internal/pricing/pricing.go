// Package pricing resolves the chargeable price of a book: the book's own
// discount first, then an optional coupon on the discounted price. Both
// amounts are reported separately.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lshigami/Shelfscore/internal/model"
)

var ErrMalformedInput = errors.New("malformed pricing input")

type RejectionReason string

const (
	ReasonNotFound       RejectionReason = "not-found"
	ReasonInactive       RejectionReason = "inactive"
	ReasonNotYetValid    RejectionReason = "not-yet-valid"
	ReasonExpired        RejectionReason = "expired"
	ReasonUsageExhausted RejectionReason = "usage-exhausted"
	ReasonWrongUser      RejectionReason = "wrong-user"
	ReasonBelowMinimum   RejectionReason = "below-minimum-purchase"
)

// Rejection explains why a coupon was not applied. Checkout continues
// without the coupon.
type Rejection struct {
	Reason  RejectionReason `json:"reason"`
	Message string          `json:"message"`
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("coupon rejected (%s): %s", r.Reason, r.Message)
}

type DiscountSource string

const (
	SourceNone           DiscountSource = ""
	SourceBook           DiscountSource = "book"
	SourceRecommendation DiscountSource = "recommendation"
)

type Input struct {
	Price                  float64
	BookDiscountPercentage *float64
	// RecommendedDiscountPercentage is only set by the caller when the book is
	// recommended for the purchasing user.
	RecommendedDiscountPercentage *float64

	CouponCode string
	Coupon     *model.Coupon // nil when CouponCode did not resolve
	UserID     uint
	Now        time.Time
}

type Quote struct {
	ListPrice              float64        `json:"list_price"`
	BookDiscountPercentage float64        `json:"book_discount_percentage"`
	BookDiscountSource     DiscountSource `json:"book_discount_source,omitempty"`
	BookDiscountAmount     float64        `json:"book_discount_amount"`
	PriceAfterBookDiscount float64        `json:"price_after_book_discount"`

	CouponCode           string     `json:"coupon_code,omitempty"`
	CouponID             *uint      `json:"coupon_id,omitempty"`
	CouponDiscountAmount float64    `json:"coupon_discount_amount"`
	CouponApplied        bool       `json:"coupon_applied"`
	Rejection            *Rejection `json:"rejection,omitempty"`

	FinalPrice float64 `json:"final_price"`
}

// Resolve never fails on business rules; a rejected coupon is reported in
// Quote.Rejection. Errors are reserved for inputs that break the contract.
func Resolve(in Input) (Quote, error) {
	if math.IsNaN(in.Price) || in.Price < 0 {
		return Quote{}, fmt.Errorf("%w: price %.2f", ErrMalformedInput, in.Price)
	}

	q := Quote{ListPrice: RoundMoney(in.Price), CouponCode: in.CouponCode}

	pct, source, err := bookDiscount(in)
	if err != nil {
		return Quote{}, err
	}
	q.BookDiscountPercentage = pct
	q.BookDiscountSource = source
	q.BookDiscountAmount = RoundMoney(in.Price * pct / 100)
	q.PriceAfterBookDiscount = RoundMoney(in.Price - q.BookDiscountAmount)
	q.FinalPrice = q.PriceAfterBookDiscount

	if in.CouponCode == "" && in.Coupon == nil {
		return q, nil
	}

	if rej := ValidateCoupon(in.Coupon, in.UserID, q.PriceAfterBookDiscount, in.Now); rej != nil {
		q.Rejection = rej
		return q, nil
	}

	discount, err := CouponDiscount(*in.Coupon, q.PriceAfterBookDiscount)
	if err != nil {
		return Quote{}, err
	}
	id := in.Coupon.ID
	q.CouponID = &id
	q.CouponCode = in.Coupon.Code
	q.CouponApplied = true
	q.CouponDiscountAmount = discount
	q.FinalPrice = math.Max(0, RoundMoney(q.PriceAfterBookDiscount-discount))
	return q, nil
}

// bookDiscount picks the larger of the book's own discount and the
// recommended-book discount.
func bookDiscount(in Input) (float64, DiscountSource, error) {
	pct, source := 0.0, SourceNone
	if in.BookDiscountPercentage != nil {
		if err := checkPercentage("book discount", *in.BookDiscountPercentage); err != nil {
			return 0, SourceNone, err
		}
		if *in.BookDiscountPercentage > 0 {
			pct, source = *in.BookDiscountPercentage, SourceBook
		}
	}
	if in.RecommendedDiscountPercentage != nil {
		if err := checkPercentage("recommended discount", *in.RecommendedDiscountPercentage); err != nil {
			return 0, SourceNone, err
		}
		if *in.RecommendedDiscountPercentage > pct {
			pct, source = *in.RecommendedDiscountPercentage, SourceRecommendation
		}
	}
	return pct, source, nil
}

// ValidateCoupon runs the checks in order and stops at the first failure.
// amount is the price after the book discount.
func ValidateCoupon(c *model.Coupon, userID uint, amount float64, now time.Time) *Rejection {
	switch {
	case c == nil:
		return &Rejection{Reason: ReasonNotFound, Message: "coupon code does not exist"}
	case !c.IsActive:
		return &Rejection{Reason: ReasonInactive, Message: "coupon is not active"}
	case !c.ValidFrom.IsZero() && now.Before(c.ValidFrom):
		return &Rejection{Reason: ReasonNotYetValid, Message: fmt.Sprintf("coupon is valid from %s", c.ValidFrom.Format(time.RFC3339))}
	case c.ValidUntil != nil && now.After(*c.ValidUntil):
		return &Rejection{Reason: ReasonExpired, Message: fmt.Sprintf("coupon expired at %s", c.ValidUntil.Format(time.RFC3339))}
	case c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit:
		return &Rejection{Reason: ReasonUsageExhausted, Message: "coupon usage limit reached"}
	case c.UserID != nil && *c.UserID != userID:
		return &Rejection{Reason: ReasonWrongUser, Message: "coupon belongs to another user"}
	case c.MinPurchaseAmount != nil && amount < *c.MinPurchaseAmount:
		return &Rejection{Reason: ReasonBelowMinimum, Message: fmt.Sprintf("minimum purchase amount is %.2f", *c.MinPurchaseAmount)}
	}
	return nil
}

// CouponDiscount computes the coupon's discount on amount. It never exceeds amount.
func CouponDiscount(c model.Coupon, amount float64) (float64, error) {
	if math.IsNaN(c.DiscountValue) || c.DiscountValue < 0 {
		return 0, fmt.Errorf("%w: coupon %s discount value %.2f", ErrMalformedInput, c.Code, c.DiscountValue)
	}
	var discount float64
	switch c.DiscountType {
	case model.DiscountPercentage:
		if c.DiscountValue > 100 {
			return 0, fmt.Errorf("%w: coupon %s percentage %.2f above 100", ErrMalformedInput, c.Code, c.DiscountValue)
		}
		discount = amount * c.DiscountValue / 100
		if c.MaxDiscountAmount != nil && discount > *c.MaxDiscountAmount {
			discount = *c.MaxDiscountAmount
		}
	case model.DiscountFixedAmount:
		discount = c.DiscountValue
	default:
		return 0, fmt.Errorf("%w: coupon %s has unknown discount type %q", ErrMalformedInput, c.Code, c.DiscountType)
	}
	return RoundMoney(math.Min(discount, amount)), nil
}

func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

func checkPercentage(what string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 100 {
		return fmt.Errorf("%w: %s %.2f outside 0-100", ErrMalformedInput, what, v)
	}
	return nil
}
