package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/lshigami/Shelfscore/internal/model"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func f(v float64) *float64 { return &v }
func n(v int) *int          { return &v }
func u(v uint) *uint        { return &v }

func activeCoupon(discountType model.DiscountType, value float64) *model.Coupon {
	return &model.Coupon{
		ID:            1,
		Code:          "SPRING",
		DiscountType:  discountType,
		DiscountValue: value,
		ValidFrom:     now.Add(-24 * time.Hour),
		IsActive:      true,
	}
}

func TestResolveStacksBookDiscountThenCoupon(t *testing.T) {
	c := activeCoupon(model.DiscountPercentage, 10)
	c.MaxDiscountAmount = f(5)

	q, err := Resolve(Input{Price: 100, BookDiscountPercentage: f(20), CouponCode: "SPRING", Coupon: c, UserID: 7, Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.BookDiscountAmount != 20 || q.PriceAfterBookDiscount != 80 {
		t.Fatalf("expected book discount 20 -> 80, got %+v", q)
	}
	if q.CouponDiscountAmount != 5 {
		t.Fatalf("expected capped coupon discount 5, got %v", q.CouponDiscountAmount)
	}
	if q.FinalPrice != 75 {
		t.Fatalf("expected final price 75, got %v", q.FinalPrice)
	}
	if !q.CouponApplied || q.Rejection != nil || q.CouponID == nil || *q.CouponID != 1 {
		t.Fatalf("expected coupon applied: %+v", q)
	}
	if q.BookDiscountSource != SourceBook {
		t.Fatalf("expected book discount source, got %q", q.BookDiscountSource)
	}
}

func TestResolveFixedAmountNeverGoesNegative(t *testing.T) {
	q, err := Resolve(Input{Price: 10, CouponCode: "SPRING", Coupon: activeCoupon(model.DiscountFixedAmount, 50), Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.FinalPrice != 0 || q.CouponDiscountAmount != 10 {
		t.Fatalf("expected final 0 with coupon discount 10, got %+v", q)
	}
}

func TestResolvePercentageWithoutCap(t *testing.T) {
	q, err := Resolve(Input{Price: 59.99, CouponCode: "SPRING", Coupon: activeCoupon(model.DiscountPercentage, 15), Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CouponDiscountAmount != 9 || q.FinalPrice != 50.99 {
		t.Fatalf("expected 9.00 off -> 50.99, got %+v", q)
	}
}

func TestResolveRejectionsKeepPreCouponPrice(t *testing.T) {
	other := uint(99)
	testCases := []struct {
		name   string
		mutate func(c *model.Coupon)
		coupon bool
		want   RejectionReason
	}{
		{"not found", nil, false, ReasonNotFound},
		{"inactive", func(c *model.Coupon) { c.IsActive = false }, true, ReasonInactive},
		{"not yet valid", func(c *model.Coupon) { c.ValidFrom = now.Add(time.Hour) }, true, ReasonNotYetValid},
		{"expired", func(c *model.Coupon) { end := now.Add(-time.Minute); c.ValidUntil = &end }, true, ReasonExpired},
		{"usage exhausted", func(c *model.Coupon) { c.UsageLimit = n(3); c.UsedCount = 3 }, true, ReasonUsageExhausted},
		{"wrong user", func(c *model.Coupon) { c.UserID = &other }, true, ReasonWrongUser},
		{"below minimum", func(c *model.Coupon) { c.MinPurchaseAmount = f(80.01) }, true, ReasonBelowMinimum},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var c *model.Coupon
			if tc.coupon {
				c = activeCoupon(model.DiscountPercentage, 10)
				tc.mutate(c)
			}
			q, err := Resolve(Input{Price: 100, BookDiscountPercentage: f(20), CouponCode: "SPRING", Coupon: c, UserID: 7, Now: now})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Rejection == nil || q.Rejection.Reason != tc.want {
				t.Fatalf("expected rejection %q, got %+v", tc.want, q.Rejection)
			}
			if q.CouponApplied || q.CouponDiscountAmount != 0 {
				t.Fatalf("rejected coupon must not discount: %+v", q)
			}
			if q.FinalPrice != 80 {
				t.Fatalf("expected pre-coupon price 80, got %v", q.FinalPrice)
			}
		})
	}
}

func TestValidateCouponShortCircuitsInOrder(t *testing.T) {
	c := activeCoupon(model.DiscountPercentage, 10)
	c.IsActive = false
	c.UsageLimit = n(1)
	c.UsedCount = 1
	c.UserID = u(5)
	if rej := ValidateCoupon(c, 7, 100, now); rej == nil || rej.Reason != ReasonInactive {
		t.Fatalf("expected inactive to win, got %+v", rej)
	}
}

func TestValidateCouponBoundaries(t *testing.T) {
	c := activeCoupon(model.DiscountFixedAmount, 5)
	c.ValidFrom = now
	end := now
	c.ValidUntil = &end
	c.UsageLimit = n(2)
	c.UsedCount = 1
	c.UserID = u(7)
	c.MinPurchaseAmount = f(80)
	if rej := ValidateCoupon(c, 7, 80, now); rej != nil {
		t.Fatalf("edges of the window and minimum are inclusive, got %+v", rej)
	}
}

func TestResolveRecommendedDiscount(t *testing.T) {
	q, err := Resolve(Input{Price: 50, BookDiscountPercentage: f(10), RecommendedDiscountPercentage: f(25), Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.BookDiscountPercentage != 25 || q.BookDiscountSource != SourceRecommendation || q.FinalPrice != 37.5 {
		t.Fatalf("expected recommended 25%% to win: %+v", q)
	}

	q, err = Resolve(Input{Price: 50, BookDiscountPercentage: f(30), RecommendedDiscountPercentage: f(25), Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.BookDiscountPercentage != 30 || q.BookDiscountSource != SourceBook {
		t.Fatalf("expected book 30%% to win: %+v", q)
	}
}

func TestResolveWithoutCoupon(t *testing.T) {
	q, err := Resolve(Input{Price: 42.5, Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.FinalPrice != 42.5 || q.Rejection != nil || q.CouponApplied || q.BookDiscountSource != SourceNone {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestResolveMalformedInput(t *testing.T) {
	bad := activeCoupon("BOGO", 10)
	cases := []Input{
		{Price: -1, Now: now},
		{Price: 10, BookDiscountPercentage: f(120), Now: now},
		{Price: 10, CouponCode: "SPRING", Coupon: bad, Now: now},
		{Price: 10, CouponCode: "SPRING", Coupon: activeCoupon(model.DiscountFixedAmount, -3), Now: now},
	}
	for i, in := range cases {
		if _, err := Resolve(in); !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("case %d: expected ErrMalformedInput, got %v", i, err)
		}
	}
}
