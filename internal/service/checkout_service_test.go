package service

import (
	"context"
	"math"
	"testing"

	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/model"
	"github.com/lshigami/Shelfscore/internal/pricing"
	"github.com/lshigami/Shelfscore/internal/settings"
)

func (h *harness) coupon(t *testing.T, req dto.CouponCreateDTO) *dto.CouponResponseDTO {
	t.Helper()
	c, err := h.coupons.CreateCoupon(context.Background(), req)
	if err != nil {
		t.Fatalf("create coupon %s: %v", req.Code, err)
	}
	return c
}

func TestCheckoutServiceQuote(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	book := h.book(t, "Atomic", 100, ptr(20.0))
	h.coupon(t, dto.CouponCreateDTO{Code: "SAVE10", DiscountType: "PERCENTAGE", DiscountValue: 10, MaxDiscountAmount: ptr(5.0)})
	h.coupon(t, dto.CouponCreateDTO{Code: "OFF", DiscountType: "FIXED_AMOUNT", DiscountValue: 5, IsActive: ptr(false)})

	tests := []struct {
		name       string
		code       string
		wantFinal  float64
		wantCoupon float64
		reason     pricing.RejectionReason
	}{
		{"no coupon", "", 80, 0, ""},
		{"percentage capped", "SAVE10", 75, 5, ""},
		{"unknown code", "NOPE", 80, 0, pricing.ReasonNotFound},
		{"inactive", "OFF", 80, 0, pricing.ReasonInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.checkout.Quote(ctx, book.ID, dto.CheckoutRequestDTO{UserID: 1, CouponCode: tt.code})
			if err != nil {
				t.Fatalf("Quote: %v", err)
			}
			q := got.Quote
			if math.Abs(q.BookDiscountAmount-20) > epsilon || math.Abs(q.PriceAfterBookDiscount-80) > epsilon {
				t.Errorf("book discount = %v, after = %v", q.BookDiscountAmount, q.PriceAfterBookDiscount)
			}
			if math.Abs(q.FinalPrice-tt.wantFinal) > epsilon || math.Abs(q.CouponDiscountAmount-tt.wantCoupon) > epsilon {
				t.Errorf("final = %v coupon = %v, want %v %v", q.FinalPrice, q.CouponDiscountAmount, tt.wantFinal, tt.wantCoupon)
			}
			if tt.reason == "" && q.Rejection != nil {
				t.Errorf("unexpected rejection %+v", q.Rejection)
			}
			if tt.reason != "" && (q.Rejection == nil || q.Rejection.Reason != tt.reason) {
				t.Errorf("rejection = %+v, want %s", q.Rejection, tt.reason)
			}
		})
	}

	_, err := h.checkout.Quote(ctx, 999, dto.CheckoutRequestDTO{UserID: 1})
	assertCode(t, err, apperr.CodeNotFound)
}

func TestCheckoutServiceRecommendedDiscount(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	ev := h.activeEvaluation(t, "Focus", twoCriteria()...)
	cat := h.category(t, "Productivity", &ev.ID)
	book := h.book(t, "Deep Work", 50, ptr(20.0), cat.ID)
	h.submit(t, 1, ev, 4, 3) // 61

	h.setSetting(t, settings.KeyRecommendedBookDiscount, "30")

	t.Run("not recommended at 70", func(t *testing.T) {
		got, err := h.checkout.Quote(ctx, book.ID, dto.CheckoutRequestDTO{UserID: 1})
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if got.IsRecommended || got.Quote.BookDiscountSource != pricing.SourceBook || got.Quote.FinalPrice != 40 {
			t.Errorf("quote = %+v", got)
		}
	})

	h.setSetting(t, settings.KeyRecommendationThreshold, "60")

	t.Run("recommended at 60", func(t *testing.T) {
		got, err := h.checkout.Quote(ctx, book.ID, dto.CheckoutRequestDTO{UserID: 1})
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if !got.IsRecommended || got.Quote.BookDiscountSource != pricing.SourceRecommendation || got.Quote.FinalPrice != 35 {
			t.Errorf("quote = %+v, want recommendation discount to 35", got)
		}
		if got.SettingsVersion != 2 {
			t.Errorf("settings version = %d, want 2", got.SettingsVersion)
		}
	})

	t.Run("users without attempts keep the book discount", func(t *testing.T) {
		got, err := h.checkout.Quote(ctx, book.ID, dto.CheckoutRequestDTO{UserID: 2})
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if got.IsRecommended || got.Quote.FinalPrice != 40 {
			t.Errorf("quote = %+v", got)
		}
	})
}

func TestCheckoutServiceCompletePurchase(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	book := h.book(t, "Atomic", 100, ptr(20.0))
	coupon := h.coupon(t, dto.CouponCreateDTO{Code: "ONCE", DiscountType: "PERCENTAGE", DiscountValue: 10, MaxDiscountAmount: ptr(5.0), UsageLimit: ptr(1)})

	first, err := h.checkout.PlacePurchase(ctx, book.ID, dto.CheckoutRequestDTO{UserID: 1, CouponCode: "ONCE"})
	if err != nil {
		t.Fatalf("PlacePurchase: %v", err)
	}
	second, err := h.checkout.PlacePurchase(ctx, book.ID, dto.CheckoutRequestDTO{UserID: 2, CouponCode: "ONCE"})
	if err != nil {
		t.Fatalf("PlacePurchase: %v", err)
	}
	if first.Status != string(model.PurchasePending) || first.FinalPrice != 75 || first.CouponID == nil || *first.CouponID != coupon.ID {
		t.Fatalf("first purchase = %+v", first)
	}
	if first.Reference == "" || first.Reference == second.Reference {
		t.Fatalf("references %q and %q must be distinct", first.Reference, second.Reference)
	}

	paid, err := h.checkout.CompletePurchase(ctx, first.Reference)
	if err != nil {
		t.Fatalf("CompletePurchase: %v", err)
	}
	if paid.Status != string(model.PurchasePaid) || paid.PaidAt == nil {
		t.Fatalf("completed = %+v", paid)
	}
	again, err := h.checkout.CompletePurchase(ctx, first.Reference)
	if err != nil {
		t.Fatalf("CompletePurchase again: %v", err)
	}
	if again.Status != string(model.PurchasePaid) {
		t.Errorf("second completion = %+v", again)
	}

	_, err = h.checkout.CompletePurchase(ctx, second.Reference)
	assertCode(t, err, apperr.CodeConflict)
	if e, _ := apperr.As(err); len(e.Details) != 1 || e.Details[0] != string(pricing.ReasonUsageExhausted) {
		t.Errorf("rejection details = %v", e.Details)
	}

	stored, err := h.coupons.GetCoupon(ctx, "ONCE")
	if err != nil {
		t.Fatalf("GetCoupon: %v", err)
	}
	if stored.UsedCount != 1 {
		t.Errorf("used count = %d, want exactly 1", stored.UsedCount)
	}

	var pending model.Purchase
	if err := h.db.Where("reference = ?", second.Reference).First(&pending).Error; err != nil {
		t.Fatalf("load second purchase: %v", err)
	}
	if pending.Status != model.PurchasePending {
		t.Errorf("rejected purchase status = %s, want PENDING", pending.Status)
	}

	_, err = h.checkout.CompletePurchase(ctx, "missing")
	assertCode(t, err, apperr.CodeNotFound)
}

func TestCheckoutServicePurchaseWithRejectedCoupon(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	book := h.book(t, "Cheap", 10, nil)
	h.coupon(t, dto.CouponCreateDTO{Code: "BIG", DiscountType: "FIXED_AMOUNT", DiscountValue: 50, MinPurchaseAmount: ptr(20.0)})

	p, err := h.checkout.PlacePurchase(ctx, book.ID, dto.CheckoutRequestDTO{UserID: 1, CouponCode: "BIG"})
	if err != nil {
		t.Fatalf("PlacePurchase: %v", err)
	}
	if p.CouponID != nil || p.FinalPrice != 10 || p.CouponRejection == nil || p.CouponRejection.Reason != pricing.ReasonBelowMinimum {
		t.Fatalf("purchase = %+v", p)
	}
	if _, err := h.checkout.CompletePurchase(ctx, p.Reference); err != nil {
		t.Fatalf("CompletePurchase: %v", err)
	}
}

func TestCouponServiceValidation(t *testing.T) {
	h := newHarness(t)
	tests := []struct {
		name string
		req  dto.CouponCreateDTO
	}{
		{"percentage above 100", dto.CouponCreateDTO{Code: "A", DiscountType: "PERCENTAGE", DiscountValue: 150}},
		{"cap on fixed amount", dto.CouponCreateDTO{Code: "B", DiscountType: "FIXED_AMOUNT", DiscountValue: 5, MaxDiscountAmount: ptr(2.0)}},
		{"unknown type", dto.CouponCreateDTO{Code: "C", DiscountType: "BOGO", DiscountValue: 5}},
		{"ends before start", dto.CouponCreateDTO{Code: "D", DiscountType: "FIXED_AMOUNT", DiscountValue: 5, ValidUntil: ptr(h.now.AddDate(0, 0, -1))}},
		{"blank code", dto.CouponCreateDTO{Code: "  ", DiscountType: "FIXED_AMOUNT", DiscountValue: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.coupons.CreateCoupon(context.Background(), tt.req)
			assertCode(t, err, apperr.CodeInvalid)
		})
	}

	h.coupon(t, dto.CouponCreateDTO{Code: "DUP", DiscountType: "FIXED_AMOUNT", DiscountValue: 5})
	_, err := h.coupons.CreateCoupon(context.Background(), dto.CouponCreateDTO{Code: "DUP", DiscountType: "FIXED_AMOUNT", DiscountValue: 5})
	assertCode(t, err, apperr.CodeConflict)
}
