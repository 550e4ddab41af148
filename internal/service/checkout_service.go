package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/model"
	"github.com/lshigami/Shelfscore/internal/pricing"
	"github.com/lshigami/Shelfscore/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CheckoutService interface {
	Quote(ctx context.Context, bookID uint, req dto.CheckoutRequestDTO) (*dto.QuoteResponseDTO, error)
	// PlacePurchase records a PENDING purchase at the quoted price. A rejected
	// coupon does not block the purchase; it is reported and left off.
	PlacePurchase(ctx context.Context, bookID uint, req dto.CheckoutRequestDTO) (*dto.PurchaseResponseDTO, error)
	// CompletePurchase marks a purchase PAID and redeems its coupon exactly
	// once. Completing a PAID purchase again returns it unchanged.
	CompletePurchase(ctx context.Context, reference string) (*dto.PurchaseResponseDTO, error)
}

type checkoutService struct {
	db           *gorm.DB // For transactions
	bookRepo     repository.BookRepository
	couponRepo   repository.CouponRepository
	purchaseRepo repository.PurchaseRepository
	settingSvc   SettingService
	recoSvc      RecommendationService
	now          func() time.Time
}

func NewCheckoutService(
	db *gorm.DB,
	bookRepo repository.BookRepository,
	couponRepo repository.CouponRepository,
	purchaseRepo repository.PurchaseRepository,
	settingSvc SettingService,
	recoSvc RecommendationService,
) CheckoutService {
	return &checkoutService{
		db:           db,
		bookRepo:     bookRepo,
		couponRepo:   couponRepo,
		purchaseRepo: purchaseRepo,
		settingSvc:   settingSvc,
		recoSvc:      recoSvc,
		now:          time.Now,
	}
}

var errAlreadyPaid = errors.New("purchase already paid")

func (s *checkoutService) Quote(ctx context.Context, bookID uint, req dto.CheckoutRequestDTO) (*dto.QuoteResponseDTO, error) {
	book, err := s.bookRepo.FindByIDWithCategories(ctx, bookID)
	if err != nil {
		return nil, lookupErr(err, "book", bookID)
	}
	snap, err := s.settingSvc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	match, err := s.recoSvc.ForBook(ctx, req.UserID, *book, snap)
	if err != nil {
		return nil, err
	}

	in := pricing.Input{
		Price:                  book.Price,
		BookDiscountPercentage: book.DiscountPercentage,
		CouponCode:             strings.TrimSpace(req.CouponCode),
		UserID:                 req.UserID,
		Now:                    s.now(),
	}
	if match.IsRecommended {
		in.RecommendedDiscountPercentage = snap.RecommendedBookDiscount
	}
	if in.CouponCode != "" {
		in.Coupon, err = s.couponRepo.FindByCode(ctx, in.CouponCode)
		if err != nil {
			return nil, fmt.Errorf("failed to load coupon %s: %w", in.CouponCode, err)
		}
	}

	quote, err := pricing.Resolve(in)
	if err != nil {
		log.Error().Err(err).Uint("bookID", bookID).Msg("Failed to price book")
		return nil, fmt.Errorf("failed to price book %d: %w", bookID, err)
	}
	if quote.Rejection != nil {
		log.Info().Uint("userID", req.UserID).Str("code", in.CouponCode).Str("reason", string(quote.Rejection.Reason)).Msg("Coupon rejected")
	}
	return &dto.QuoteResponseDTO{
		BookID:          book.ID,
		UserID:          req.UserID,
		IsRecommended:   match.IsRecommended,
		MatchPercentage: match.MatchPercentage,
		SettingsVersion: snap.Version,
		Quote:           quote,
	}, nil
}

func (s *checkoutService) PlacePurchase(ctx context.Context, bookID uint, req dto.CheckoutRequestDTO) (*dto.PurchaseResponseDTO, error) {
	q, err := s.Quote(ctx, bookID, req)
	if err != nil {
		return nil, err
	}
	purchase := model.Purchase{
		Reference:            uuid.NewString(),
		UserID:               req.UserID,
		BookID:               bookID,
		CouponID:             q.Quote.CouponID,
		ListPrice:            q.Quote.ListPrice,
		BookDiscountAmount:   q.Quote.BookDiscountAmount,
		CouponDiscountAmount: q.Quote.CouponDiscountAmount,
		FinalPrice:           q.Quote.FinalPrice,
		Status:               model.PurchasePending,
	}
	if err := s.purchaseRepo.Create(ctx, &purchase); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Uint("bookID", bookID).Msg("Failed to create purchase")
		return nil, writeErr(err, "purchase")
	}
	log.Info().Str("reference", purchase.Reference).Uint("userID", req.UserID).Uint("bookID", bookID).
		Float64("finalPrice", purchase.FinalPrice).Msg("Purchase placed")

	resp := toPurchaseResponse(&purchase)
	resp.CouponRejection = q.Quote.Rejection
	return resp, nil
}

func (s *checkoutService) CompletePurchase(ctx context.Context, reference string) (*dto.PurchaseResponseDTO, error) {
	var completed *model.Purchase
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		purchases := s.purchaseRepo.WithTx(tx)
		purchase, err := purchases.FindByReference(ctx, reference)
		if err != nil {
			return lookupErr(err, "purchase", reference)
		}
		if purchase.Status == model.PurchasePaid {
			completed = purchase
			return nil
		}

		if purchase.CouponID != nil {
			if err := s.redeemCoupon(ctx, s.couponRepo.WithTx(tx), purchase); err != nil {
				return err
			}
		}

		paidAt := s.now()
		ok, err := purchases.MarkPaid(ctx, purchase.ID, paidAt)
		if err != nil {
			return fmt.Errorf("failed to mark purchase %s paid: %w", reference, err)
		}
		if !ok {
			// Paid concurrently; roll back this redemption.
			return errAlreadyPaid
		}
		purchase.Status = model.PurchasePaid
		purchase.PaidAt = &paidAt
		completed = purchase
		return nil
	})
	if errors.Is(err, errAlreadyPaid) {
		purchase, lookup := s.purchaseRepo.FindByReference(ctx, reference)
		if lookup != nil {
			return nil, lookupErr(lookup, "purchase", reference)
		}
		return toPurchaseResponse(purchase), nil
	}
	if err != nil {
		log.Warn().Err(err).Str("reference", reference).Msg("Purchase not completed")
		return nil, err
	}
	log.Info().Str("reference", reference).Msg("Purchase completed")
	return toPurchaseResponse(completed), nil
}

// redeemCoupon re-checks the coupon at payment time and takes one use. The
// purchase stays PENDING when the coupon is no longer valid.
func (s *checkoutService) redeemCoupon(ctx context.Context, coupons repository.CouponRepository, purchase *model.Purchase) error {
	coupon, err := coupons.FindByID(ctx, *purchase.CouponID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load coupon %d: %w", *purchase.CouponID, err)
	}
	amount := pricing.RoundMoney(purchase.ListPrice - purchase.BookDiscountAmount)
	if rej := pricing.ValidateCoupon(coupon, purchase.UserID, amount, s.now()); rej != nil {
		return couponRejected(rej)
	}

	ok, err := coupons.Redeem(ctx, coupon.ID)
	if err != nil {
		return fmt.Errorf("failed to redeem coupon %d: %w", coupon.ID, err)
	}
	if !ok {
		return couponRejected(&pricing.Rejection{
			Reason:  pricing.ReasonUsageExhausted,
			Message: fmt.Sprintf("coupon %s has no uses left", coupon.Code),
		})
	}
	return nil
}

func couponRejected(rej *pricing.Rejection) error {
	return &apperr.Error{
		Code:    apperr.CodeConflict,
		Message: rej.Message,
		Details: []string{string(rej.Reason)},
		Err:     rej,
	}
}

func toPurchaseResponse(p *model.Purchase) *dto.PurchaseResponseDTO {
	var resp dto.PurchaseResponseDTO
	copier.Copy(&resp, p)
	resp.Status = string(p.Status)
	return &resp
}
