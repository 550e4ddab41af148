package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/model"
	"github.com/lshigami/Shelfscore/internal/repository"
	"github.com/rs/zerolog/log"
)

type CouponService interface {
	CreateCoupon(ctx context.Context, req dto.CouponCreateDTO) (*dto.CouponResponseDTO, error)
	GetCoupon(ctx context.Context, code string) (*dto.CouponResponseDTO, error)
}

type couponService struct {
	couponRepo repository.CouponRepository
	now        func() time.Time
}

func NewCouponService(couponRepo repository.CouponRepository) CouponService {
	return &couponService{couponRepo: couponRepo, now: time.Now}
}

func (s *couponService) CreateCoupon(ctx context.Context, req dto.CouponCreateDTO) (*dto.CouponResponseDTO, error) {
	coupon := model.Coupon{
		Code:              strings.TrimSpace(req.Code),
		DiscountType:      model.DiscountType(req.DiscountType),
		DiscountValue:     req.DiscountValue,
		MinPurchaseAmount: req.MinPurchaseAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		UserID:            req.UserID,
		UsageLimit:        req.UsageLimit,
		ValidUntil:        req.ValidUntil,
		IsActive:          true,
	}
	coupon.ValidFrom = s.now()
	if req.ValidFrom != nil {
		coupon.ValidFrom = *req.ValidFrom
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}

	var details []string
	if coupon.Code == "" {
		details = append(details, "code must not be blank")
	}
	switch coupon.DiscountType {
	case model.DiscountPercentage:
		if coupon.DiscountValue <= 0 || coupon.DiscountValue > 100 {
			details = append(details, "percentage discount must be in (0, 100]")
		}
	case model.DiscountFixedAmount:
		if coupon.DiscountValue <= 0 {
			details = append(details, "fixed discount must be positive")
		}
		if coupon.MaxDiscountAmount != nil {
			details = append(details, "max_discount_amount only applies to PERCENTAGE coupons")
		}
	default:
		details = append(details, fmt.Sprintf("unknown discount type %q", req.DiscountType))
	}
	if coupon.ValidUntil != nil && coupon.ValidUntil.Before(coupon.ValidFrom) {
		details = append(details, "valid_until is before valid_from")
	}
	if len(details) > 0 {
		return nil, &apperr.Error{Code: apperr.CodeInvalid, Message: "invalid coupon", Details: details}
	}

	if err := s.couponRepo.Create(ctx, &coupon); err != nil {
		log.Error().Err(err).Str("code", coupon.Code).Msg("Failed to create coupon")
		return nil, writeErr(err, "coupon "+coupon.Code)
	}
	log.Info().Uint("couponID", coupon.ID).Str("code", coupon.Code).Msg("Coupon created")
	return toCouponResponse(&coupon), nil
}

func (s *couponService) GetCoupon(ctx context.Context, code string) (*dto.CouponResponseDTO, error) {
	coupon, err := s.couponRepo.FindByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("failed to load coupon %s: %w", code, err)
	}
	if coupon == nil {
		return nil, apperr.NotFound(fmt.Sprintf("coupon %s not found", code))
	}
	return toCouponResponse(coupon), nil
}

func toCouponResponse(c *model.Coupon) *dto.CouponResponseDTO {
	var resp dto.CouponResponseDTO
	copier.Copy(&resp, c)
	resp.DiscountType = string(c.DiscountType)
	return &resp
}
