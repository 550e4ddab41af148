package repository

import (
	"context"
	"errors"

	"github.com/lshigami/Shelfscore/internal/model"
	"gorm.io/gorm"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *model.Coupon) error
	// FindByCode returns nil, nil when no coupon has the code.
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)
	FindByID(ctx context.Context, id uint) (*model.Coupon, error)
	// Redeem atomically increments used_count if the coupon still has uses
	// left. It reports false when the last use was already taken.
	Redeem(ctx context.Context, id uint) (bool, error)
	WithTx(tx *gorm.DB) CouponRepository
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) WithTx(tx *gorm.DB) CouponRepository {
	return &couponRepository{db: tx}
}

func (r *couponRepository) Create(ctx context.Context, coupon *model.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) FindByID(ctx context.Context, id uint) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.WithContext(ctx).First(&coupon, id).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) Redeem(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Coupon{}).
		Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", id).
		UpdateColumn("used_count", gorm.Expr("used_count + ?", 1))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
