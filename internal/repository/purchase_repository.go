package repository

import (
	"context"
	"time"

	"github.com/lshigami/Shelfscore/internal/model"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *model.Purchase) error
	FindByReference(ctx context.Context, reference string) (*model.Purchase, error)
	// MarkPaid flips a PENDING purchase to PAID and reports whether it did.
	MarkPaid(ctx context.Context, id uint, paidAt time.Time) (bool, error)
	WithTx(tx *gorm.DB) PurchaseRepository
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) WithTx(tx *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: tx}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *model.Purchase) error {
	return r.db.WithContext(ctx).Omit("Book").Create(purchase).Error
}

func (r *purchaseRepository) FindByReference(ctx context.Context, reference string) (*model.Purchase, error) {
	var purchase model.Purchase
	if err := r.db.WithContext(ctx).Preload("Book").Where("reference = ?", reference).First(&purchase).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) MarkPaid(ctx context.Context, id uint, paidAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("id = ? AND status = ?", id, model.PurchasePending).
		Updates(map[string]interface{}{"status": model.PurchasePaid, "paid_at": paidAt})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
