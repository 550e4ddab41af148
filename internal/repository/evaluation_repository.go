package repository

import (
	"context"

	"github.com/lshigami/Shelfscore/internal/model"
	"gorm.io/gorm"
)

type EvaluationWithCount struct {
	model.Evaluation
	CriterionCount int
}

type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *model.Evaluation) error
	FindByID(ctx context.Context, id uint) (*model.Evaluation, error)
	FindByIDWithCriteria(ctx context.Context, id uint) (*model.Evaluation, error)
	FindAllWithCriterionCount(ctx context.Context, status *model.EvaluationStatus) ([]EvaluationWithCount, error)
	UpdateStatus(ctx context.Context, id uint, status model.EvaluationStatus) error
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(ctx context.Context, evaluation *model.Evaluation) error {
	// Criteria are created through the association.
	return r.db.WithContext(ctx).Create(evaluation).Error
}

func (r *evaluationRepository) FindByID(ctx context.Context, id uint) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	if err := r.db.WithContext(ctx).First(&evaluation, id).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *evaluationRepository) FindByIDWithCriteria(ctx context.Context, id uint) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	err := r.db.WithContext(ctx).Preload("Criteria", func(db *gorm.DB) *gorm.DB {
		return db.Order("criteria.order_in_evaluation ASC, criteria.id ASC")
	}).First(&evaluation, id).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *evaluationRepository) FindAllWithCriterionCount(ctx context.Context, status *model.EvaluationStatus) ([]EvaluationWithCount, error) {
	var results []EvaluationWithCount
	query := r.db.WithContext(ctx).Model(&model.Evaluation{}).
		Select("evaluations.*, (SELECT COUNT(*) FROM criteria WHERE criteria.evaluation_id = evaluations.id AND criteria.deleted_at IS NULL) as criterion_count").
		Where("evaluations.deleted_at IS NULL")
	if status != nil {
		query = query.Where("evaluations.status = ?", *status)
	}
	err := query.Order("evaluations.created_at DESC, evaluations.id DESC").Scan(&results).Error
	return results, err
}

func (r *evaluationRepository) UpdateStatus(ctx context.Context, id uint, status model.EvaluationStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Evaluation{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
