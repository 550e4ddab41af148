package repository

import (
	"context"
	"time"

	"github.com/lshigami/Shelfscore/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *model.Rating) error
	FindByID(ctx context.Context, id uint) (*model.Rating, error)
	FindByIDWithItems(ctx context.Context, id uint) (*model.Rating, error)
	FindDraft(ctx context.Context, userID, evaluationID uint) (*model.Rating, error)
	FindAllByUser(ctx context.Context, userID uint, evaluationID *uint) ([]model.Rating, error)
	// FindAuthoritative returns, per evaluation, the user's latest submitted
	// rating that has at least one item.
	FindAuthoritative(ctx context.Context, userID uint) ([]model.Rating, error)
	UpsertItems(ctx context.Context, ratingID uint, items []model.RatingItem) error
	// MarkSubmitted moves a DRAFT rating to SUBMITTED; it reports false when
	// the rating was no longer a draft.
	MarkSubmitted(ctx context.Context, rating *model.Rating) (bool, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) FindByID(ctx context.Context, id uint) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) FindByIDWithItems(ctx context.Context, id uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.WithContext(ctx).
		Preload("Evaluation").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("rating_items.criterion_id ASC")
		}).
		First(&rating, id).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) FindDraft(ctx context.Context, userID, evaluationID uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND evaluation_id = ? AND status = ?", userID, evaluationID, model.RatingDraft).
		Order("id DESC").
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) FindAllByUser(ctx context.Context, userID uint, evaluationID *uint) ([]model.Rating, error) {
	var ratings []model.Rating
	query := r.db.WithContext(ctx).Preload("Evaluation").Where("user_id = ?", userID)
	if evaluationID != nil {
		query = query.Where("evaluation_id = ?", *evaluationID)
	}
	err := query.Order("created_at DESC, id DESC").Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) FindAuthoritative(ctx context.Context, userID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.WithContext(ctx).
		Preload("Evaluation").
		Where("user_id = ? AND status = ? AND total_score IS NOT NULL", userID, model.RatingSubmitted).
		Where("EXISTS (SELECT 1 FROM rating_items WHERE rating_items.rating_id = ratings.id)").
		Order("submitted_at DESC, id DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	latest := ratings[:0]
	for _, rt := range ratings {
		if seen[rt.EvaluationID] {
			continue
		}
		seen[rt.EvaluationID] = true
		latest = append(latest, rt)
	}
	return latest, nil
}

func (r *ratingRepository) UpsertItems(ctx context.Context, ratingID uint, items []model.RatingItem) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]model.RatingItem, len(items))
	for i, it := range items {
		rows[i] = model.RatingItem{
			RatingID:    ratingID,
			CriterionID: it.CriterionID,
			Score:       it.Score,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "rating_id"}, {Name: "criterion_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&rows).Error
}

func (r *ratingRepository) MarkSubmitted(ctx context.Context, rating *model.Rating) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Rating{}).
		Where("id = ? AND status = ?", rating.ID, model.RatingDraft).
		Updates(map[string]interface{}{
			"status":         model.RatingSubmitted,
			"total_score":    rating.TotalScore,
			"score_warnings": rating.ScoreWarnings,
			"submitted_at":   rating.SubmittedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
