package repository

import (
	"context"
	"time"

	"github.com/lshigami/Shelfscore/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const settingVersionRow = 1

type SettingRepository interface {
	FindAll(ctx context.Context) ([]model.Setting, error)
	// Upsert writes key=value and stamps the row with the next table-wide
	// version, returning it.
	Upsert(ctx context.Context, key, value string) (int64, error)
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) FindAll(ctx context.Context) ([]model.Setting, error) {
	var rows []model.Setting
	err := r.db.WithContext(ctx).Order("key ASC").Find(&rows).Error
	return rows, err
}

func (r *settingRepository) Upsert(ctx context.Context, key, value string) (int64, error) {
	var version int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counter, err := nextSettingVersion(tx)
		if err != nil {
			return err
		}
		version = counter
		row := model.Setting{Key: key, Value: value, Version: version, UpdatedAt: time.Now().UTC()}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "version", "updated_at"}),
		}).Create(&row).Error
	})
	return version, err
}

// nextSettingVersion increments the counter row. The UPDATE blocks
// concurrent writers on the row lock until this transaction ends, so no two
// writers see the same value.
func nextSettingVersion(tx *gorm.DB) (int64, error) {
	// First use: start after any version already stamped on a setting.
	var current int64
	if err := tx.Model(&model.Setting{}).Select("COALESCE(MAX(version), 0)").Scan(&current).Error; err != nil {
		return 0, err
	}
	seed := model.SettingVersion{ID: settingVersionRow, Version: current}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	res := tx.Model(&model.SettingVersion{}).Where("id = ?", settingVersionRow).
		UpdateColumn("version", gorm.Expr("version + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	var version int64
	err := tx.Model(&model.SettingVersion{}).Where("id = ?", settingVersionRow).Select("version").Scan(&version).Error
	return version, err
}
