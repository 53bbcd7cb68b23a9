package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// SettingRepository accesses the app_settings key/value table
type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetMulti returns the present subset of the given keys as a map
func (r *SettingRepository) GetMulti(keys []string) (map[string]string, error) {
	var rows []domain.AppSetting
	if err := r.db.Where("`key` IN ?", keys).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// Set upserts a setting by key
func (r *SettingRepository) Set(key, value string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&domain.AppSetting{Key: key, Value: value}).Error
}
