package repository

import (
	"storefront/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ISettingsRepository defines the interface for settings data operations.
type ISettingsRepository interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// SettingsRepository implements ISettingsRepository for GORM.
type SettingsRepository struct {
	DB *gorm.DB
}

// NewSettingsRepository creates a new SettingsRepository instance.
func NewSettingsRepository(db *gorm.DB) ISettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the stored value, or gorm.ErrRecordNotFound when the key was
// never set.
func (r *SettingsRepository) Get(key string) (string, error) {
	var setting models.Setting
	if err := r.DB.First(&setting, "`key` = ?", key).Error; err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Set upserts the key.
func (r *SettingsRepository) Set(key, value string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}
