package repositoryImp

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"greenhouse/entities"
	"greenhouse/pkg/settings/repository"
)

type settingsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SettingsRepository { return &settingsRepo{db} }

func (r *settingsRepo) Get(key string) (datatypes.JSON, bool, error) {
	var row entities.ConfigSetting
	err := r.db.Where("key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Value, true, nil
}

func (r *settingsRepo) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	row := entities.ConfigSetting{Key: key, Value: datatypes.JSON(raw)}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
}

func (r *settingsRepo) ListPrefix(prefix string) ([]entities.ConfigSetting, error) {
	var out []entities.ConfigSetting
	if err := r.db.Where("key LIKE ?", prefix+"%").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
