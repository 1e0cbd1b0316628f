package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"greenhouse/entities"
	"greenhouse/pkg/sensor/repository"
)

type sensorRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SensorRepository { return &sensorRepo{db} }

func (r *sensorRepo) InsertBatch(rows []entities.SensorReading) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sensorRepo) LatestAll() ([]entities.SensorReading, error) {
	var out []entities.SensorReading
	err := r.db.Raw(`
		SELECT t1.id, t1.timestamp, t1.topic, t1.value_key, t1.value
		FROM sensor_readings t1
		INNER JOIN (
			SELECT MAX(id) AS max_id FROM sensor_readings GROUP BY topic, value_key
		) t2 ON t1.id = t2.max_id
		ORDER BY t1.timestamp DESC`).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sensorRepo) LatestByKey(key string) (*entities.SensorReading, error) {
	var row entities.SensorReading
	err := r.db.Where("value_key = ?", key).Order("id DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *sensorRepo) History(keys []string, since time.Time) ([]entities.SensorReading, error) {
	var out []entities.SensorReading
	err := r.db.Where("value_key IN ? AND timestamp > ?", keys, since).
		Order("timestamp ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
