package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"greenhouse/pkg/actuator"
	"greenhouse/pkg/actuator/repository"
)

type actuatorRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActuatorRepository { return &actuatorRepo{db} }

func (r *actuatorRepo) Append(d actuator.Device, ts time.Time, status string, metric *float64) error {
	row := map[string]any{"timestamp": ts, "status": status, d.MetricColumn: metric}
	return r.db.Table(d.Table).Create(row).Error
}

func (r *actuatorRepo) Latest(d actuator.Device) (*repository.Entry, error) {
	var e repository.Entry
	err := r.db.Table(d.Table).
		Select("id, timestamp, status, " + d.MetricColumn + " AS metric").
		Order("timestamp DESC").
		Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *actuatorRepo) History(d actuator.Device, since time.Time) ([]repository.Entry, error) {
	var out []repository.Entry
	err := r.db.Table(d.Table).
		Select("id, timestamp, status, "+d.MetricColumn+" AS metric").
		Where("timestamp > ?", since).
		Order("timestamp ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
