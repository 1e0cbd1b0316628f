package repository

import (
	"time"

	"greenhouse/entities"
)

type SensorRepository interface {
	// InsertBatch writes all rows in one transaction; none survive a failure.
	InsertBatch(rows []entities.SensorReading) error
	// LatestAll returns, per (topic, value_key) pair, the row with the max id.
	LatestAll() ([]entities.SensorReading, error)
	LatestByKey(key string) (*entities.SensorReading, error)
	// History returns the ascending series for any of keys since the cutoff.
	History(keys []string, since time.Time) ([]entities.SensorReading, error)
}
