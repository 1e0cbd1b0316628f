package entities

import "time"

// SensorReading is append-only; rows are never updated or deleted.
type SensorReading struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Topic     string    `gorm:"index" json:"topic"`
	ValueKey  string    `gorm:"index" json:"value_key"`
	Value     float64   `json:"value"`
}
