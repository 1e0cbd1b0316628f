package repository

import (
	"time"

	"greenhouse/pkg/actuator"
)

// Entry is one log row with the device metric flattened behind one name.
type Entry struct {
	ID        uint      `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Metric    *float64  `json:"-"`
}

type ActuatorRepository interface {
	Append(d actuator.Device, ts time.Time, status string, metric *float64) error
	// Latest returns nil when the table is still empty.
	Latest(d actuator.Device) (*Entry, error)
	History(d actuator.Device, since time.Time) ([]Entry, error)
}
