package entities

import "time"

// One append-only log table per actuator. Each carries the same status column
// plus one device-specific metric; "current status" is the newest row.

type FanLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Status    string    `json:"status"`
	DutyCycle float64   `json:"duty_cycle"`
}

type CurtainLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Status    string    `json:"status"`
	Lux       *float64  `json:"lux"`
}

type IrrigationLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Timestamp    time.Time `gorm:"index" json:"timestamp"`
	Status       string    `json:"status"`
	SoilMoisture *float64  `json:"soil_moisture"`
}

type HeaterLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Status    string    `json:"status"`
	Temp      *float64  `json:"temp"`
}

type MisterLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Status    string    `json:"status"`
	VPD       *float64  `gorm:"column:vpd" json:"vpd"`
}
