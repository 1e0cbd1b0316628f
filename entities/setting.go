package entities

import "gorm.io/datatypes"

// ConfigSetting is a generic key/value settings store. Values are opaque JSON
// blobs at the storage boundary and decoded into typed structs by the callers.
type ConfigSetting struct {
	Key   string         `gorm:"primaryKey;column:key" json:"key"`
	Value datatypes.JSON `json:"value"`
}
