package repository

import (
	"gorm.io/datatypes"

	"greenhouse/entities"
)

// SettingsRepository is the loosely-typed settings store; values stay opaque
// JSON here and are decoded into typed structs by the callers.
type SettingsRepository interface {
	Get(key string) (datatypes.JSON, bool, error)
	// Put marshals value and upserts the row.
	Put(key string, value any) error
	ListPrefix(prefix string) ([]entities.ConfigSetting, error)
}
