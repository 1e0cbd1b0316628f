package profile

import (
	"log"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Setpoints is a named bundle of numeric thresholds. The backend persists them
// but never interprets them; the greenhouse control loop does.
type Setpoints map[string]float64

// Stored is the envelope written to the settings store under profile_<name>.
type Stored struct {
	ProfileName string    `json:"profile_name"`
	Setpoints   Setpoints `json:"setpoints"`
}

// Defaults seeded on first access when no profile rows exist yet.
var builtinDefaults = map[string]Setpoints{
	"Default": {
		"vpd_target_low":       0.8,
		"vpd_target_high":      1.2,
		"vpd_mister_threshold": 1.0,
		"temp_min_c":           18.0,
		"temp_max_c":           30.0,
		"co2_min_ppm":          500,
		"co2_low_ppm":          600,
		"co2_high_ppm":         1500,
		"light_max_lux":        50000,
		"soil_min_percent":     30.0,
	},
	"Strawberry": {
		"vpd_target_low":       0.6,
		"vpd_target_high":      1.0,
		"vpd_mister_threshold": 1.1,
		"temp_min_c":           16.0,
		"temp_max_c":           24.0,
		"co2_min_ppm":          600,
		"co2_low_ppm":          700,
		"co2_high_ppm":         1000,
		"light_max_lux":        45000,
		"soil_min_percent":     40.0,
	},
}

// LoadDefaults returns the built-in seed profiles, overridden by the yaml file
// at path when it exists (same shape: profile name -> setpoint map).
func LoadDefaults(path string) map[string]Setpoints {
	out := make(map[string]Setpoints, len(builtinDefaults))
	for name, sp := range builtinDefaults {
		cp := make(Setpoints, len(sp))
		for k, v := range sp {
			cp[k] = v
		}
		out[name] = cp
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return out
	}
	var fromFile map[string]Setpoints
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		log.Printf("[profile] ignoring %s: %v", path, err)
		return out
	}
	for name, sp := range fromFile {
		out[name] = sp
	}
	return out
}
