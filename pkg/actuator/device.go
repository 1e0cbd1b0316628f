package actuator

// Device describes one actuator log table: a shared status column plus a
// single device-specific metric column.
type Device struct {
	Name           string // route segment
	Table          string
	MetricColumn   string
	MetricRequired bool
}

var (
	Fan        = Device{Name: "fan", Table: "fan_logs", MetricColumn: "duty_cycle", MetricRequired: true}
	Curtain    = Device{Name: "curtain", Table: "curtain_logs", MetricColumn: "lux"}
	Irrigation = Device{Name: "irrigation", Table: "irrigation_logs", MetricColumn: "soil_moisture"}
	Heater     = Device{Name: "heater", Table: "heater_logs", MetricColumn: "temp"}
	Mister     = Device{Name: "mister", Table: "mister_logs", MetricColumn: "vpd"}
)

var Devices = []Device{Fan, Curtain, Irrigation, Heater, Mister}
