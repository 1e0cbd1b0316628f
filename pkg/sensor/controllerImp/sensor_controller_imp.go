package controllerImp

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"greenhouse/entities"
	"greenhouse/pkg/sensor/repository"
)

type SensorCtrl struct{ repo repository.SensorRepository }

func New(repo repository.SensorRepository) *SensorCtrl { return &SensorCtrl{repo} }

const tsLayout = "2006-01-02 15:04:05"

func parseTS(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	if t, err := time.Parse(tsLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Now()
}

// asNumber accepts JSON numbers and numeric strings; everything else is
// silently dropped from the batch.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func (h *SensorCtrl) Submit(c echo.Context) error {
	var body struct {
		Topic     string         `json:"topic"`
		Timestamp string         `json:"timestamp"`
		Data      map[string]any `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}
	if body.Topic == "" || body.Data == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}

	ts := parseTS(body.Timestamp)
	rows := make([]entities.SensorReading, 0, len(body.Data))
	for key, raw := range body.Data {
		if key == "rssi" {
			continue
		}
		v, ok := asNumber(raw)
		if !ok {
			continue
		}
		rows = append(rows, entities.SensorReading{
			Timestamp: ts,
			Topic:     body.Topic,
			ValueKey:  key,
			Value:     v,
		})
	}

	if err := h.repo.InsertBatch(rows); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}

func (h *SensorCtrl) LatestAll(c echo.Context) error {
	rows, err := h.repo.LatestAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	out := make(map[string]echo.Map, len(rows))
	for _, r := range rows {
		out[strings.ToLower(r.ValueKey)] = echo.Map{"timestamp": r.Timestamp, "value": r.Value}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SensorCtrl) LatestByKey(c echo.Context) error {
	row, err := h.repo.LatestByKey(c.Param("value_key"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if row == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"timestamp": row.Timestamp, "value": row.Value})
}

// historyAliases keeps legacy key names queryable under their current name.
var historyAliases = map[string][]string{
	"humidity": {"hum"},
	"soil_raw": {"value"},
}

func (h *SensorCtrl) History(c echo.Context) error {
	key := c.Param("value_key")
	hours := 24
	if v := c.QueryParam("hours"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			hours = n
		}
	}

	keys := []string{key}
	keys = append(keys, historyAliases[strings.ToLower(key)]...)

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	rows, err := h.repo.History(keys, since)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	out := make([]echo.Map, 0, len(rows))
	for _, r := range rows {
		out = append(out, echo.Map{"timestamp": r.Timestamp, strings.ToLower(key): r.Value})
	}
	return c.JSON(http.StatusOK, out)
}
