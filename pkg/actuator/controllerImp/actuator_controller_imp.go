package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"greenhouse/pkg/actuator"
	"greenhouse/pkg/actuator/repository"
)

type ActuatorCtrl struct {
	dev  actuator.Device
	repo repository.ActuatorRepository
}

func New(dev actuator.Device, repo repository.ActuatorRepository) *ActuatorCtrl {
	return &ActuatorCtrl{dev: dev, repo: repo}
}

// Register wires /<name>/log, /<name>/status and /<name>/history.
func (h *ActuatorCtrl) Register(g *echo.Group) {
	g.POST("/"+h.dev.Name+"/log", h.Log)
	g.GET("/"+h.dev.Name+"/status", h.Status)
	g.GET("/"+h.dev.Name+"/history", h.History)
}

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

func numberField(body map[string]any, key string) *float64 {
	switch v := body[key].(type) {
	case float64:
		return &v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	}
	return nil
}

func (h *ActuatorCtrl) Log(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}

	status, _ := body["status"].(string)
	metric := numberField(body, h.dev.MetricColumn)
	if status == "" || (h.dev.MetricRequired && metric == nil) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}

	ts := time.Now()
	if s, ok := body["timestamp"].(string); ok {
		ts = parseTS(s)
	}

	if err := h.repo.Append(h.dev, ts, status, metric); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}

func (h *ActuatorCtrl) Status(c echo.Context) error {
	e, err := h.repo.Latest(h.dev)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if e == nil {
		// No rows logged yet; report the safe default.
		return c.JSON(http.StatusOK, echo.Map{"status": "OFF", "timestamp": nil})
	}
	return c.JSON(http.StatusOK, h.entryJSON(*e))
}

func (h *ActuatorCtrl) History(c echo.Context) error {
	hours := 24
	if v := c.QueryParam("hours"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			hours = n
		}
	}
	since := time.Now().Add(-time.Duration(hours) * time.Hour)

	entries, err := h.repo.History(h.dev, since)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	out := make([]echo.Map, 0, len(entries))
	for _, e := range entries {
		out = append(out, h.entryJSON(e))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ActuatorCtrl) entryJSON(e repository.Entry) echo.Map {
	return echo.Map{
		"id":               e.ID,
		"timestamp":        e.Timestamp,
		"status":           e.Status,
		h.dev.MetricColumn: e.Metric,
	}
}
