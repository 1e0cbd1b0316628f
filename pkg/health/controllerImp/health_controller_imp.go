package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct{ db *gorm.DB }

func New(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	sqlDB, err := h.db.DB()
	if err != nil {
		dbOK = false
		dbErr = "db.DB(): " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbOK = false
		dbErr = "ping: " + err.Error()
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	check := echo.Map{"ok": dbOK}
	if dbErr != "" {
		check["err"] = dbErr
	}
	return c.JSON(status, echo.Map{
		"status":     echo.Map{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     echo.Map{"database": check},
		"time":       time.Now().Format(time.RFC3339),
	})
}
