package controllerImp

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"greenhouse/pkg/settings/repository"
)

const soilKey = "soil_calib"

type ConfigCtrl struct{ repo repository.SettingsRepository }

func New(repo repository.SettingsRepository) *ConfigCtrl { return &ConfigCtrl{repo} }

type soilCalib struct {
	DryADC float64 `json:"dry_adc"`
	WetADC float64 `json:"wet_adc"`
}

func (h *ConfigCtrl) GetSoil(c echo.Context) error {
	raw, ok, err := h.repo.Get(soilKey)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	cal := soilCalib{DryADC: 3000, WetADC: 1200}
	if ok {
		if err := json.Unmarshal(raw, &cal); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	} else if err := h.repo.Put(soilKey, cal); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cal)
}

func (h *ConfigCtrl) SetSoil(c echo.Context) error {
	var body soilCalib
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}
	if body.DryADC == 0 || body.WetADC == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}
	if body.DryADC <= body.WetADC {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Dry ADC must be greater than Wet ADC"})
	}
	if err := h.repo.Put(soilKey, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success", "message": "Calibration saved"})
}
