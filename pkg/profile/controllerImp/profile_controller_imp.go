package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"greenhouse/pkg/apperr"
	"greenhouse/pkg/profile"
	"greenhouse/pkg/profile/service"
)

type ProfileCtrl struct{ svc service.ProfileService }

func New(svc service.ProfileService) *ProfileCtrl { return &ProfileCtrl{svc} }

func (h *ProfileCtrl) GetActive(c echo.Context) error {
	name, sp, err := h.svc.GetActive()
	if err != nil {
		return c.JSON(apperr.Status(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"profile_name": name, "setpoints": sp})
}

func (h *ProfileCtrl) GetAll(c echo.Context) error {
	active, profiles, err := h.svc.GetAll()
	if err != nil {
		return c.JSON(apperr.Status(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"active_profile": active, "profiles": profiles})
}

func (h *ProfileCtrl) Save(c echo.Context) error {
	var body struct {
		ProfileName string            `json:"profile_name"`
		Setpoints   profile.Setpoints `json:"setpoints"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}
	if body.ProfileName == "" || len(body.Setpoints) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}
	if err := h.svc.Save(body.ProfileName, body.Setpoints); err != nil {
		return c.JSON(apperr.Status(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success", "message": "Profile saved"})
}

func (h *ProfileCtrl) Activate(c echo.Context) error {
	sp, err := h.svc.Activate(c.Param("profile_name"))
	if err != nil {
		return c.JSON(apperr.Status(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "success",
		"message":   "Profile activated",
		"setpoints": sp,
	})
}
