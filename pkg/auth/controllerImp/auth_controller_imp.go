package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"greenhouse/pkg/apperr"
	"greenhouse/pkg/auth/service"
)

type AuthCtrl struct{ svc service.AuthService }

func New(svc service.AuthService) *AuthCtrl { return &AuthCtrl{svc} }

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), echo.Map{"error": err.Error()})
}

func (h *AuthCtrl) Register(c echo.Context) error {
	var body struct {
		Username string `json:"username" form:"username"`
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.Username == "" || body.Email == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username, email, and password are required"})
	}
	if err := h.svc.Register(body.Username, body.Email, body.Password); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Registration successful. Please verify your email."})
}

func (h *AuthCtrl) Verify(c echo.Context) error {
	var body struct {
		Email string `json:"email" form:"email"`
		Code  string `json:"code" form:"code"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.Email == "" || body.Code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email and verification code are required"})
	}
	if err := h.svc.Verify(body.Email, body.Code); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Email verified successfully"})
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var body struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.Username == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username and password are required"})
	}
	u, token, err := h.svc.Login(body.Username, body.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful", "user": u, "token": token})
}

func (h *AuthCtrl) ResendCode(c echo.Context) error {
	var body struct {
		Email string `json:"email" form:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email is required"})
	}
	if err := h.svc.ResendCode(body.Email); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Verification code resent successfully"})
}

func (h *AuthCtrl) ChangePassword(c echo.Context) error {
	var body struct {
		UserID      uint   `json:"user_id" form:"user_id"`
		OldPassword string `json:"old_password" form:"old_password"`
		NewPassword string `json:"new_password" form:"new_password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.UserID == 0 || body.OldPassword == "" || body.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID, old password, and new password are required"})
	}
	if err := h.svc.ChangePassword(body.UserID, body.OldPassword, body.NewPassword); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password updated successfully"})
}

func (h *AuthCtrl) ChangeUsername(c echo.Context) error {
	var body struct {
		UserID      uint   `json:"user_id" form:"user_id"`
		NewUsername string `json:"new_username" form:"new_username"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.UserID == 0 || body.NewUsername == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID and new username are required"})
	}
	if err := h.svc.ChangeUsername(body.UserID, body.NewUsername); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Username updated successfully", "username": body.NewUsername})
}

func (h *AuthCtrl) CheckUsername(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username is required"})
	}
	exists, err := h.svc.CheckUsername(username)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"exists": exists})
}
