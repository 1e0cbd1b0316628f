package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"greenhouse/pkg/apperr"
	"greenhouse/pkg/friend/repository"
	"greenhouse/pkg/friend/service"
)

type FriendCtrl struct{ svc service.FriendService }

func New(svc service.FriendService) *FriendCtrl { return &FriendCtrl{svc} }

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), echo.Map{"error": err.Error()})
}

func (h *FriendCtrl) Request(c echo.Context) error {
	var body struct {
		UserID         uint   `json:"user_id"`
		FriendUsername string `json:"friend_username"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.UserID == 0 || body.FriendUsername == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID and friend username are required"})
	}
	if err := h.svc.Request(body.UserID, body.FriendUsername); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Friend request sent"})
}

func (h *FriendCtrl) Accept(c echo.Context) error {
	var body struct {
		UserID    uint `json:"user_id"`
		RequestID uint `json:"request_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.UserID == 0 || body.RequestID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID and request ID are required"})
	}
	if err := h.svc.Accept(body.UserID, body.RequestID); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Friend request accepted"})
}

func (h *FriendCtrl) List(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID required"})
	}
	friends, err := h.svc.List(uint(userID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch friends: " + err.Error()})
	}
	if friends == nil {
		friends = []repository.FriendUser{}
	}
	return c.JSON(http.StatusOK, friends)
}

func (h *FriendCtrl) Pending(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID required"})
	}
	rows, err := h.svc.Pending(uint(userID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch requests: " + err.Error()})
	}
	if rows == nil {
		rows = []repository.PendingRow{}
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *FriendCtrl) Sent(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID required"})
	}
	rows, err := h.svc.Sent(uint(userID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch requests: " + err.Error()})
	}
	if rows == nil {
		rows = []repository.PendingRow{}
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *FriendCtrl) Delete(c echo.Context) error {
	var body struct {
		UserID   uint `json:"user_id"`
		FriendID uint `json:"friend_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.UserID == 0 || body.FriendID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID and friend ID are required"})
	}
	if err := h.svc.Delete(body.UserID, body.FriendID); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Friend removed"})
}
