package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"greenhouse/entities"
	"greenhouse/pkg/chat/repository"
)

// Chat is polled; messages per conversation fetch are capped here.
const messageLimit = 100

type ChatCtrl struct{ repo repository.ChatRepository }

func New(repo repository.ChatRepository) *ChatCtrl { return &ChatCtrl{repo} }

func (h *ChatCtrl) ListUsers(c echo.Context) error {
	userID, _ := strconv.Atoi(c.QueryParam("user_id"))
	users, err := h.repo.UsersExcluding(uint(userID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch users: " + err.Error()})
	}
	if users == nil {
		users = []repository.UserSummary{}
	}
	return c.JSON(http.StatusOK, users)
}

func (h *ChatCtrl) GetMessages(c echo.Context) error {
	userID, err := strconv.Atoi(c.QueryParam("user_id"))
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User IDs required"})
	}
	otherID, err := strconv.Atoi(c.Param("other_user_id"))
	if err != nil || otherID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User IDs required"})
	}

	msgs, err := h.repo.Conversation(uint(userID), uint(otherID), messageLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch messages: " + err.Error()})
	}
	if msgs == nil {
		msgs = []repository.MessageRow{}
	}
	return c.JSON(http.StatusOK, msgs)
}

func (h *ChatCtrl) Send(c echo.Context) error {
	var body struct {
		SenderID   uint   `json:"sender_id"`
		ReceiverID uint   `json:"receiver_id"`
		Content    string `json:"content"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.SenderID == 0 || body.ReceiverID == 0 || body.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Sender, Receiver and content are required"})
	}
	m := entities.ChatMessage{SenderID: body.SenderID, ReceiverID: body.ReceiverID, Content: body.Content}
	if err := h.repo.Send(&m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to send message: " + err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Message sent successfully"})
}
