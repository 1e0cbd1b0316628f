package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"greenhouse/entities"
	"greenhouse/pkg/plant/repository"
)

type PlantCtrl struct{ repo repository.PlantRepository }

func New(repo repository.PlantRepository) *PlantCtrl { return &PlantCtrl{repo} }

func (h *PlantCtrl) List(c echo.Context) error {
	info, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch plant info: " + err.Error()})
	}
	if info == nil {
		info = []entities.PlantInfo{}
	}
	return c.JSON(http.StatusOK, info)
}

func (h *PlantCtrl) Create(c echo.Context) error {
	var body struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		ImageURL string `json:"image_url"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.Title == "" || body.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title and content are required"})
	}
	p := entities.PlantInfo{Title: body.Title, Content: body.Content, ImageURL: body.ImageURL}
	if err := h.repo.Create(&p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create plant info: " + err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Plant info created successfully", "id": p.ID})
}

func (h *PlantCtrl) Comments(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	comments, err := h.repo.Comments(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch comments: " + err.Error()})
	}
	if comments == nil {
		comments = []repository.CommentRow{}
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *PlantCtrl) AddComment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		UserID  uint   `json:"user_id"`
		Content string `json:"content"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.UserID == 0 || body.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID and content are required"})
	}
	cm := entities.PlantComment{PlantInfoID: uint(id), UserID: body.UserID, Content: body.Content}
	if err := h.repo.AddComment(&cm); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add comment: " + err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Comment added successfully"})
}
