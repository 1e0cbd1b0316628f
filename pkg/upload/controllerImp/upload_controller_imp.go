package controllerImp

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UploadCtrl struct {
	dir      string
	maxBytes int64
}

func New(dir string, maxBytes int64) *UploadCtrl {
	return &UploadCtrl{dir: dir, maxBytes: maxBytes}
}

func (h *UploadCtrl) Upload(c echo.Context) error {
	if h.maxBytes > 0 && c.Request().ContentLength > h.maxBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "File too large (exceeded post_max_size)"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No image uploaded"})
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create directory: " + h.dir})
	}

	ext := strings.TrimPrefix(filepath.Ext(file.Filename), ".")
	if ext == "" {
		ext = "jpg"
	}
	userID := c.FormValue("user_id")
	if userID == "" {
		userID = "anon"
	}

	// Timestamp plus random suffix keeps concurrent uploads from colliding.
	name := fmt.Sprintf("seed_u%s_%d_%s.%s", userID, time.Now().UnixNano(), uuid.NewString()[:8], ext)
	dst := filepath.Join(h.dir, name)

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Upload failed: " + err.Error()})
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Upload failed: " + err.Error()})
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Upload failed: " + err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"url": "uploads/" + name})
}
