package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/anonto42/tweetbox/backend/internal/metrics"
	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// MediaHandler handles media upload and retrieval
type MediaHandler struct {
	mediaRepository repositories.MediaRepository
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaRepo repositories.MediaRepository) *MediaHandler {
	return &MediaHandler{mediaRepository: mediaRepo}
}

// RegisterMediaRoutes registers the authenticated upload route
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.POST("/medias", h.UploadMedia)
}

// RegisterPublicMediaRoutes registers routes that need no api-key
func (h *MediaHandler) RegisterPublicMediaRoutes(g *echo.Group) {
	g.GET("/media/:id", h.GetMedia)
}

// UploadMedia stores an image under a freshly generated file name
func (h *MediaHandler) UploadMedia(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "File is required")
	}

	if !models.AllowedMediaTypes[file.Header.Get("Content-Type")] {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid file type. Only JPEG and PNG are allowed.")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	media := &models.Media{
		Data:     data,
		FileName: uuid.New().String() + filepath.Ext(file.Filename),
	}
	if err := h.mediaRepository.CreateMedia(c.Request().Context(), media); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
	metrics.MediaUploadBytes.Add(float64(len(data)))

	return c.JSON(http.StatusOK, echo.Map{"result": true, "media_id": media.ID})
}

// GetMedia returns the stored bytes. The content type is always image/png.
func (h *MediaHandler) GetMedia(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	media, err := h.mediaRepository.GetMediaByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Media not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	return c.Blob(http.StatusOK, "image/png", media.Data)
}
