package gallery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"SchoolServer/internal/auth"
	"SchoolServer/internal/config"
)

type GalleryHandler struct {
	service *GalleryService
	files   *config.FileStore
	log     *zap.Logger
}

func NewGalleryHandler(service *GalleryService, files *config.FileStore, log *zap.Logger) *GalleryHandler {
	return &GalleryHandler{service: service, files: files, log: log}
}

func (h *GalleryHandler) Create(c echo.Context) error {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or missing token"})
	}

	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	file, err := c.FormFile("media")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Media file is required"})
	}
	stored, err := h.files.Save(config.UploadKindGallery, file)
	if err != nil {
		h.log.Error("failed to store media file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while adding media"})
	}

	m, err := h.service.Create(c.Request().Context(), req, stored, file.Header.Get("Content-Type"), userID)
	if err != nil {
		h.log.Error("failed to create media", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while adding media"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Media added successfully", "media": m})
}

// List is public; ?latest=true and ?excludeLatest=true select the two
// homepage/gallery projections.
func (h *GalleryHandler) List(c echo.Context) error {
	latest := c.QueryParam("latest") == "true"
	excludeLatest := c.QueryParam("excludeLatest") == "true"

	items, err := h.service.List(c.Request().Context(), latest, excludeLatest)
	if err != nil {
		h.log.Error("failed to list gallery", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching gallery items"})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid media id"})
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	stored, mimeType := "", ""
	if file, err := c.FormFile("media"); err == nil {
		stored, err = h.files.Save(config.UploadKindGallery, file)
		if err != nil {
			h.log.Error("failed to store media file", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while updating media"})
		}
		mimeType = file.Header.Get("Content-Type")
	}

	m, err := h.service.Update(c.Request().Context(), id, req, stored, mimeType)
	if err != nil {
		return h.writeError(c, err, "failed to update media")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Media updated successfully", "media": m})
}

func (h *GalleryHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid media id"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.writeError(c, err, "failed to delete media")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Media deleted successfully"})
}

func (h *GalleryHandler) writeError(c echo.Context, err error, logMsg string) error {
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Media not found"})
	}
	h.log.Error(logMsg, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
}
