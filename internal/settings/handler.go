package settings

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"SchoolServer/internal/config"
)

type SettingsHandler struct {
	service *SettingsService
	files   *config.FileStore
	log     *zap.Logger
}

func NewSettingsHandler(service *SettingsService, files *config.FileStore, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{service: service, files: files, log: log}
}

// List is public: the SPA reads school name, logo and socials from it.
func (h *SettingsHandler) List(c echo.Context) error {
	all, err := h.service.List(c.Request().Context())
	if err != nil {
		h.log.Error("failed to fetch settings", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server Error"})
	}
	return c.JSON(http.StatusOK, all)
}

func (h *SettingsHandler) Create(c echo.Context) error {
	var req UpsertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	logo, err := h.saveLogo(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server Error"})
	}

	settings, err := h.service.Create(c.Request().Context(), req, logo)
	if err != nil {
		h.log.Error("failed to create settings", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server Error"})
	}
	return c.JSON(http.StatusCreated, settings)
}

func (h *SettingsHandler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid settings id"})
	}

	var req UpsertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	logo, err := h.saveLogo(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server Error"})
	}

	settings, err := h.service.Update(c.Request().Context(), id, req, logo)
	if err != nil {
		return h.writeError(c, err, "failed to update settings")
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid settings id"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.writeError(c, err, "failed to delete settings")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Settings deleted successfully"})
}

func (h *SettingsHandler) saveLogo(c echo.Context) (string, error) {
	file, err := c.FormFile("logo")
	if err != nil {
		return "", nil
	}
	name, err := h.files.Save(config.UploadKindLogos, file)
	if err != nil {
		h.log.Error("failed to store logo", zap.Error(err))
		return "", err
	}
	return name, nil
}

func (h *SettingsHandler) writeError(c echo.Context, err error, logMsg string) error {
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Settings not found"})
	}
	h.log.Error(logMsg, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server Error"})
}
