package class

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ClassHandler struct {
	service *ClassService
	log     *zap.Logger
}

func NewClassHandler(service *ClassService, log *zap.Logger) *ClassHandler {
	return &ClassHandler{service: service, log: log}
}

func (h *ClassHandler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	cls, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, ErrNameExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Class with this name already exists"})
		}
		h.log.Error("failed to create class", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while adding class"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Class added successfully", "class": cls})
}

func (h *ClassHandler) ListAll(c echo.Context) error {
	classes, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		h.log.Error("failed to list classes", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching classes"})
	}
	return c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) ListPublic(c echo.Context) error {
	classes, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		h.log.Error("failed to list public classes", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching public classes"})
	}
	return c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid class id"})
	}
	cls, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err, "failed to fetch class")
	}
	return c.JSON(http.StatusOK, cls)
}

func (h *ClassHandler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid class id"})
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	cls, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return h.writeError(c, err, "failed to update class")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Class updated successfully", "class": cls})
}

func (h *ClassHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid class id"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.writeError(c, err, "failed to delete class")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Class deleted successfully"})
}

func (h *ClassHandler) writeError(c echo.Context, err error, logMsg string) error {
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Class not found"})
	}
	h.log.Error(logMsg, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
}
