package teacher

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TeacherHandler struct {
	service *TeacherService
	log     *zap.Logger
}

func NewTeacherHandler(service *TeacherService, log *zap.Logger) *TeacherHandler {
	return &TeacherHandler{service: service, log: log}
}

func (h *TeacherHandler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	t, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		h.log.Error("failed to create teacher", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while adding teacher"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Teacher added successfully", "teacher": t})
}

func (h *TeacherHandler) List(c echo.Context) error {
	teachers, err := h.service.List(c.Request().Context())
	if err != nil {
		h.log.Error("failed to list teachers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching teachers"})
	}
	return c.JSON(http.StatusOK, teachers)
}

func (h *TeacherHandler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid teacher id"})
	}
	t, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err, "failed to fetch teacher")
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TeacherHandler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid teacher id"})
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}

	t, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return h.writeError(c, err, "failed to update teacher")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Teacher updated successfully", "teacher": t})
}

func (h *TeacherHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid teacher id"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.writeError(c, err, "failed to delete teacher")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Teacher deleted successfully"})
}

func (h *TeacherHandler) writeError(c echo.Context, err error, logMsg string) error {
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Teacher not found"})
	}
	h.log.Error(logMsg, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
}
