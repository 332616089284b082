package student

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type StudentHandler struct {
	service *StudentService
	log     *zap.Logger
}

func NewStudentHandler(service *StudentService, log *zap.Logger) *StudentHandler {
	return &StudentHandler{service: service, log: log}
}

func (h *StudentHandler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	st, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		h.log.Error("failed to create student", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while adding student"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Student added successfully", "student": st})
}

func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.List(c.Request().Context())
	if err != nil {
		h.log.Error("failed to list students", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching students"})
	}
	return c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid student id"})
	}
	st, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err, "failed to fetch student")
	}
	return c.JSON(http.StatusOK, st)
}

func (h *StudentHandler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid student id"})
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}

	st, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return h.writeError(c, err, "failed to update student")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Student updated successfully", "student": st})
}

func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid student id"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.writeError(c, err, "failed to delete student")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Student deleted successfully"})
}

func (h *StudentHandler) writeError(c echo.Context, err error, logMsg string) error {
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Student not found"})
	}
	h.log.Error(logMsg, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
}
