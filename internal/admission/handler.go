package admission

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AdmissionHandler struct {
	service *AdmissionService
	log     *zap.Logger
}

func NewAdmissionHandler(service *AdmissionService, log *zap.Logger) *AdmissionHandler {
	return &AdmissionHandler{service: service, log: log}
}

// Submit is the public inquiry endpoint; no authentication required.
func (h *AdmissionHandler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	a, err := h.service.Submit(c.Request().Context(), req)
	if err != nil {
		h.log.Error("failed to submit admission", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Admission inquiry submitted", "admission": a})
}

func (h *AdmissionHandler) List(c echo.Context) error {
	admissions, err := h.service.List(c.Request().Context())
	if err != nil {
		h.log.Error("failed to list admissions", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, admissions)
}

func (h *AdmissionHandler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid admission id"})
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	a, err := h.service.UpdateStatus(c.Request().Context(), id, req)
	if err != nil {
		return h.writeError(c, err, "failed to update admission")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Admission updated", "admission": a})
}

func (h *AdmissionHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid admission id"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.writeError(c, err, "failed to delete admission")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Admission deleted successfully"})
}

func (h *AdmissionHandler) writeError(c echo.Context, err error, logMsg string) error {
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Admission not found"})
	}
	h.log.Error(logMsg, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
}
