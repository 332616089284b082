package message

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MessageHandler struct {
	service *MessageService
	log     *zap.Logger
}

func NewMessageHandler(service *MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{service: service, log: log}
}

// Submit is the public contact-form endpoint.
func (h *MessageHandler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	m, err := h.service.Submit(c.Request().Context(), req)
	if err != nil {
		h.log.Error("failed to submit message", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Message sent successfully", "newMessage": m})
}

func (h *MessageHandler) List(c echo.Context) error {
	messages, err := h.service.List(c.Request().Context())
	if err != nil {
		h.log.Error("failed to list messages", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) ToggleRead(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Message ID is required"})
	}
	m, err := h.service.ToggleRead(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err, "failed to toggle message status")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Message status updated", "updated": m})
}

func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid message id"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.writeError(c, err, "failed to delete message")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Message deleted successfully"})
}

func (h *MessageHandler) writeError(c echo.Context, err error, logMsg string) error {
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Message not found"})
	}
	h.log.Error(logMsg, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
}
