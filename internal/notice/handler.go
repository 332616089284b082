package notice

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"SchoolServer/internal/auth"
)

type NoticeHandler struct {
	service *NoticeService
	log     *zap.Logger
}

func NewNoticeHandler(service *NoticeService, log *zap.Logger) *NoticeHandler {
	return &NoticeHandler{service: service, log: log}
}

func (h *NoticeHandler) Create(c echo.Context) error {
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

	n, err := h.service.Create(c.Request().Context(), req, userID)
	if err != nil {
		h.log.Error("failed to create notice", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while adding notice"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Notice added successfully", "notice": n})
}

// List supports ?latest=true (newest 3) and ?excludeLatest=true (the
// rest); both carry the caller's isRead projection.
func (h *NoticeHandler) List(c echo.Context) error {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or missing token"})
	}

	latest := c.QueryParam("latest") == "true"
	excludeLatest := c.QueryParam("excludeLatest") == "true"

	views, err := h.service.List(c.Request().Context(), userID, latest, excludeLatest)
	if err != nil {
		h.log.Error("failed to list notices", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while fetching notices"})
	}
	return c.JSON(http.StatusOK, views)
}

func (h *NoticeHandler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid notice id"})
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	n, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return h.writeError(c, err, "failed to update notice")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notice updated successfully", "notice": n})
}

func (h *NoticeHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid notice id"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.writeError(c, err, "failed to delete notice")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notice deleted successfully"})
}

func (h *NoticeHandler) MarkRead(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid notice id"})
	}
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or missing token"})
	}
	if err := h.service.MarkRead(c.Request().Context(), id, userID); err != nil {
		return h.writeError(c, err, "failed to mark notice as read")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notice marked as read successfully"})
}

func (h *NoticeHandler) MarkUnread(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid notice id"})
	}
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or missing token"})
	}
	if err := h.service.MarkUnread(c.Request().Context(), id, userID); err != nil {
		return h.writeError(c, err, "failed to mark notice as unread")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notice marked as unread successfully"})
}

func (h *NoticeHandler) MarkAllRead(c echo.Context) error {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or missing token"})
	}
	count, err := h.service.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		h.log.Error("failed to mark all notices as read", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error while marking all notices as read"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "All notices marked as read successfully", "count": count})
}

func (h *NoticeHandler) writeError(c echo.Context, err error, logMsg string) error {
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Notice not found"})
	}
	h.log.Error(logMsg, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
}
