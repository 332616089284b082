package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	service *DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service *DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, log: log}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		h.log.Error("failed to fetch dashboard stats", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, stats)
}
