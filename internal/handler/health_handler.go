package handler

import (
	"context"
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	uc           *usecase.HealthUsecase
	queryTimeout time.Duration
}

// DI
func NewHealthHandler(uc *usecase.HealthUsecase, cfg config.Config) *HealthHandler {
	return &HealthHandler{uc: uc, queryTimeout: cfg.QueryTimeout}
}

func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.check)
}

func (h *HealthHandler) check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.queryTimeout)
	defer cancel()

	out, healthy := h.uc.Check(ctx)
	if !healthy {
		return c.JSON(http.StatusInternalServerError, out)
	}
	return c.JSON(http.StatusOK, out)
}
