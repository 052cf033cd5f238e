package handler

import (
	"context"
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

// 注文参照の公開API
type OrderHandler struct {
	uc              *usecase.OrderUsecase
	defaultPageSize int
	queryTimeout    time.Duration
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase, cfg config.Config) *OrderHandler {
	return &OrderHandler{
		uc:              uc,
		defaultPageSize: cfg.DefaultPageSize,
		queryTimeout:    cfg.QueryTimeout,
	}
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/customers/:id/orders", h.listByCustomer)
	g.GET("/orders/:id", h.detail)
}

func (h *OrderHandler) listByCustomer(c echo.Context) error {
	customerID, err := validator.PositiveID(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid Customer ID", "Customer ID must be a positive integer")
	}

	page, err := validator.IntParam(c.QueryParam("page"), 1)
	if err != nil {
		return badRequest(c, "Invalid page number", "Page number must be a valid integer")
	}

	limit, err := validator.IntParam(c.QueryParam("limit"), h.defaultPageSize)
	if err != nil {
		return badRequest(c, "Invalid limit", "Limit must be a valid integer")
	}

	status := c.QueryParam("status")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.queryTimeout)
	defer cancel()

	out, err := h.uc.ListCustomerOrders(ctx, customerID, usecase.ListCustomerOrdersInput{
		Page:   page,
		Limit:  limit,
		Status: status,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := validator.PositiveID(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid Order ID", "Order ID must be a positive integer")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.queryTimeout)
	defer cancel()

	out, err := h.uc.GetOrderDetail(ctx, id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
