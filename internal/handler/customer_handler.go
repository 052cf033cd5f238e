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

// 全エラー応答の共通形
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Kind, Message: he.Message, Status: he.Status})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal Server Error",
		Message: "An unexpected error occurred",
		Status:  http.StatusInternalServerError,
	})
}

func badRequest(c echo.Context, kind string, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   kind,
		Message: message,
		Status:  http.StatusBadRequest,
	})
}

// /customers の公開API
type CustomerHandler struct {
	uc              *usecase.CustomerUsecase
	defaultPageSize int
	queryTimeout    time.Duration
}

// DI
func NewCustomerHandler(uc *usecase.CustomerUsecase, cfg config.Config) *CustomerHandler {
	return &CustomerHandler{
		uc:              uc,
		defaultPageSize: cfg.DefaultPageSize,
		queryTimeout:    cfg.QueryTimeout,
	}
}

func (h *CustomerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/customers", h.list)
	g.GET("/customers/:id", h.detail)
}

func (h *CustomerHandler) list(c echo.Context) error {
	// page（default 1）
	page, err := validator.IntParam(c.QueryParam("page"), 1)
	if err != nil {
		return badRequest(c, "Invalid page number", "Page number must be a valid integer")
	}

	// limit（default 10）
	limit, err := validator.IntParam(c.QueryParam("limit"), h.defaultPageSize)
	if err != nil {
		return badRequest(c, "Invalid limit", "Limit must be a valid integer")
	}

	search := c.QueryParam("search")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.queryTimeout)
	defer cancel()

	out, err := h.uc.ListCustomers(ctx, usecase.ListCustomersInput{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) detail(c echo.Context) error {
	id, err := validator.PositiveID(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid Customer ID", "Customer ID must be a positive integer")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.queryTimeout)
	defer cancel()

	out, err := h.uc.GetCustomerDetail(ctx, id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
