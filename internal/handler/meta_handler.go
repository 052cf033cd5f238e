package handler

import (
	"fmt"
	"net/http"

	"app/internal/config"

	"github.com/labstack/echo/v4"
)

// ルート（/）のAPI案内
type MetaHandler struct {
	cfg config.Config
}

// DI
func NewMetaHandler(cfg config.Config) *MetaHandler {
	return &MetaHandler{cfg: cfg}
}

func (h *MetaHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.index)
}

type endpointDoc struct {
	Method      string            `json:"method"`
	Description string            `json:"description,omitempty"`
	Parameters  map[string]string `json:"parameters,omitempty"`
}

type metaResponse struct {
	Message       string                 `json:"message"`
	Version       string                 `json:"version"`
	Environment   string                 `json:"environment"`
	Endpoints     map[string]string      `json:"endpoints"`
	Documentation map[string]endpointDoc `json:"documentation"`
}

func (h *MetaHandler) index(c echo.Context) error {
	return c.JSON(http.StatusOK, metaResponse{
		Message:     h.cfg.APITitle,
		Version:     h.cfg.APIVersion,
		Environment: h.cfg.GoEnv,
		Endpoints: map[string]string{
			"list_customers":      "/api/customers",
			"get_customer":        "/api/customers/:id",
			"get_customer_orders": "/api/customers/:id/orders",
			"get_order":           "/api/orders/:id",
			"health_check":        "/api/health",
		},
		Documentation: map[string]endpointDoc{
			"list_customers": {
				Method: http.MethodGet,
				Parameters: map[string]string{
					"page":   "Page number (default: 1)",
					"limit":  fmt.Sprintf("Items per page (default: %d, max: %d)", h.cfg.DefaultPageSize, h.cfg.MaxPageSize),
					"search": "Search in first_name, last_name, or email",
				},
			},
			"get_customer": {
				Method:      http.MethodGet,
				Description: "Get customer details with order statistics",
			},
			"get_customer_orders": {
				Method:      http.MethodGet,
				Description: "List one customer's orders",
				Parameters: map[string]string{
					"page":   "Page number (default: 1)",
					"limit":  fmt.Sprintf("Items per page (default: %d, max: %d)", h.cfg.DefaultPageSize, h.cfg.MaxPageSize),
					"status": "Filter by order status (pending, shipped, delivered, returned)",
				},
			},
			"get_order": {
				Method:      http.MethodGet,
				Description: "Get order details with customer information",
			},
		},
	})
}
