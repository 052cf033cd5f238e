package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	metaH *handler.MetaHandler,
	customerH *handler.CustomerHandler,
	orderH *handler.OrderHandler,
	healthH *handler.HealthHandler,
) {
	metaH.RegisterRoutes(e)

	api := e.Group("/api")
	customerH.RegisterRoutes(api)
	orderH.RegisterRoutes(api)
	healthH.RegisterRoutes(api)
}
