package server

import (
	"errors"
	"net/http"

	"app/internal/config"
	"app/internal/handler"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はミドルウェアとルートを組み付けたechoを返す。
func New(
	cfg config.Config,
	metaH *handler.MetaHandler,
	customerH *handler.CustomerHandler,
	orderH *handler.OrderHandler,
	healthH *handler.HealthHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// 404等もJSONの共通形で返す
	e.HTTPErrorHandler = errorHandler

	RegisterRoutes(e, metaH, customerH, orderH, healthH)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}

// echoが投げるHTTPエラー（ルート不一致など）を {error, message, status} に揃える。
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	kind := "Internal Server Error"
	message := "An unexpected error occurred"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch status {
		case http.StatusNotFound:
			kind = "Not Found"
			message = "The requested resource was not found"
		case http.StatusMethodNotAllowed:
			kind = "Method Not Allowed"
			message = "The method is not allowed for the requested resource"
		case http.StatusBadRequest:
			kind = "Bad Request"
			message = "Invalid request parameters"
		default:
			kind = http.StatusText(status)
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}
	}

	_ = c.JSON(status, handler.ErrorResponse{
		Error:   kind,
		Message: message,
		Status:  status,
	})
}
