package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"consigna/internal/handler"
)

func NewRouter(
	folderHandler *handler.FolderHandler,
	fileHandler *handler.FileHandler,
	notificationHandler *handler.NotificationHandler,
	corsOrigin string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{corsOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	})

	root := e.Group("")
	folderHandler.RegisterRoutes(root)
	fileHandler.RegisterRoutes(root)
	notificationHandler.RegisterRoutes(root)

	return e
}
