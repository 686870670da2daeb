package rest

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes registers all routes for the handler
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)

	api := e.Group("/api")

	api.GET("/health", h.Health)
	api.GET("/authors", h.Authors)
	api.GET("/categories", h.Categories)
	api.GET("/showcase", h.Showcase)

	posts := api.Group("/posts")
	posts.GET("", h.ListPosts)
	posts.POST("", h.CreatePost, h.InterceptPostCreate)
	posts.GET("/stats", h.Stats)
	posts.POST("/publish-all", h.PublishAll)
	posts.GET("/:id", h.GetPost)
	posts.PATCH("/:id", h.UpdatePost)

	custom := api.Group("/custom")
	custom.GET("/posts", h.CustomList)
	custom.POST("/posts", h.CustomCreate)

	e.GET("/dashboard", h.Dashboard)

	return e
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return err
	}
}
