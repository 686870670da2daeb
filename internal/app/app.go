package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/hongminglow/payload-master/config"
	"github.com/hongminglow/payload-master/internal/blog"
	"github.com/hongminglow/payload-master/internal/db"
	"github.com/hongminglow/payload-master/internal/rest"
	"github.com/hongminglow/payload-master/internal/rpc"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)

	hooks := blog.NewHooks(logger)
	hooks.OnPostBeforeChange(blog.LogPostBeforeChange(logger))
	hooks.OnPostAfterChange(blog.LogPostAfterChange(logger))
	hooks.OnAuthorAfterChange(blog.LogAuthorAfterChange(logger))

	manager := blog.NewManager(database, hooks, logger)

	handler := rest.NewHandler(manager, database, logger)
	handler.BaseURL = fmt.Sprintf("http://127.0.0.1:%d", cfg.App.Port)

	e := handler.RegisterRoutes()

	rpcServer := rpc.New(logger, manager)
	e.Any("/rpc", echo.WrapHandler(rpcServer))

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
