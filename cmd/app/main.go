package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/hongminglow/payload-master/config"
	_ "github.com/hongminglow/payload-master/docs"
	"github.com/hongminglow/payload-master/internal/app"
	"github.com/hongminglow/payload-master/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flDatabaseURL = flag.String("database-url", "", "database connection URL (DATABASE_URL), overrides the config file")
	flSecret      = flag.String("secret", "", "framework secret (SECRET)")
	flDBAuthToken = flag.String("database-auth-token", "", "auth token for a remote database endpoint (DATABASE_AUTH_TOKEN)")
	cfg           config.Config
	lg            *slog.Logger
)

// @title Payload Master API
// @version 1.0
// @description Blog collections API with custom aggregation and publishing routes
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	if err := cfg.ApplyOverrides(*flDatabaseURL, *flSecret, *flDBAuthToken); err != nil {
		exitOnError(err)
	}

	dbConn := pg.Connect(&cfg.Database)
	if *flDebug {
		dbConn.AddQueryHook(db.NewQueryHook(lg))
	}
	if err := dbConn.Ping(context.Background()); err != nil {
		dbConn.Close()
		exitOnError(err)
	}

	service := app.New(&cfg, dbConn, lg)
	ctx := context.Background()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
