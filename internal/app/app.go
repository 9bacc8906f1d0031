package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/careermitra/careermitra-backend/internal/catalog"
	careerhttp "github.com/careermitra/careermitra-backend/internal/http"
	"github.com/careermitra/careermitra-backend/internal/observability"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Srv      *careerhttp.Server
	Router   *gin.Engine
	Cfg      Config
	Services Services

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig()

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "careermitra-backend",
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})

	cat, err := catalog.Load(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load career catalog: %w", err)
	}
	roadmaps, err := catalog.LoadRoadmaps(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load skill roadmaps: %w", err)
	}

	serviceset := wireServices(log, cat, roadmaps)
	handlerset := wireHandlers(log, serviceset)
	srv := wireRouter(log, handlerset)

	return &App{
		Log:          log,
		Srv:          srv,
		Router:       srv.Engine,
		Cfg:          cfg,
		Services:     serviceset,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Srv == nil {
		return fmt.Errorf("app not initialized")
	}
	addr := ":" + a.Cfg.Port
	a.Log.Info("Server listening", "addr", addr)
	return a.Srv.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		_ = a.otelShutdown(context.Background())
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
