package app

import (
	"github.com/careermitra/careermitra-backend/internal/http"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlers Handlers) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:              log,
		HealthHandler:    handlers.Health,
		RecommendHandler: handlers.Recommend,
		RoadmapHandler:   handlers.Roadmap,
		ChatHandler:      handlers.Chat,
	})
}
