package app

import (
	httpH "github.com/careermitra/careermitra-backend/internal/http/handlers"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	Recommend *httpH.RecommendHandler
	Roadmap   *httpH.RoadmapHandler
	Chat      *httpH.ChatHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(),
		Recommend: httpH.NewRecommendHandler(log, services.Recommendation),
		Roadmap:   httpH.NewRoadmapHandler(log, services.Recommendation),
		Chat:      httpH.NewChatHandler(log, services.Advisor),
	}
}
