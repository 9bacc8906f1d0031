package app

import (
	"github.com/careermitra/careermitra-backend/internal/catalog"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
	"github.com/careermitra/careermitra-backend/internal/services"
)

type Services struct {
	Recommendation services.RecommendationService
	Advisor        services.AdvisorService
}

func wireServices(log *logger.Logger, cat *catalog.Catalog, roadmaps *catalog.Roadmaps) Services {
	log.Info("Wiring services...")
	llm := services.NewChatCompletionClient(log)
	return Services{
		Recommendation: services.NewRecommendationService(log, cat, roadmaps),
		Advisor:        services.NewAdvisorService(log, llm),
	}
}
