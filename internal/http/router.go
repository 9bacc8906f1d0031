package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/careermitra/careermitra-backend/internal/http/handlers"
	httpMW "github.com/careermitra/careermitra-backend/internal/http/middleware"
	"github.com/careermitra/careermitra-backend/internal/observability"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler    *httpH.HealthHandler
	RecommendHandler *httpH.RecommendHandler
	RoadmapHandler   *httpH.RoadmapHandler
	ChatHandler      *httpH.ChatHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if observability.Enabled() {
		r.Use(otelgin.Middleware("careermitra-backend"))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Recommendations
	if cfg.RecommendHandler != nil {
		r.POST("/recommend-career", cfg.RecommendHandler.RecommendCareer)
		r.POST("/quiz-recommend-career", cfg.RecommendHandler.QuizRecommendCareer)
	}

	// Skill gap / roadmap
	if cfg.RoadmapHandler != nil {
		r.POST("/skill-gap", cfg.RoadmapHandler.SkillGap)
		r.POST("/learning-roadmap", cfg.RoadmapHandler.LearningRoadmap)
	}

	// Chat
	if cfg.ChatHandler != nil {
		r.POST("/career-chat", cfg.ChatHandler.CareerChat)
	}

	return r
}
