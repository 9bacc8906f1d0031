package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careermitra/careermitra-backend/internal/http/response"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
	"github.com/careermitra/careermitra-backend/internal/services"
)

const (
	directRecommendLimit = 3
	quizRecommendLimit   = 5
)

type RecommendHandler struct {
	log    *logger.Logger
	recSvc services.RecommendationService
}

func NewRecommendHandler(log *logger.Logger, recSvc services.RecommendationService) *RecommendHandler {
	return &RecommendHandler{
		log:    log.With("handler", "RecommendHandler"),
		recSvc: recSvc,
	}
}

type recommendRequest struct {
	Name          string   `json:"name"`
	Interests     []string `json:"interests" binding:"required"`
	CurrentSkills []string `json:"current_skills"`
}

// POST /recommend-career
func (h *RecommendHandler) RecommendCareer(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	recs := h.recSvc.MatchCareers(c.Request.Context(), req.Interests, req.CurrentSkills, directRecommendLimit)
	response.RespondOK(c, gin.H{
		"student":             req.Name,
		"recommended_careers": recs,
	})
}

type quizRecommendRequest struct {
	Domain        string   `json:"domain"`
	CurrentSkills []string `json:"current_skills"`
}

// POST /quiz-recommend-career
//
// A missing or unrecognized domain code behaves like an unknown code:
// Technical keyword set, domain_name "General".
func (h *RecommendHandler) QuizRecommendCareer(c *gin.Context) {
	var req quizRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	interests, domainName := services.QuizInterests(req.Domain)
	recs := h.recSvc.MatchCareers(c.Request.Context(), interests, req.CurrentSkills, quizRecommendLimit)
	response.RespondOK(c, gin.H{
		"domain":              req.Domain,
		"domain_name":         domainName,
		"recommended_careers": recs,
	})
}
