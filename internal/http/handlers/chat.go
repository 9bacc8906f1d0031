package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careermitra/careermitra-backend/internal/domain"
	"github.com/careermitra/careermitra-backend/internal/http/response"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
	"github.com/careermitra/careermitra-backend/internal/services"
)

type ChatHandler struct {
	log     *logger.Logger
	advisor services.AdvisorService
}

func NewChatHandler(log *logger.Logger, advisor services.AdvisorService) *ChatHandler {
	return &ChatHandler{
		log:     log.With("handler", "ChatHandler"),
		advisor: advisor,
	}
}

type careerChatRequest struct {
	Education     string   `json:"education"`
	Interests     []string `json:"interests"`
	CurrentSkills []string `json:"current_skills"`
	Career        string   `json:"career"`
	MissingSkills []string `json:"missing_skills"`
	Question      string   `json:"question"`
}

// POST /career-chat
//
// Every field is optional; the advisor always produces an answer.
func (h *ChatHandler) CareerChat(c *gin.Context) {
	var req careerChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	answer := h.advisor.Respond(c.Request.Context(), domain.ChatContext{
		Education:     req.Education,
		Interests:     req.Interests,
		CurrentSkills: req.CurrentSkills,
		Career:        req.Career,
		MissingSkills: req.MissingSkills,
		Question:      req.Question,
	})
	response.RespondOK(c, gin.H{"response": answer})
}
