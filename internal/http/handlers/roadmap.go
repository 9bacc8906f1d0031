package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careermitra/careermitra-backend/internal/http/response"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
	"github.com/careermitra/careermitra-backend/internal/services"
)

type RoadmapHandler struct {
	log    *logger.Logger
	recSvc services.RecommendationService
}

func NewRoadmapHandler(log *logger.Logger, recSvc services.RecommendationService) *RoadmapHandler {
	return &RoadmapHandler{
		log:    log.With("handler", "RoadmapHandler"),
		recSvc: recSvc,
	}
}

type targetCareerRequest struct {
	TargetCareer  string   `json:"target_career" binding:"required"`
	CurrentSkills []string `json:"current_skills"`
}

// POST /skill-gap
//
// An unknown career answers 200 with an empty object; frontends treat the
// missing keys as "no result".
func (h *RoadmapHandler) SkillGap(c *gin.Context) {
	var req targetCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	career, missing, err := h.recSvc.SkillGap(c.Request.Context(), req.TargetCareer, req.CurrentSkills)
	if err != nil {
		if errors.Is(err, services.ErrCareerNotFound) {
			response.RespondOK(c, gin.H{})
			return
		}
		h.log.Error("SkillGap failed", "error", err, "target_career", req.TargetCareer)
		response.RespondError(c, http.StatusInternalServerError, "skill_gap_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"career":         career,
		"missing_skills": missing,
	})
}

// POST /learning-roadmap
func (h *RoadmapHandler) LearningRoadmap(c *gin.Context) {
	var req targetCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	plan, err := h.recSvc.BuildRoadmap(c.Request.Context(), req.TargetCareer, req.CurrentSkills)
	if err != nil {
		if errors.Is(err, services.ErrCareerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Career not found"})
			return
		}
		h.log.Error("LearningRoadmap failed", "error", err, "target_career", req.TargetCareer)
		response.RespondError(c, http.StatusInternalServerError, "learning_roadmap_failed", err)
		return
	}
	response.RespondOK(c, plan)
}
