package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/careermitra/careermitra-backend/internal/domain"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
)

// AdvisorService answers free-text career questions. It tries the external
// language model first and falls back to the rule-based responder on any
// failure. Respond never errors and always returns a non-empty string.
type AdvisorService interface {
	Respond(ctx context.Context, cc domain.ChatContext) string
}

type advisorService struct {
	log *logger.Logger
	llm LLMClient
}

func NewAdvisorService(log *logger.Logger, llm LLMClient) AdvisorService {
	return &advisorService{
		log: log.With("service", "AdvisorService"),
		llm: llm,
	}
}

func (s *advisorService) Respond(ctx context.Context, cc domain.ChatContext) string {
	if s.llm != nil {
		answer, err := s.llm.Complete(ctx, counselorPrompt(cc))
		if err == nil {
			if strings.TrimSpace(answer) != "" {
				return answer
			}
		} else {
			s.log.Warn("chat LLM call failed, using rule-based fallback", "error", err)
		}
	}
	return ruleBasedResponse(cc)
}

func counselorPrompt(cc domain.ChatContext) string {
	return fmt.Sprintf(`You are an expert career guidance counselor for engineering students.

Student Profile:
- Education: %s
- Interests: %s
- Current Skills: %s

Recommended Career: %s
Missing Skills: %s

User Question:
%s

Answer clearly, practically, and in simple language.
Give actionable advice.
`,
		cc.Education,
		strings.Join(cc.Interests, ", "),
		strings.Join(cc.CurrentSkills, ", "),
		cc.Career,
		strings.Join(cc.MissingSkills, ", "),
		cc.Question,
	)
}
