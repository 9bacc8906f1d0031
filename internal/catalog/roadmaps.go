package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/careermitra/careermitra-backend/internal/domain"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
)

//go:embed skill_roadmaps.yaml
var embeddedRoadmaps []byte

const roadmapsPathEnv = "SKILL_ROADMAPS_PATH"

// Roadmaps maps skill names to curated three-tier learning roadmaps.
// Skills missing from the table get a synthesized generic roadmap.
type Roadmaps struct {
	bySkill map[string]domain.SkillRoadmap
}

// LoadRoadmaps reads the embedded roadmap table, or the file named by
// SKILL_ROADMAPS_PATH when set. A bad override falls back to the embedded copy.
func LoadRoadmaps(log *logger.Logger) (*Roadmaps, error) {
	raw := embeddedRoadmaps
	if path := strings.TrimSpace(os.Getenv(roadmapsPathEnv)); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if log != nil {
				log.Warn("skill roadmap override unreadable, using embedded copy", "path", path, "error", err)
			}
		} else {
			raw = b
		}
	}

	bySkill := map[string]domain.SkillRoadmap{}
	if err := yaml.Unmarshal(raw, &bySkill); err != nil {
		return nil, fmt.Errorf("parse skill roadmaps: %w", err)
	}
	if log != nil {
		log.Info("skill roadmap table loaded", "skills", len(bySkill))
	}
	return &Roadmaps{bySkill: bySkill}, nil
}

// NewRoadmaps builds a table directly from entries.
func NewRoadmaps(entries map[string]domain.SkillRoadmap) *Roadmaps {
	if entries == nil {
		entries = map[string]domain.SkillRoadmap{}
	}
	return &Roadmaps{bySkill: entries}
}

// For returns the curated roadmap for skill, or a synthesized three-tier
// roadmap with one activity per tier when the skill is not in the table.
func (r *Roadmaps) For(skill string) domain.SkillRoadmap {
	if rm, ok := r.bySkill[skill]; ok {
		return rm
	}
	return domain.SkillRoadmap{
		Beginner:     []string{"Learn basics of " + skill},
		Intermediate: []string{"Practice " + skill},
		Advanced:     []string{"Build projects using " + skill},
	}
}

// Has reports whether skill has a curated entry.
func (r *Roadmaps) Has(skill string) bool {
	_, ok := r.bySkill[skill]
	return ok
}

func (r *Roadmaps) Len() int { return len(r.bySkill) }
