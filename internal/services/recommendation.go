package services

import (
	"context"
	"errors"
	"sort"

	"github.com/careermitra/careermitra-backend/internal/catalog"
	"github.com/careermitra/careermitra-backend/internal/domain"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
)

// ErrCareerNotFound is returned when a target career is absent from the catalog.
var ErrCareerNotFound = errors.New("career not found")

type RecommendationService interface {
	// MatchCareers scores every catalog entry by interest overlap, drops
	// zero-score entries, and returns the top limit recommendations sorted
	// non-increasing by score (ties keep catalog order). limit <= 0 means all.
	MatchCareers(ctx context.Context, interests []string, currentSkills []string, limit int) []domain.Recommendation

	// SkillGap returns the canonical career name and the required skills the
	// student does not yet have. ErrCareerNotFound when the career is unknown.
	SkillGap(ctx context.Context, targetCareer string, currentSkills []string) (string, []string, error)

	// BuildRoadmap computes missing skills for a target career and attaches a
	// roadmap per missing skill. ErrCareerNotFound when the career is unknown.
	BuildRoadmap(ctx context.Context, targetCareer string, currentSkills []string) (*domain.RoadmapPlan, error)
}

type recommendationService struct {
	log      *logger.Logger
	catalog  *catalog.Catalog
	roadmaps *catalog.Roadmaps
}

func NewRecommendationService(log *logger.Logger, cat *catalog.Catalog, roadmaps *catalog.Roadmaps) RecommendationService {
	return &recommendationService{
		log:      log.With("service", "RecommendationService"),
		catalog:  cat,
		roadmaps: roadmaps,
	}
}

func (s *recommendationService) MatchCareers(ctx context.Context, interests []string, currentSkills []string, limit int) []domain.Recommendation {
	want := toSet(interests)
	have := toSet(currentSkills)

	recs := make([]domain.Recommendation, 0)
	for _, rec := range s.catalog.Records() {
		// set intersection: a duplicated interest in the record counts once
		score := 0
		counted := make(map[string]bool, len(rec.Interests))
		for _, interest := range rec.Interests {
			if want[interest] && !counted[interest] {
				counted[interest] = true
				score++
			}
		}
		if score == 0 {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Career:             rec.Career,
			InterestMatchScore: score,
			MissingSkills:      subtract(rec.RequiredSkills, have),
			Difficulty:         rec.Difficulty,
			Branch:             rec.Branch,
			RequiredSkills:     rec.RequiredSkills,
			Tools:              rec.Tools,
			Certifications:     rec.Certifications,
			Exams:              rec.Exams,
			FutureTrends:       rec.FutureTrends,
			StartupGuidance:    rec.StartupGuidance,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].InterestMatchScore > recs[j].InterestMatchScore
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

func (s *recommendationService) SkillGap(ctx context.Context, targetCareer string, currentSkills []string) (string, []string, error) {
	rec, ok := s.catalog.Find(targetCareer)
	if !ok {
		return "", nil, ErrCareerNotFound
	}
	return rec.Career, subtract(rec.RequiredSkills, toSet(currentSkills)), nil
}

func (s *recommendationService) BuildRoadmap(ctx context.Context, targetCareer string, currentSkills []string) (*domain.RoadmapPlan, error) {
	rec, ok := s.catalog.Find(targetCareer)
	if !ok {
		return nil, ErrCareerNotFound
	}
	missing := subtract(rec.RequiredSkills, toSet(currentSkills))

	roadmap := make(map[string]domain.SkillRoadmap, len(missing))
	for _, skill := range missing {
		roadmap[skill] = s.roadmaps.For(skill)
	}
	return &domain.RoadmapPlan{
		Career:        rec.Career,
		MissingSkills: missing,
		Roadmap:       roadmap,
	}, nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// subtract returns the members of values not present in exclude, preserving
// order and dropping duplicates.
func subtract(values []string, exclude map[string]bool) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if exclude[v] || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
