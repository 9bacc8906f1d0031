package services

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/careermitra/careermitra-backend/internal/catalog"
	"github.com/careermitra/careermitra-backend/internal/domain"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func fixtureService(t *testing.T, records []domain.CareerRecord) RecommendationService {
	t.Helper()
	cat, err := catalog.New(records)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return NewRecommendationService(testLogger(t), cat, catalog.NewRoadmaps(map[string]domain.SkillRoadmap{
		"Git": {
			Beginner:     []string{"init, add, commit"},
			Intermediate: []string{"Branching and merging"},
			Advanced:     []string{"Team workflows"},
		},
	}))
}

func TestMatchCareersSingleOverlap(t *testing.T) {
	t.Parallel()
	svc := fixtureService(t, []domain.CareerRecord{{
		Career:         "Software Engineer",
		Interests:      []string{"Programming", "Data"},
		RequiredSkills: []string{"Python", "Git"},
		Difficulty:     "Medium",
	}})

	recs := svc.MatchCareers(context.Background(), []string{"Programming"}, []string{"Python"}, 3)
	if len(recs) != 1 {
		t.Fatalf("recommendations: got=%d want=1", len(recs))
	}
	rec := recs[0]
	if rec.Career != "Software Engineer" {
		t.Fatalf("career: got=%q", rec.Career)
	}
	if rec.InterestMatchScore != 1 {
		t.Fatalf("score: got=%d want=1", rec.InterestMatchScore)
	}
	if !reflect.DeepEqual(rec.MissingSkills, []string{"Git"}) {
		t.Fatalf("missing skills: got=%v want=[Git]", rec.MissingSkills)
	}
	if rec.Difficulty != "Medium" {
		t.Fatalf("difficulty passthrough: got=%q", rec.Difficulty)
	}
}

func TestMatchCareersDropsZeroScores(t *testing.T) {
	t.Parallel()
	svc := fixtureService(t, []domain.CareerRecord{
		{Career: "Web Developer", Interests: []string{"Web Development"}, RequiredSkills: []string{"JavaScript"}},
	})

	recs := svc.MatchCareers(context.Background(), []string{"Finance"}, nil, 3)
	if len(recs) != 0 {
		t.Fatalf("expected empty result, got %d recommendations", len(recs))
	}
}

func TestMatchCareersSortedStable(t *testing.T) {
	t.Parallel()
	svc := fixtureService(t, []domain.CareerRecord{
		{Career: "One", Interests: []string{"A"}, RequiredSkills: []string{"X"}},
		{Career: "Two", Interests: []string{"A", "B", "C"}, RequiredSkills: []string{"X"}},
		{Career: "Three", Interests: []string{"A"}, RequiredSkills: []string{"X"}},
		{Career: "Four", Interests: []string{"A", "B"}, RequiredSkills: []string{"X"}},
	})

	recs := svc.MatchCareers(context.Background(), []string{"A", "B", "C"}, nil, 0)
	if !sort.SliceIsSorted(recs, func(i, j int) bool {
		return recs[i].InterestMatchScore > recs[j].InterestMatchScore
	}) {
		t.Fatalf("recommendations not sorted by score: %+v", recs)
	}
	for _, rec := range recs {
		if rec.InterestMatchScore < 1 {
			t.Fatalf("score below 1: %+v", rec)
		}
	}

	// ties keep catalog order: One before Three
	var ones, threes int
	for i, rec := range recs {
		switch rec.Career {
		case "One":
			ones = i
		case "Three":
			threes = i
		}
	}
	if ones > threes {
		t.Fatalf("tie order broken: One at %d, Three at %d", ones, threes)
	}
}

func TestMatchCareersLimit(t *testing.T) {
	t.Parallel()
	records := make([]domain.CareerRecord, 0, 6)
	names := []string{"A", "B", "C", "D", "E", "F"}
	for _, n := range names {
		records = append(records, domain.CareerRecord{
			Career: n, Interests: []string{"Programming"}, RequiredSkills: []string{"X"},
		})
	}
	svc := fixtureService(t, records)

	if got := len(svc.MatchCareers(context.Background(), []string{"Programming"}, nil, 3)); got != 3 {
		t.Fatalf("direct limit: got=%d want=3", got)
	}
	if got := len(svc.MatchCareers(context.Background(), []string{"Programming"}, nil, 5)); got != 5 {
		t.Fatalf("quiz limit: got=%d want=5", got)
	}
}

func TestMatchCareersDuplicateRecordInterests(t *testing.T) {
	t.Parallel()
	svc := fixtureService(t, []domain.CareerRecord{
		{Career: "Data Analyst", Interests: []string{"Data", "Data"}, RequiredSkills: []string{"SQL"}},
	})

	recs := svc.MatchCareers(context.Background(), []string{"Data"}, nil, 3)
	if len(recs) != 1 {
		t.Fatalf("recommendations: got=%d want=1", len(recs))
	}
	if recs[0].InterestMatchScore != 1 {
		t.Fatalf("set-intersection score: got=%d want=1", recs[0].InterestMatchScore)
	}
}

func TestMatchCareersCaseSensitive(t *testing.T) {
	t.Parallel()
	svc := fixtureService(t, []domain.CareerRecord{
		{Career: "Software Engineer", Interests: []string{"Programming"}, RequiredSkills: []string{"Python"}},
	})

	if recs := svc.MatchCareers(context.Background(), []string{"programming"}, nil, 3); len(recs) != 0 {
		t.Fatalf("lower-cased interest matched: %+v", recs)
	}
}

func TestSkillGap(t *testing.T) {
	t.Parallel()
	svc := fixtureService(t, []domain.CareerRecord{{
		Career:         "DevOps Engineer",
		Interests:      []string{"Cloud"},
		RequiredSkills: []string{"Linux", "Docker", "Kubernetes"},
	}})

	career, missing, err := svc.SkillGap(context.Background(), "DevOps Engineer", []string{"Linux"})
	if err != nil {
		t.Fatalf("SkillGap: %v", err)
	}
	if career != "DevOps Engineer" {
		t.Fatalf("career: got=%q", career)
	}
	if !reflect.DeepEqual(missing, []string{"Docker", "Kubernetes"}) {
		t.Fatalf("missing skills: got=%v", missing)
	}

	_, _, err = svc.SkillGap(context.Background(), "Astronaut", nil)
	if !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("unknown career: got err=%v want ErrCareerNotFound", err)
	}
}

func TestBuildRoadmap(t *testing.T) {
	t.Parallel()
	svc := fixtureService(t, []domain.CareerRecord{{
		Career:         "Software Engineer",
		Interests:      []string{"Programming"},
		RequiredSkills: []string{"Python", "Git"},
	}})

	plan, err := svc.BuildRoadmap(context.Background(), "Software Engineer", []string{"Python"})
	if err != nil {
		t.Fatalf("BuildRoadmap: %v", err)
	}
	if plan.Career != "Software Engineer" {
		t.Fatalf("career: got=%q", plan.Career)
	}
	if !reflect.DeepEqual(plan.MissingSkills, []string{"Git"}) {
		t.Fatalf("missing skills: got=%v", plan.MissingSkills)
	}

	// roadmap keys are exactly the missing skills
	if len(plan.Roadmap) != len(plan.MissingSkills) {
		t.Fatalf("roadmap size: got=%d want=%d", len(plan.Roadmap), len(plan.MissingSkills))
	}
	for _, skill := range plan.MissingSkills {
		if _, ok := plan.Roadmap[skill]; !ok {
			t.Fatalf("roadmap missing entry for %q", skill)
		}
	}

	// Git has a curated entry in the fixture table
	if got := plan.Roadmap["Git"].Beginner[0]; got != "init, add, commit" {
		t.Fatalf("curated roadmap not used: got=%q", got)
	}

	_, err = svc.BuildRoadmap(context.Background(), "Astronaut", nil)
	if !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("unknown career: got err=%v want ErrCareerNotFound", err)
	}
}

func TestBuildRoadmapSynthesizedEntries(t *testing.T) {
	t.Parallel()
	svc := fixtureService(t, []domain.CareerRecord{{
		Career:         "Robotics Engineer",
		Interests:      []string{"Robotics"},
		RequiredSkills: []string{"ROS"},
	}})

	plan, err := svc.BuildRoadmap(context.Background(), "Robotics Engineer", nil)
	if err != nil {
		t.Fatalf("BuildRoadmap: %v", err)
	}
	rm, ok := plan.Roadmap["ROS"]
	if !ok {
		t.Fatal("roadmap missing ROS entry")
	}
	if len(rm.Beginner) != 1 || len(rm.Intermediate) != 1 || len(rm.Advanced) != 1 {
		t.Fatalf("synthesized entry shape: %+v", rm)
	}
}

func TestQuizInterests(t *testing.T) {
	t.Parallel()
	for code, wantName := range map[string]string{
		"T": "Technical",
		"C": "Creative",
		"B": "Business",
		"S": "Social",
		"R": "Research",
	} {
		interests, name := QuizInterests(code)
		if name != wantName {
			t.Fatalf("domain %q name: got=%q want=%q", code, name, wantName)
		}
		if len(interests) == 0 {
			t.Fatalf("domain %q has empty interest set", code)
		}
	}
}

func TestQuizInterestsUnknownDomain(t *testing.T) {
	t.Parallel()
	unknown, name := QuizInterests("Z")
	if name != "General" {
		t.Fatalf("unknown domain name: got=%q want=General", name)
	}
	technical, _ := QuizInterests("T")
	if !reflect.DeepEqual(unknown, technical) {
		t.Fatal("unknown domain interests differ from Technical set")
	}
}
