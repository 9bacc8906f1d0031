package domain

// CareerRecord is one entry of the static career catalog. Records are
// immutable after load; the Career name is the identity and is unique
// within the catalog.
type CareerRecord struct {
	Career          string   `json:"career"`
	Interests       []string `json:"interests"`
	RequiredSkills  []string `json:"required_skills"`
	Difficulty      string   `json:"difficulty"`
	Branch          []string `json:"branch"`
	Tools           []string `json:"tools"`
	Certifications  []string `json:"certifications"`
	Exams           []string `json:"exams"`
	FutureTrends    []string `json:"future_trends"`
	StartupGuidance string   `json:"startup_guidance,omitempty"`
}

// Recommendation is a scored catalog entry produced for a single request.
type Recommendation struct {
	Career             string   `json:"career"`
	InterestMatchScore int      `json:"interest_match_score"`
	MissingSkills      []string `json:"missing_skills"`
	Difficulty         string   `json:"difficulty"`
	Branch             []string `json:"branch"`
	RequiredSkills     []string `json:"required_skills"`
	Tools              []string `json:"tools"`
	Certifications     []string `json:"certifications"`
	Exams              []string `json:"exams"`
	FutureTrends       []string `json:"future_trends"`
	StartupGuidance    string   `json:"startup_guidance,omitempty"`
}

// SkillRoadmap is a three-tier list of learning activities for one skill.
type SkillRoadmap struct {
	Beginner     []string `json:"beginner" yaml:"beginner"`
	Intermediate []string `json:"intermediate" yaml:"intermediate"`
	Advanced     []string `json:"advanced" yaml:"advanced"`
}

// RoadmapPlan is the learning roadmap for one target career.
type RoadmapPlan struct {
	Career        string                  `json:"career"`
	MissingSkills []string                `json:"missing_skills"`
	Roadmap       map[string]SkillRoadmap `json:"learning_roadmap"`
}

// ChatContext carries everything the chat advisor knows about the student
// for one question. Nothing persists across requests.
type ChatContext struct {
	Education     string
	Interests     []string
	CurrentSkills []string
	Career        string
	MissingSkills []string
	Question      string
}
