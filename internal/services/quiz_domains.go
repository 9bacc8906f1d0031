package services

// Quiz domain codes map to fixed interest keyword sets matched against the
// career catalog. Unknown codes fall back to the Technical set.
const (
	DomainTechnical = "T"
	DomainCreative  = "C"
	DomainBusiness  = "B"
	DomainSocial    = "S"
	DomainResearch  = "R"
)

var domainInterests = map[string][]string{
	DomainTechnical: {
		"Programming", "AI", "Technology", "Data", "Cloud", "Security",
		"Automation", "Robotics", "IoT", "Embedded Systems", "Software",
		"Web Development", "Machine Learning", "Computer Vision",
		"Networking", "Blockchain", "Quantum Computing",
	},
	DomainCreative: {
		"Design", "Media", "Animation", "Gaming", "Creative",
		"Art", "Visual", "UX", "UI", "Graphics", "Multimedia",
		"Video", "Audio", "Photography", "Content Creation",
	},
	DomainBusiness: {
		"Management", "Business", "Sales", "Marketing", "Finance",
		"Entrepreneurship", "Product", "Strategy", "Operations",
		"Consulting", "Project Management", "Leadership", "Planning",
	},
	DomainSocial: {
		"Education", "Healthcare", "Community", "Counseling", "Social",
		"Teaching", "Training", "Wellness", "Human Services",
		"Non-profit", "Public Health", "Clinical", "Rehabilitation",
	},
	DomainResearch: {
		"Research", "Science", "Analysis", "Investigation",
		"Data Analysis", "Statistics", "Academic", "Theoretical",
		"Experimental", "Scientific", "Genomics", "Physics",
	},
}

var domainNames = map[string]string{
	DomainTechnical: "Technical",
	DomainCreative:  "Creative",
	DomainBusiness:  "Business",
	DomainSocial:    "Social",
	DomainResearch:  "Research",
}

// QuizInterests resolves a domain code to its interest keyword set and
// display name. Unrecognized codes behave like Technical, named "General".
func QuizInterests(domainCode string) ([]string, string) {
	interests, ok := domainInterests[domainCode]
	if !ok {
		interests = domainInterests[DomainTechnical]
	}
	name, ok := domainNames[domainCode]
	if !ok {
		name = "General"
	}
	return interests, name
}
