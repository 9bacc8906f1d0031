package services

import (
	"fmt"
	"strings"

	"github.com/careermitra/careermitra-backend/internal/domain"
)

// careerGuidance is one entry of the fixed career-specific guidance table
// used by the rule-based responder.
type careerGuidance struct {
	Description string
	Skills      []string
	CareerPath  string
	SalaryRange string
	GrowthTips  string
}

// guidanceTable is matched by bidirectional substring containment against the
// lower-cased career name; first match wins, table order is the tie-break.
var guidanceTable = []struct {
	Key      string
	Guidance careerGuidance
}{
	{
		Key: "software engineer",
		Guidance: careerGuidance{
			Description: "Software Engineers design, develop, and maintain software systems and applications.",
			Skills:      []string{"Programming", "Data Structures", "Algorithms", "Version Control", "Testing"},
			CareerPath:  "Junior Dev → Senior Dev → Tech Lead → Engineering Manager → CTO",
			SalaryRange: "₹3-6L (Junior) to ₹30L+ (Senior)",
			GrowthTips:  "Contribute to open source, build projects, learn cloud technologies",
		},
	},
	{
		Key: "data scientist",
		Guidance: careerGuidance{
			Description: "Data Scientists analyze complex data to help organizations make better decisions.",
			Skills:      []string{"Python", "Machine Learning", "Statistics", "SQL", "Data Visualization"},
			CareerPath:  "Junior Data Scientist → Data Scientist → Senior Data Scientist → Lead/Principal → Chief Data Officer",
			SalaryRange: "₹4-8L (Junior) to ₹35L+ (Senior)",
			GrowthTips:  "Kaggle competitions, publish research, learn deep learning",
		},
	},
	{
		Key: "ai engineer",
		Guidance: careerGuidance{
			Description: "AI Engineers develop and implement artificial intelligence solutions.",
			Skills:      []string{"Python", "TensorFlow/PyTorch", "Machine Learning", "Neural Networks", "MLOps"},
			CareerPath:  "Junior AI Engineer → AI Engineer → Senior AI Engineer → AI Lead → AI Director",
			SalaryRange: "₹5-10L (Junior) to ₹40L+ (Senior)",
			GrowthTips:  "Build ML projects, read research papers, contribute to AI open source",
		},
	},
	{
		Key: "web developer",
		Guidance: careerGuidance{
			Description: "Web Developers create and maintain websites and web applications.",
			Skills:      []string{"HTML/CSS", "JavaScript", "React/Angular/Vue", "Node.js", "APIs"},
			CareerPath:  "Junior Developer → Frontend/Backend Developer → Senior Developer → Lead → Architect",
			SalaryRange: "₹3-6L (Junior) to ₹25L+ (Senior)",
			GrowthTips:  "Build a strong portfolio, learn modern frameworks, contribute to projects",
		},
	},
	{
		Key: "devops engineer",
		Guidance: careerGuidance{
			Description: "DevOps Engineers bridge the gap between development and operations.",
			Skills:      []string{"Linux", "Docker", "Kubernetes", "CI/CD", "Cloud Platforms"},
			CareerPath:  "Jr. DevOps → DevOps Engineer → Sr. DevOps → DevOps Lead → SRE Manager",
			SalaryRange: "₹4-8L (Junior) to ₹30L+ (Senior)",
			GrowthTips:  "Get cloud certifications, automate everything, learn infrastructure as code",
		},
	},
	{
		Key: "cybersecurity",
		Guidance: careerGuidance{
			Description: "Security Engineers protect systems and data from cyber threats.",
			Skills:      []string{"Network Security", "Penetration Testing", "Security Tools", "Compliance", "Incident Response"},
			CareerPath:  "Security Analyst → Security Engineer → Senior Security → Security Lead → CISO",
			SalaryRange: "₹4-8L (Junior) to ₹35L+ (Senior)",
			GrowthTips:  "Get certifications (CISSP, CEH), participate in bug bounties, stay updated",
		},
	},
}

// Question categories, evaluated in this order; first keyword hit wins.
const (
	categorySalary    = "salary"
	categorySkills    = "skills"
	categoryGrowth    = "growth"
	categoryJob       = "job"
	categoryEducation = "education"
	categoryStartup   = "startup"
	categoryRemote    = "remote"
	categoryGeneral   = "general"
)

var questionCategories = []struct {
	Category string
	Keywords []string
}{
	{categorySalary, []string{"salary", "package", "money", "earn", "compensation", "ctc"}},
	{categorySkills, []string{"skill", "learn", "technology", "tech", "language", "framework", "missing"}},
	{categoryGrowth, []string{"growth", "future", "career path", "promotion", "advance", "progress"}},
	{categoryJob, []string{"job", "interview", "resume", "hiring", "placement", "hunt"}},
	{categoryEducation, []string{"course", "degree", "study", "college", "university", "masters"}},
	{categoryStartup, []string{"startup", "entrepreneurship", "own business", "founder"}},
	{categoryRemote, []string{"remote", "work from home", "wfh", "flexible"}},
}

func lookupGuidance(career string) *careerGuidance {
	careerLower := strings.ToLower(strings.TrimSpace(career))
	if careerLower == "" {
		return nil
	}
	for i := range guidanceTable {
		key := guidanceTable[i].Key
		if strings.Contains(careerLower, key) || strings.Contains(key, careerLower) {
			return &guidanceTable[i].Guidance
		}
	}
	return nil
}

func classifyQuestion(question string) string {
	q := strings.ToLower(question)
	for _, entry := range questionCategories {
		for _, keyword := range entry.Keywords {
			if strings.Contains(q, keyword) {
				return entry.Category
			}
		}
	}
	return categoryGeneral
}

// ruleBasedResponse renders the category template for the question. It never
// returns an empty string.
func ruleBasedResponse(cc domain.ChatContext) string {
	guidance := lookupGuidance(cc.Career)
	category := classifyQuestion(cc.Question)

	switch category {
	case categorySalary:
		return salaryResponse(cc.Career, guidance)
	case categorySkills:
		return skillsResponse(cc.Career, cc.MissingSkills, guidance)
	case categoryGrowth:
		return growthResponse(cc.Career, guidance)
	case categoryJob:
		return jobResponse(cc.Career)
	case categoryEducation:
		return educationResponse(cc.Career)
	case categoryStartup:
		return startupResponse(cc.Career)
	case categoryRemote:
		return remoteResponse(cc.Career)
	default:
		return generalResponse(cc.Career, guidance)
	}
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

func salaryResponse(career string, guidance *careerGuidance) string {
	if guidance != nil {
		return fmt.Sprintf(`💰 **Salary Overview for %s:**

%s

📈 **Factors affecting salary:**
• Your skills and experience level
• Company size and industry
• Location (metro cities offer more)
• Negotiation skills

Would you like more specific salary information for a particular company or location?`, career, guidance.SalaryRange)
	}
	return fmt.Sprintf(`💰 **Salary Information for %s:**

Salaries vary based on:
• Experience level (entry-level to senior)
• Company type (FAANG, startups, service-based)
• Location (metro vs tier-2 cities)
• Your skill set

**Typical ranges:**
• Entry level: ₹3-6 LPA
• Mid-level: ₹8-20 LPA
• Senior level: ₹20-50+ LPA

Specific companies like Google, Microsoft, Amazon offer 20-50%% higher packages.`, career)
}

func skillsResponse(career string, missingSkills []string, guidance *careerGuidance) string {
	if len(missingSkills) > 0 {
		top := missingSkills
		if len(top) > 5 {
			top = top[:5]
		}
		return fmt.Sprintf(`🎯 **Skills to Develop for %s:**

**Priority Skills:**
%s

**Recommended Learning Path:**
1. Start with fundamentals of each skill
2. Build practical projects
3. Get certifications if available
4. Practice on platforms like HackerRank
5. Contribute to open source

**Learning Resources:**
• Coursera, Udemy for courses
• YouTube tutorials
• Official documentation
• Hands-on projects`, career, bulletList(top))
	}
	if guidance != nil {
		return fmt.Sprintf(`🎯 **Essential Skills for %s:**

%s

**How to build these skills:**
1. **Programming:** Practice daily on LeetCode, HackerRank
2. **Frameworks:** Follow official docs and build projects
3. **Tools:** Get hands-on experience through internships
4. **Soft Skills:** Take leadership roles in college projects

**Recommended Resources:**
• Online courses (Coursera, edX)
• Books and documentation
• Bootcamps and workshops`, career, bulletList(guidance.Skills))
	}
	return fmt.Sprintf(`🎯 **Skills Development for %s:**

To excel in this career path, focus on:

**Technical Skills:**
• Programming languages relevant to your field
• Data structures and algorithms
• Version control (Git)
• Problem-solving abilities

**Soft Skills:**
• Communication
• Team collaboration
• Time management
• Continuous learning mindset

**Action Steps:**
1. Identify specific skills needed from job postings
2. Create a learning schedule
3. Build real-world projects
4. Get feedback and improve`, career)
}

func growthResponse(career string, guidance *careerGuidance) string {
	if guidance != nil {
		return fmt.Sprintf(`📈 **Career Growth Path for %s:**

**Typical Progression:**
%s

**Growth Tips:**
• %s

**Key Milestones:**
• 0-2 years: Building fundamentals
• 2-5 years: Specializing and taking ownership
• 5+ years: Leadership and strategic impact

**What employers look for at each level:**
• Junior: Learning ability, coding skills
• Senior: Technical depth, mentoring
• Lead: Strategy, people management`, career, guidance.CareerPath, guidance.GrowthTips)
	}
	return fmt.Sprintf(`📈 **Career Growth in %s:**

**Growth Strategies:**
1. **Continuous Learning:** Stay updated with industry trends
2. **Network:** Build professional relationships
3. **Mentorship:** Find mentors and become one
4. **Visibility:** Contribute to projects and communities
5. **Results:** Deliver measurable impact

**Timeline:**
• Year 1-2: Learn and adapt
• Year 2-5: Specialize and lead
• Year 5+: Strategic impact and leadership

**Accelerate Your Growth:**
• Switch to product companies for faster growth
• Consider international opportunities
• Build a strong personal brand`, career)
}

func jobResponse(career string) string {
	return fmt.Sprintf(`💼 **Job Search Tips for %s:**

**Resume Tips:**
• Highlight relevant projects and skills
• Use action verbs and quantify achievements
• Tailor resume for each application
• Include GitHub/portfolio links

**Interview Preparation:**
• Practice coding on LeetCode
• Prepare system design questions
• Study company-specific questions
• Mock interviews with peers

**Where to Apply:**
• Company career pages
• LinkedIn, Naukri, Indeed
• Referrals (most effective!)
• Campus placements

**Top Companies:**
FAANG, Microsoft, Goldman Sachs, and growing startups`, career)
}

func educationResponse(career string) string {
	return fmt.Sprintf(`📚 **Educational Path for %s:**

**Minimum Requirements:**
• Bachelor's degree in relevant field
• Strong foundation in programming/math

**Recommended Courses:**
• Data Structures & Algorithms
• Database Management Systems
• Operating Systems
• Computer Networks

**Higher Studies (Optional):**
• M.Tech for research roles
• MBA for management roles
• Certifications for specific skills

**Self-Learning:**
• Online platforms: Coursera, edX, Udemy
• Bootcamps for intensive training
• Open source contributions`, career)
}

func startupResponse(career string) string {
	return fmt.Sprintf(`🚀 **Startup Guidance for %s:**

**Starting a Tech Startup:**
1. **Validate your idea:** Research market needs
2. **Build an MVP:** Start with minimum features
3. **Find co-founders:** Complementary skills
4. **Get initial users:** Early adopter program
5. **Seek funding:** Angels, VCs, incubators

**Essential Skills:**
• Technical expertise (you need to build!)
• Business development
• Marketing and sales
• Fundraising

**Resources:**
• Startup incubators (Y Combinator, 91springboard)
• Government schemes
• Angel networks

**Risk Assessment:**
• High risk, high reward
• Ensure financial runway of 12-18 months`, career)
}

func remoteResponse(career string) string {
	return fmt.Sprintf(`🏠 **Remote Work in %s:**

**Remote-Friendly Aspects:**
• Software development is highly remote-friendly
• Data science roles often allow remote work
• DevOps and cloud roles are remote-friendly

**Tips for Remote Success:**
• Create a dedicated workspace
• Maintain regular hours
• Over-communicate with team
• Use collaboration tools effectively
• Build strong online presence

**Companies Offering Remote:**
• Most tech companies post-pandemic
• Product companies are more flexible
• Check job descriptions for remote policy

**Building Remote Career:**
• Time zone alignment matters
• Strong communication is key
• Self-discipline and motivation essential`, career)
}

func generalResponse(career string, guidance *careerGuidance) string {
	if guidance != nil {
		return fmt.Sprintf(`🤖 **%s Overview:**

%s

**What you'll do:**
• Design and implement solutions
• Collaborate with cross-functional teams
• Stay updated with technology trends
• Solve complex problems

**Best suited for you if:**
• You enjoy problem-solving
• You like continuous learning
• You're detail-oriented
• You work well in teams

**Getting Started:**
1. Build a strong foundation in basics
2. Create projects for your portfolio
3. Network with professionals
4. Apply for internships

Would you like more specific information about any aspect?`, career, guidance.Description)
	}
	if strings.TrimSpace(career) != "" {
		return fmt.Sprintf(`🤖 **%s Career Guidance:**

This is a great career choice for engineering students!

**To succeed in this field:**
• Focus on core technical skills
• Build practical projects
• Stay updated with industry trends
• Network with professionals

**Next Steps:**
1. Identify specific skills needed
2. Create a learning roadmap
3. Start building projects
4. Apply for relevant positions

Would you like personalized advice based on your profile?`, career)
	}
	return `🤖 **Career Guidance Assistant:**

I'd be happy to help with your career questions! You can ask me about:

• 💰 Salary and compensation
• 🎯 Skills to learn and develop
• 📈 Career growth and progression
• 💼 Job search and interview tips
• 📚 Education and courses
• 🚀 Startup and entrepreneurship
• 🏠 Remote work opportunities

**To provide better guidance:**
1. Fill in your profile details
2. Get career recommendations
3. Ask specific questions

What would you like to know more about?`
}
