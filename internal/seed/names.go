package seed

// FirstNames is the given-name vocabulary for roster generation.
var FirstNames = []string{
	"James", "Emma", "Liam", "Olivia", "Noah", "Ava", "Ethan", "Sophia",
	"Mason", "Isabella", "Lucas", "Mia", "Aiden", "Charlotte", "Elijah",
	"Amelia", "Wei", "Priya", "Kenji", "Fatima", "Mateo", "Chloe", "Ravi",
	"Hana",
}

// LastNames is the surname vocabulary for roster generation.
var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Chen", "Patel", "Kim", "Nguyen",
	"Tanaka", "Singh", "Anderson", "Taylor", "Thomas", "Moore", "Clarke",
	"Okafor",
}

// Roles are the job titles a roster resource can hold.
var Roles = []string{
	"Developer",
	"Senior Developer",
	"Tech Lead",
	"Business Analyst",
	"QA Engineer",
	"DevOps Engineer",
	"UX Designer",
	"Project Manager",
	"Data Engineer",
	"Architect",
}

// DefaultRole is the role whose skills apply when a role is not in RoleSkills.
const DefaultRole = "Developer"

// Grades are the seniority levels, most junior first.
var Grades = []string{"Junior", "Mid", "Senior", "Lead", "Principal"}

// HoursOptions are the weekly hour commitments a roster resource can have.
var HoursOptions = []int{20, 24, 32, 36, 40}

// RoleSkills maps a role to its skill set.
var RoleSkills = map[string][]string{
	"Developer":        {"React", "TypeScript", "Node.js", "REST APIs", "Git"},
	"Senior Developer": {"React", "TypeScript", "Node.js", "AWS", "System Design", "Mentoring"},
	"Tech Lead":        {"Architecture", "TypeScript", "AWS", "Agile", "Code Review", "Leadership"},
	"Business Analyst": {"Requirements", "SQL", "Agile", "Stakeholder Management", "Process Modeling"},
	"QA Engineer":      {"Test Automation", "Selenium", "Cypress", "API Testing", "Agile"},
	"DevOps Engineer":  {"AWS", "Docker", "Kubernetes", "Terraform", "CI/CD"},
	"UX Designer":      {"Figma", "UI/UX", "User Research", "Prototyping", "Design Systems"},
	"Project Manager":  {"Agile", "Scrum", "Risk Management", "Budgeting", "Stakeholder Management"},
	"Data Engineer":    {"Python", "SQL", "Spark", "Airflow", "AWS"},
	"Architect":        {"System Design", "AWS", "Security", "Integration Patterns", "Cloud Strategy"},
}

// Certifications is the pool certifications are drawn from.
var Certifications = []string{
	"AWS Solutions Architect",
	"Certified Scrum Master",
	"PMP",
	"Google Cloud Professional",
	"Azure Fundamentals",
	"Certified Kubernetes Administrator",
	"ISTQB Foundation",
	"TOGAF",
}

// PastClients is the pool of clients for synthesized experience history.
var PastClients = []string{
	"Acme Corp",
	"Globex",
	"Initech",
	"Umbrella Health",
	"Stark Industries",
	"Wayne Enterprises",
	"Cyberdyne",
	"Soylent Foods",
}

// ProjectSuffixes name synthesized past engagements.
var ProjectSuffixes = []string{"Platform", "Migration", "Transformation", "Integration"}

// Departments are the job families a resource belongs to.
var Departments = []string{"Engineering", "Design", "Product", "Operations", "Data"}

// MonthAbbrev are month labels used in synthesized history dates.
var MonthAbbrev = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// EmailDomain is appended to generated resource email addresses.
const EmailDomain = "resourcehub.example"
