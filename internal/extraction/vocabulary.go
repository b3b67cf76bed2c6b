package extraction

// commonSkills is the keyword vocabulary scanned against the whole document
// in addition to the dedicated skills section. Entries are lowercase; matches
// are reported title-cased.
var commonSkills = []string{
	// ServiceNow specific
	"servicenow", "itsm", "itom", "hrsd", "service portal", "flow designer",
	"business rules", "client scripts", "ui policies", "glide script",
	"rest apis", "soap apis", "orchestration", "discovery", "event management",
	"incident management", "problem management", "change management",
	"service mapping", "hr case management", "csa", "cad", "cis-hrsd", "cis-itom",

	// Programming & Technologies
	"javascript", "python", "java", "html", "css", "xml", "json",
	"angular", "react", "vue", "node.js", "typescript",

	// Databases & Tools
	"sql", "mysql", "postgresql", "mongodb", "oracle",
	"workday", "oracle cloud", "okta", "docusign", "adobe sign", "peoplesoft",

	// Methodologies
	"agile", "scrum", "sdlc", "waterfall", "itil",

	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "ci/cd", "git",

	// Other
	"integration hub", "performance analytics", "project management", "leadership",
}

// commonTitles are role words used to spot a professional title line near
// the top of the document.
var commonTitles = []string{
	"developer", "engineer", "administrator", "consultant", "analyst", "architect",
	"manager", "lead", "specialist", "scientist", "designer", "tester", "qa", "devops",
	"sdet", "full stack", "frontend", "backend", "cloud", "data", "ml", "ai", "security",
}
