package rendering

import (
	"regexp"
	"strings"
	"unicode"
)

var techTokenPattern = regexp.MustCompile(`[A-Za-z0-9+.#-]+`)

// techStopWords are tokens never treated as a technology, even when they
// look like acronyms in the source text
var techStopWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"by": true, "for": true, "from": true, "in": true, "into": true,
	"of": true, "on": true, "or": true, "per": true, "the": true,
	"to": true, "using": true, "via": true, "with": true,
	"it": true, "i": true, "we": true,
}

// techWhitelist holds technology names recognized in free-form prose
var techWhitelist = map[string]bool{
	"servicenow": true, "javascript": true, "typescript": true, "python": true,
	"java": true, "go": true, "golang": true, "c++": true, "c#": true,
	"html": true, "css": true, "sql": true, "nosql": true, "bash": true,
	"powershell": true, "react": true, "angular": true, "vue": true,
	"node": true, "node.js": true, "django": true, "flask": true,
	"spring": true, "mysql": true, "postgresql": true, "postgres": true,
	"mongodb": true, "oracle": true, "redis": true, "elasticsearch": true,
	"kafka": true, "rabbitmq": true, "aws": true, "azure": true,
	"gcp": true, "docker": true, "kubernetes": true, "terraform": true,
	"ansible": true, "jenkins": true, "git": true, "jira": true,
	"linux": true, "rest": true, "soap": true, "graphql": true,
	"grpc": true, "json": true, "xml": true, "yaml": true,
	"glide": true, "jelly": true, "itsm": true, "itom": true,
	"cmdb": true, "selenium": true, "jest": true, "grafana": true,
	"prometheus": true, "splunk": true,
}

// ExtractTechnologies scans free-form text for technology names. A token
// counts when it appears in the whitelist or the candidate's own skills
// vocabulary, or when it is an all-caps acronym of two or more letters.
func ExtractTechnologies(text string, skillsVocab map[string]bool) []string {
	var techs []string
	seen := make(map[string]bool)

	for _, token := range techTokenPattern.FindAllString(text, -1) {
		token = strings.Trim(token, ".-")
		if token == "" {
			continue
		}
		lower := strings.ToLower(token)
		if techStopWords[lower] || seen[lower] {
			continue
		}
		if techWhitelist[lower] || skillsVocab[lower] || isAcronym(token) {
			seen[lower] = true
			techs = append(techs, token)
		}
	}
	return techs
}

// isAcronym reports whether the token is all uppercase letters, at least
// two of them.
func isAcronym(token string) bool {
	if len(token) < 2 {
		return false
	}
	for _, r := range token {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
