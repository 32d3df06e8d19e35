package vocab

// fallbackSkills is the built-in canonical skill list, used when no skill
// file is configured or the configured file fails validation.
var fallbackSkills = []string{
	"python", "java", "javascript", "typescript", "react", "node.js", "express",
	"html", "css", "rest", "api", "graphql", "docker", "kubernetes", "aws", "gcp", "azure", "linux",
	"postgresql", "mysql", "mongodb", "redis", "git", "github", "ci/cd",
	"unit testing", "integration testing", "pytest", "jest",
	"django", "flask", "fastapi", "spring", "next.js",
	"pandas", "numpy", "scikit-learn", "nlp", "machine learning",
	"data structures", "algorithms",
}

// synonymTable declares surface variants per canonical skill. Order matters
// twice over: entries are tried top to bottom, and within an entry the first
// matching variant supplies the evidence snippet.
var synonymTable = []SynonymEntry{
	{"c++", []string{"c++", "c plus plus", "c-plus-plus"}},
	{"node.js", []string{"node.js", "nodejs", "node js"}},
	{"react", []string{"reactjs", "react.js"}},
	{"postgresql", []string{"postgres", "postgre sql"}},
	{"mongodb", []string{"mongo", "mongo db"}},
	{"mysql", []string{"my sql"}},
	{"ci/cd", []string{"ci cd", "ci-cd", "continuous integration", "continuous delivery", "continuous deployment"}},
	{"unit testing", []string{"unit tests", "unit test"}},
	{"integration testing", []string{"integration tests", "integration test"}},
	{"end-to-end testing", []string{"e2e testing", "e2e tests", "end to end testing"}},
	{"code review", []string{"code reviews"}},
	{"nlp", []string{"natural language processing"}},
	// bare "ml" is blocklisted; the skill is only reachable via this phrase
	{"ml", []string{"machine learning"}},
	{"http", []string{"https"}},
	{"graphql", []string{"graph ql"}},
}

// aliasTable maps short or alternate surface forms to canonical skills.
var aliasTable = []AliasEntry{
	{"golang", "go"},
	{"c sharp", "c#"},
	{"c-sharp", "c#"},
	{"js", "javascript"},
	{"ts", "typescript"},
	{"sde", "software engineer"},
	{"software development engineer", "software engineer"},
}

// blocklist holds bare tokens too ambiguous for direct word matching.
var blocklist = map[string]bool{
	"c":  true,
	"r":  true,
	"go": true,
	"ml": true,
}

var softSkills = []string{
	"teamwork", "collaboration", "communication", "leadership",
	"problem solving", "ownership", "adaptability", "time management",
	"agile", "scrum", "kanban",
}

var softSynonymTable = []SynonymEntry{
	{"teamwork", []string{"teamwork", "team player", "working in a team"}},
	{"collaboration", []string{"collaboration", "collaborate", "collaborative"}},
	{"communication", []string{"communication", "communicate", "communicator"}},
	{"leadership", []string{"leadership", "lead", "led"}},
	{"problem solving", []string{"problem solving", "problem-solving"}},
	{"ownership", []string{"ownership", "own", "owned"}},
	{"adaptability", []string{"adaptable", "adaptability", "flexible", "flexibility"}},
	{"time management", []string{"time management"}},
	{"agile", []string{"agile"}},
	{"scrum", []string{"scrum"}},
	{"kanban", []string{"kanban"}},
}

// roleTable drives title similarity: when a token set intersects a role's
// name or synonym tokens, the full token set of that role is unioned in.
var roleTable = []RoleEntry{
	{"software engineer", []string{"software", "engineer", "developer", "swe", "sde"}},
	{"data scientist", []string{"data", "scientist", "ml", "ai"}},
	{"data engineer", []string{"data", "engineer", "etl"}},
	{"ml engineer", []string{"machine", "learning", "ml", "engineer"}},
	{"backend engineer", []string{"backend", "back-end", "server", "api"}},
	{"frontend engineer", []string{"frontend", "front-end", "react", "ui"}},
}

var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "to": true, "of": true, "and": true,
	"or": true, "for": true, "with": true, "in": true, "on": true, "at": true,
	"by": true, "as": true, "is": true, "are": true, "be": true, "this": true,
	"that": true, "your": true, "our": true, "we": true, "you": true,
	"their": true, "his": true, "her": true,
}

var sectionWeights = map[string]float64{
	"experience":     1.0,
	"projects":       0.95,
	"certifications": 0.9,
	"skills":         0.75,
	"education":      0.7,
	"summary":        0.55,
	"other":          0.7,
}
