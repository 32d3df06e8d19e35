package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/vocab"
)

func newExtractor() *Extractor {
	return New(vocab.Default())
}

func TestExtract_WordBoundaryDiscipline(t *testing.T) {
	ex := newExtractor()

	res := ex.Extract("Senior JavaScript developer")

	assert.Contains(t, res.Skills, "javascript")
	assert.NotContains(t, res.Skills, "java", "java must not match inside javascript")
}

func TestExtract_BlocklistedBareTokens(t *testing.T) {
	ex := newExtractor()

	res := ex.Extract("I use Go daily, wrote C and R scripts, and studied ML theory")

	for _, blocked := range []string{"c", "r", "go", "ml"} {
		assert.NotContains(t, res.Skills, blocked, "bare %q is too ambiguous to match", blocked)
	}
}

func TestExtract_BlocklistedSkillReachableViaAlias(t *testing.T) {
	ex := newExtractor()

	res := ex.Extract("5 years of Golang experience")

	assert.Contains(t, res.Skills, "go")
}

func TestExtract_MLReachableViaSynonymPhrase(t *testing.T) {
	ex := newExtractor()

	res := ex.Extract("worked on machine learning pipelines")

	assert.Contains(t, res.Skills, "ml")
	assert.Contains(t, res.Skills, "machine learning")
}

func TestExtract_SynonymFirstMatchWins(t *testing.T) {
	ex := newExtractor()

	// "postgres" is declared before "postgre sql"; its snippet must win.
	res := ex.Extract("Tuned Postgres indexes. Also tried postgre sql replication.")

	assert.Contains(t, res.Skills, "postgresql")
	require.Contains(t, res.Evidence, "postgresql")
	assert.Contains(t, res.Evidence["postgresql"], "Postgres indexes")
}

func TestExtract_AliasesMapToCanonical(t *testing.T) {
	ex := newExtractor()

	res := ex.Extract("Built UIs in JS and services in TS")

	assert.Contains(t, res.Skills, "javascript")
	assert.Contains(t, res.Skills, "typescript")
}

func TestExtract_EvidencePreservesOriginalCasing(t *testing.T) {
	ex := newExtractor()

	res := ex.Extract("Deployed with Docker on AWS")

	require.Contains(t, res.Evidence, "docker")
	assert.Contains(t, res.Evidence["docker"], "Docker")
}

func TestExtract_EmptyInput(t *testing.T) {
	ex := newExtractor()

	res := ex.Extract("")

	assert.Empty(t, res.Skills)
	assert.Empty(t, res.Evidence)
}

func TestExtract_Deterministic(t *testing.T) {
	ex := newExtractor()
	text := "Python and Docker, plus React and Kubernetes, plus postgres"

	first := ex.Extract(text)
	second := ex.Extract(text)

	assert.Equal(t, first.Skills, second.Skills)
	assert.Equal(t, first.Evidence, second.Evidence)
}

func TestExtract_CanonicalNamesAreLowercase(t *testing.T) {
	ex := newExtractor()

	res := ex.Extract("PYTHON, Docker, REACT")

	for _, s := range res.Skills {
		assert.Equal(t, s, stringsToLowerHelper(s))
	}
}

func stringsToLowerHelper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func TestExtractSoft_FindsInterpersonalSkills(t *testing.T) {
	ex := newExtractor()

	res := ex.ExtractSoft("Strong communication and a collaborative team player")

	assert.Contains(t, res.Skills, "communication")
	assert.Contains(t, res.Skills, "collaboration")
	assert.Contains(t, res.Skills, "teamwork")
}

func TestFindPhrase_RejectsSubstringInsideWord(t *testing.T) {
	assert.Equal(t, -1, FindPhrase("reference", "r"))
	assert.Equal(t, -1, FindPhrase("javascript", "java"))
	assert.Equal(t, 0, FindPhrase("java script", "java"))
}

func TestFindPhrase_PunctuationIsABoundary(t *testing.T) {
	assert.Equal(t, 0, FindPhrase("c++ and rust", "c++"))
	assert.GreaterOrEqual(t, FindPhrase("skills: docker, react", "docker"), 0)
}

func TestFindPhraseAll_ReturnsEveryBoundedOccurrence(t *testing.T) {
	hits := FindPhraseAll("docker here, docker there, dockerfile nope", "docker")

	assert.Len(t, hits, 2)
}

func TestClean_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Clean("  a\t\tb\n\nc  "))
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   \n\t "))
}
