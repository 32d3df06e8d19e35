package vocab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SkillsAreUniqueAndLowercase(t *testing.T) {
	v := Default()

	seen := make(map[string]bool)
	for _, s := range v.Skills {
		assert.Equal(t, strings.ToLower(s), s)
		assert.False(t, seen[s], "duplicate canonical skill %q", s)
		seen[s] = true
	}
}

func TestDefault_BlocklistCoversAmbiguousTokens(t *testing.T) {
	v := Default()

	for _, tok := range []string{"c", "r", "go", "ml"} {
		assert.True(t, v.Blocklist[tok], "%q must be blocklisted", tok)
	}
}

func TestSectionWeight_KnownAndUnknownLabels(t *testing.T) {
	v := Default()

	assert.Equal(t, 1.0, v.SectionWeight("experience"))
	assert.Equal(t, 0.95, v.SectionWeight("projects"))
	assert.Equal(t, 0.55, v.SectionWeight("summary"))
	assert.Equal(t, 0.7, v.SectionWeight("no-such-section"))
}

func TestVariants_IncludesSynonymsAndAbbreviations(t *testing.T) {
	v := Default()

	assert.Contains(t, v.Variants("go"), "golang")
	assert.Contains(t, v.Variants("javascript"), "js")
	assert.Contains(t, v.Variants("c#"), "c sharp")
	assert.Contains(t, v.Variants("postgresql"), "postgres")
	assert.Equal(t, []string{"docker"}, v.Variants("docker"))
}

func TestLoad_ValidSkillFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Python", "  Docker ", "python", "Rust"]`), 0644))

	v, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"python", "docker", "rust"}, v.Skills)
	// Built-in tables are unaffected by the skill file.
	assert.NotEmpty(t, v.Synonyms)
	assert.NotEmpty(t, v.SoftSkills)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))

	assert.Error(t, err)
}

func TestLoad_RejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"not_json":     `not json at all`,
		"wrong_type":   `{"skills": ["python"]}`,
		"empty_array":  `[]`,
		"non_strings":  `["python", 42]`,
		"empty_string": `["python", ""]`,
	}
	for name, content := range cases {
		path := filepath.Join(dir, name+".json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := Load(path)
		assert.Error(t, err, "case %s", name)
	}
}

func TestRubricConstants(t *testing.T) {
	assert.InDelta(t, 1.0, WeightRequired+WeightOptional+WeightDistribution+WeightTitle+WeightYears, 1e-9)
	assert.Equal(t, 0.10, MissingRequiredPenalty)
	assert.Equal(t, 0.50, MaxPenalty)
	assert.Equal(t, 2.0, OccurrenceCap)
	assert.Equal(t, 0.03, ZeroFloorThreshold)
}
