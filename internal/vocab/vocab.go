// Package vocab provides the immutable skill vocabulary and scoring constants
// used by the resume screener. A Vocabulary is built once at process start and
// must not be mutated afterwards; all scanner components read it concurrently.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Rubric weights. The five component weights sum to 1.0.
const (
	WeightRequired     = 0.45
	WeightOptional     = 0.20
	WeightDistribution = 0.15
	WeightTitle        = 0.10
	WeightYears        = 0.10

	// MissingRequiredPenalty is subtracted per missing required skill,
	// capped at MaxPenalty.
	MissingRequiredPenalty = 0.10
	MaxPenalty             = 0.50

	// OccurrenceCap bounds the weighted occurrence credit a single skill
	// can accumulate in the distribution score.
	OccurrenceCap = 2.0

	// ZeroFloorThreshold is the overlap ratio below which a resume with no
	// matched skills scores exactly zero, regardless of title/years credit.
	ZeroFloorThreshold = 0.03
)

// SynonymEntry maps a canonical skill to its surface variants. Entries are
// kept in a slice because variant order is significant: the first variant
// that matches determines the evidence snippet.
type SynonymEntry struct {
	Canonical string
	Variants  []string
}

// AliasEntry maps a short or ambiguous surface form to a canonical skill.
type AliasEntry struct {
	Alias     string
	Canonical string
}

// RoleEntry maps a canonical role title to its synonym tokens, used for
// title similarity expansion.
type RoleEntry struct {
	Canonical string
	Tokens    []string
}

// Vocabulary holds every lookup table the scanner needs. All fields are
// read-only after construction.
type Vocabulary struct {
	// Skills is the canonical skill list, lowercased and deduplicated.
	Skills []string

	// Synonyms and Aliases are ordered; iteration follows declaration order.
	Synonyms []SynonymEntry
	Aliases  []AliasEntry

	// Blocklist holds bare tokens too ambiguous to match directly
	// (single letters, "go", unqualified "ml").
	Blocklist map[string]bool

	SoftSkills        []string
	SoftSynonyms      []SynonymEntry
	IncludeSoftSkills bool

	Roles     []RoleEntry
	Stopwords map[string]bool

	// SectionWeights weight skill occurrences by the resume section in
	// which they appear.
	SectionWeights map[string]float64
}

// defaultSectionWeight applies to occurrences outside any known section.
const defaultSectionWeight = 0.7

// SectionWeight returns the occurrence weight for a section label.
func (v *Vocabulary) SectionWeight(label string) float64 {
	if w, ok := v.SectionWeights[label]; ok {
		return w
	}
	return defaultSectionWeight
}

// Variants returns the surface forms to search for a canonical skill: the
// skill itself, its declared synonyms, and the reverse-alias forms for
// skills commonly written as abbreviations.
func (v *Vocabulary) Variants(skill string) []string {
	variants := []string{skill}
	for _, entry := range v.Synonyms {
		if entry.Canonical == skill {
			variants = append(variants, entry.Variants...)
			break
		}
	}
	switch skill {
	case "go":
		variants = append(variants, "golang")
	case "c#":
		variants = append(variants, "c sharp", "c-sharp")
	case "javascript":
		variants = append(variants, "js")
	case "typescript":
		variants = append(variants, "ts")
	}
	return variants
}

// skillFileSchema validates the skill file: a non-empty JSON array of
// non-empty strings.
const skillFileSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {"type": "string", "minLength": 1}
}`

// Load builds a Vocabulary whose canonical skill list comes from a JSON file
// (an array of skill strings). Synonyms, aliases, soft skills, and weights
// always come from the built-in tables. The file is validated against a
// schema before use; any failure returns an error so the caller can fall
// back to Default.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill file %s: %w", path, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(skillFileSchema)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate skill file %s: %w", path, err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("invalid skill file %s: %s", path, strings.Join(msgs, "; "))
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse skill file %s: %w", path, err)
	}

	skills := normalizeSkillList(raw)
	if len(skills) == 0 {
		return nil, fmt.Errorf("skill file %s contains no usable skills", path)
	}

	v := Default()
	v.Skills = skills
	return v, nil
}

// Default returns a Vocabulary backed entirely by the built-in tables.
func Default() *Vocabulary {
	return &Vocabulary{
		Skills:            normalizeSkillList(fallbackSkills),
		Synonyms:          synonymTable,
		Aliases:           aliasTable,
		Blocklist:         blocklist,
		SoftSkills:        softSkills,
		SoftSynonyms:      softSynonymTable,
		IncludeSoftSkills: true,
		Roles:             roleTable,
		Stopwords:         stopwords,
		SectionWeights:    sectionWeights,
	}
}

// normalizeSkillList lowercases, trims, and deduplicates a skill list while
// preserving first-seen order.
func normalizeSkillList(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
