// Package jobdesc classifies the skills mentioned in a job description into
// required and optional sets.
package jobdesc

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/vocab"
)

// skillsLine matches an explicit "skills:" list followed by comma-separated
// skill phrases.
var skillsLine = regexp.MustCompile(`\bskills?\s*:\s*([^\n]+)`)

// Heading keys for must-have / nice-to-have block slicing. A block runs from
// its own heading to the next heading that appears, or to end of text.
var (
	mustHaveEnds = []string{"nice to have", "requirements", "preferred", "what you’ll", "what you'll"}
	niceToEnds   = []string{"must-have", "preferred", "requirements", "what you’ll", "what you'll"}
)

// Parser derives required/optional skill sets from job-description text.
type Parser struct {
	vocab *vocab.Vocabulary
	ex    *extraction.Extractor
}

// New creates a Parser over the given vocabulary.
func New(v *vocab.Vocabulary) *Parser {
	return &Parser{vocab: v, ex: extraction.New(v)}
}

// Parse classifies the job description's skills. The stages below are tried
// in order and the first stage that produces a non-empty result wins:
//
//  1. An explicit "skills:" list puts every listed skill into required.
//  2. Must-have / nice-to-have block slicing extracts each block separately.
//  3. Whole-document extraction puts everything into required.
//  4. Soft-skill extraction puts everything into optional.
//
// Missing headings yield empty slices, never errors.
func (p *Parser) Parse(jdText string) (required, optional map[string]bool) {
	required = make(map[string]bool)
	optional = make(map[string]bool)

	t := strings.ToLower(extraction.Clean(jdText))

	if m := skillsLine.FindStringSubmatch(t); m != nil {
		var phrases []string
		for _, part := range strings.Split(m[1], ",") {
			if part = strings.TrimSpace(part); part != "" {
				phrases = append(phrases, part)
			}
		}
		res := p.ex.Extract(strings.Join(phrases, ", "))
		for _, s := range res.Skills {
			required[s] = true
		}
		return required, optional
	}

	mustBlk := sliceBlock(t, "must-have", mustHaveEnds)
	niceBlk := sliceBlock(t, "nice to have", niceToEnds)

	if mustBlk != "" {
		for _, s := range p.ex.Extract(mustBlk).Skills {
			required[s] = true
		}
	}
	if niceBlk != "" {
		for _, s := range p.ex.Extract(niceBlk).Skills {
			optional[s] = true
		}
	}

	if len(required) == 0 && len(optional) == 0 {
		// Extract over the original text so evidence-quality casing is kept
		// for any downstream use.
		for _, s := range p.ex.Extract(jdText).Skills {
			required[s] = true
		}
	}
	if len(required) == 0 && len(optional) == 0 && p.vocab.IncludeSoftSkills {
		for _, s := range p.ex.ExtractSoft(jdText).Skills {
			optional[s] = true
		}
	}

	return required, optional
}

// sliceBlock returns the text between the end of the first occurrence of
// startKey and the nearest following end key (or end of text), trimmed.
// It returns "" when startKey is absent.
func sliceBlock(t, startKey string, endKeys []string) string {
	i := strings.Index(t, startKey)
	if i < 0 {
		return ""
	}
	start := i + len(startKey)
	end := len(t)
	for _, k := range endKeys {
		if j := strings.Index(t[start:], k); j >= 0 && start+j < end {
			end = start + j
			break
		}
	}
	return strings.TrimSpace(t[start:end])
}
