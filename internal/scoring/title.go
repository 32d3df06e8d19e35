// Package scoring computes the title, years, and composite match scores for
// a resume against a job description.
package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/vocab"
)

// titleLineLimit bounds how much of the first line is tokenized.
const titleLineLimit = 120

// tokenSplit splits on anything that is not a letter, digit, '#', or '+',
// so "c#" and "c++" survive tokenization.
var tokenSplit = regexp.MustCompile(`[^a-z0-9#+]+`)

// TitleScore measures role-title similarity between the first non-empty
// lines of the resume and the job description. Both token sets are expanded
// through the role-synonym table before intersecting; the score is the
// intersection size over the expanded job-description set, capped at 1.0.
func TitleScore(v *vocab.Vocabulary, resumeText, jdText string) float64 {
	r := expandRoles(v, firstLineTokens(v, resumeText))
	j := expandRoles(v, firstLineTokens(v, jdText))

	inter := 0
	for tok := range r {
		if j[tok] {
			inter++
		}
	}
	denom := len(j)
	if denom < 1 {
		denom = 1
	}
	score := float64(inter) / float64(denom)
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// firstLineTokens tokenizes the first non-empty line of text: lowercased,
// truncated, split on non-token characters, stopwords removed.
func firstLineTokens(v *vocab.Vocabulary, text string) map[string]bool {
	line := ""
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			line = strings.TrimSpace(l)
			break
		}
	}
	if len(line) > titleLineLimit {
		line = line[:titleLineLimit]
	}
	line = strings.ToLower(line)

	tokens := make(map[string]bool)
	for _, tok := range tokenSplit.Split(line, -1) {
		if tok != "" && !v.Stopwords[tok] {
			tokens[tok] = true
		}
	}
	return tokens
}

// expandRoles unions in the full token set of every role whose name tokens
// or synonym tokens intersect the input set (two-way expansion).
func expandRoles(v *vocab.Vocabulary, tokens map[string]bool) map[string]bool {
	out := make(map[string]bool, len(tokens))
	for tok := range tokens {
		out[tok] = true
	}
	for _, role := range v.Roles {
		nameTokens := strings.Fields(role.Canonical)
		hit := false
		for _, nt := range nameTokens {
			if tokens[nt] {
				hit = true
				break
			}
		}
		if !hit {
			for _, st := range role.Tokens {
				if tokens[st] {
					hit = true
					break
				}
			}
		}
		if hit {
			for _, nt := range nameTokens {
				out[nt] = true
			}
			for _, st := range role.Tokens {
				out[st] = true
			}
		}
	}
	return out
}
