package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/vocab"
)

// snippetWindow is the number of characters of surrounding context captured
// on each side of a skill's first occurrence.
const snippetWindow = 40

// Result holds the canonical skills found in a text plus one evidence
// snippet per skill (the first occurrence). Results are owned by the caller
// and never mutated after return.
type Result struct {
	Skills   []string          // sorted canonical names, lowercase
	Evidence map[string]string // canonical name -> original-cased snippet
}

// Has reports whether a canonical skill was found.
func (r Result) Has(skill string) bool {
	for _, s := range r.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// Set returns the found skills as a set.
func (r Result) Set() map[string]bool {
	set := make(map[string]bool, len(r.Skills))
	for _, s := range r.Skills {
		set[s] = true
	}
	return set
}

// Extractor scans text for vocabulary terms, synonyms, and aliases. It is
// stateless apart from the read-only vocabulary and safe for concurrent use.
type Extractor struct {
	vocab *vocab.Vocabulary
}

// New creates an Extractor over the given vocabulary.
func New(v *vocab.Vocabulary) *Extractor {
	return &Extractor{vocab: v}
}

// Extract scans text for every vocabulary skill, then synonyms, then
// aliases, using word-boundary matching over the cleaned, lowercased text.
// Evidence snippets are taken from the original text to preserve casing;
// only the first match per canonical skill is recorded. Empty input yields
// an empty result.
func (e *Extractor) Extract(text string) Result {
	return e.extract(text, e.vocab.Skills, e.vocab.Synonyms, e.vocab.Aliases)
}

// ExtractSoft scans text against the soft-skill vocabulary only.
func (e *Extractor) ExtractSoft(text string) Result {
	return e.extract(text, e.vocab.SoftSkills, e.vocab.SoftSynonyms, nil)
}

func (e *Extractor) extract(text string, skills []string, synonyms []vocab.SynonymEntry, aliases []vocab.AliasEntry) Result {
	original := text
	cleaned := strings.ToLower(Clean(original))

	found := make(map[string]bool)
	evidence := make(map[string]string)

	record := func(canonical, variant string) {
		found[canonical] = true
		if _, ok := evidence[canonical]; ok {
			return
		}
		if snip := firstSnippet(original, variant); snip != "" {
			evidence[canonical] = snip
		}
	}

	for _, sk := range skills {
		s := strings.ToLower(strings.TrimSpace(sk))
		if s == "" || e.vocab.Blocklist[s] {
			continue
		}
		if FindPhrase(cleaned, s) >= 0 {
			record(s, s)
		}
	}

	// First matching variant wins per canonical skill, so a later variant
	// never overwrites the evidence snippet.
	for _, entry := range synonyms {
		for _, v := range entry.Variants {
			if FindPhrase(cleaned, v) >= 0 {
				record(strings.ToLower(entry.Canonical), v)
				break
			}
		}
	}

	for _, entry := range aliases {
		if FindPhrase(cleaned, entry.Alias) >= 0 {
			record(strings.ToLower(entry.Canonical), entry.Alias)
		}
	}

	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return Result{Skills: out, Evidence: evidence}
}

// firstSnippet locates variant in the original text (case-insensitively, on
// word boundaries) and returns a trimmed window of surrounding context with
// the original casing, or "" when the variant only matched after whitespace
// collapsing.
func firstSnippet(original, variant string) string {
	if original == "" || variant == "" {
		return ""
	}
	lc := LowerASCII(original)
	i := FindPhrase(lc, strings.ToLower(variant))
	if i < 0 {
		return ""
	}
	lo := i - snippetWindow
	if lo < 0 {
		lo = 0
	}
	hi := i + len(variant) + snippetWindow
	if hi > len(original) {
		hi = len(original)
	}
	// Keep the window on rune boundaries.
	for lo > 0 && original[lo]&0xC0 == 0x80 {
		lo--
	}
	for hi < len(original) && original[hi]&0xC0 == 0x80 {
		hi++
	}
	return strings.TrimSpace(original[lo:hi])
}
