// Package sections segments resume text into labeled contiguous spans based
// on heading-line detection.
package sections

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
)

// Section labels. Every span carries exactly one of these.
const (
	LabelExperience     = "experience"
	LabelProjects       = "projects"
	LabelSkills         = "skills"
	LabelEducation      = "education"
	LabelCertifications = "certifications"
	LabelSummary        = "summary"
	LabelOther          = "other"
)

// Span is a contiguous labeled region of the resume text. The spans returned
// by Segment cover the whole text with no gaps or overlaps, ordered by Start.
type Span struct {
	Label string
	Start int
	End   int
}

// headingPatterns match known section headings at line start,
// case-insensitively over the lowercased text.
var headingPatterns = []struct {
	label string
	re    *regexp.Regexp
}{
	{LabelExperience, regexp.MustCompile(`(?m)^[ \t]*(work\s+experience|professional\s+experience|experience|employment|work\s+history)\b`)},
	{LabelProjects, regexp.MustCompile(`(?m)^[ \t]*(projects|personal\s+projects)\b`)},
	{LabelSkills, regexp.MustCompile(`(?m)^[ \t]*(skills|technical\s+skills|technologies|tools)\b`)},
	{LabelEducation, regexp.MustCompile(`(?m)^[ \t]*(education|academics)\b`)},
	{LabelCertifications, regexp.MustCompile(`(?m)^[ \t]*(certifications|certificates|licenses)\b`)},
	{LabelSummary, regexp.MustCompile(`(?m)^[ \t]*(summary|profile|objective)\b`)},
}

// Segment splits resume text into labeled spans. Regions before the first
// heading, and any region a heading match does not claim, become "other"
// spans so that coverage is exhaustive. Text without any headings is a
// single "other" span.
func Segment(text string) []Span {
	lc := extraction.LowerASCII(text)

	type hit struct {
		start int
		label string
	}
	var hits []hit
	for _, hp := range headingPatterns {
		for _, loc := range hp.re.FindAllStringIndex(lc, -1) {
			hits = append(hits, hit{start: loc[0], label: hp.label})
		}
	}
	if len(hits) == 0 {
		return []Span{{Label: LabelOther, Start: 0, End: len(text)}}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	var spans []Span
	prevEnd := 0
	for i, h := range hits {
		end := len(text)
		if i+1 < len(hits) {
			end = hits[i+1].start
		}
		if h.start > prevEnd {
			spans = append(spans, Span{Label: LabelOther, Start: prevEnd, End: h.start})
		}
		spans = append(spans, Span{Label: h.label, Start: h.start, End: end})
		prevEnd = end
	}
	if prevEnd < len(text) {
		spans = append(spans, Span{Label: LabelOther, Start: prevEnd, End: len(text)})
	}
	return spans
}

// At returns the label of the span containing the given byte offset, or
// "other" when the offset falls outside every span.
func At(spans []Span, offset int) string {
	for _, sp := range spans {
		if sp.Start <= offset && offset < sp.End {
			return sp.Label
		}
	}
	return LabelOther
}

// Locate returns the label of the section containing the earliest
// word-boundary occurrence of any variant in the text, or "other" when no
// variant occurs at all.
func Locate(text string, spans []Span, variants []string) string {
	if text == "" {
		return LabelOther
	}
	lc := extraction.LowerASCII(text)
	first := -1
	for _, v := range variants {
		if i := extraction.FindPhrase(lc, strings.ToLower(v)); i >= 0 {
			if first < 0 || i < first {
				first = i
			}
		}
	}
	if first < 0 {
		return LabelOther
	}
	return At(spans, first)
}
