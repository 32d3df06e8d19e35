// Package scan orchestrates the full resume-to-job-description analysis:
// skill extraction, job-description parsing, section segmentation, and score
// composition.
package scan

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/jobdesc"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/sections"
	"github.com/jonathan/resume-screener/internal/vocab"
)

// Result is the structured scan output returned at the API boundary. All
// float fields are rounded to 4 decimal places; list fields hold lowercase
// canonical skill names only.
type Result struct {
	Score        float64 `json:"score"`
	OverlapRatio float64 `json:"overlap_ratio"`

	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	ExtraSkills   []string `json:"extra_skills"`

	JDRequired []string `json:"jd_required"`
	JDOptional []string `json:"jd_optional"`

	MatchedRequired []string `json:"matched_required"`
	MissingRequired []string `json:"missing_required"`
	MatchedOptional []string `json:"matched_optional"`
	MissingOptional []string `json:"missing_optional"`

	Evidence    map[string]string   `json:"evidence"`
	Breakdown   scoring.Breakdown   `json:"breakdown"`
	Diagnostics scoring.Diagnostics `json:"diagnostics"`
}

// Scanner runs scans against a fixed vocabulary. It holds no mutable state
// and is safe for concurrent use.
type Scanner struct {
	vocab  *vocab.Vocabulary
	ex     *extraction.Extractor
	parser *jobdesc.Parser
}

// New creates a Scanner over the given vocabulary. The vocabulary must not
// be mutated after this call.
func New(v *vocab.Vocabulary) *Scanner {
	return &Scanner{
		vocab:  v,
		ex:     extraction.New(v),
		parser: jobdesc.New(v),
	}
}

// Vocabulary returns the scanner's vocabulary.
func (s *Scanner) Vocabulary() *vocab.Vocabulary {
	return s.vocab
}

// Scan analyzes resume text against job-description text and returns the
// composite match result. Resume extraction and job-description parsing run
// concurrently; both inputs degrade gracefully, so the only error source is
// context cancellation.
func (s *Scanner) Scan(ctx context.Context, resumeText, jdText string) (*Result, error) {
	var (
		resumeRes extraction.Result
		required  map[string]bool
		optional  map[string]bool
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resumeRes = s.ex.Extract(resumeText)
		return ctx.Err()
	})
	g.Go(func() error {
		required, optional = s.parser.Parse(jdText)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(required) == 0 && len(optional) == 0 {
		return emptyResult(len(resumeRes.Skills)), nil
	}

	spans := sections.Segment(resumeText)
	titleScore := scoring.TitleScore(s.vocab, resumeText, jdText)
	yearsScore := scoring.YearsScore(resumeText, jdText)

	outcome := scoring.Compose(s.vocab, scoring.Input{
		ResumeText:   resumeText,
		ResumeSkills: resumeRes.Set(),
		Evidence:     resumeRes.Evidence,
		Required:     required,
		Optional:     optional,
		Spans:        spans,
		TitleScore:   titleScore,
		YearsScore:   yearsScore,
	})

	return roundResult(outcome), nil
}

// emptyResult is the degenerate outcome for a job description that yields
// no skill universe: zero score, every list empty, no division performed.
func emptyResult(resumeDetected int) *Result {
	return &Result{
		MatchedSkills:   []string{},
		MissingSkills:   []string{},
		ExtraSkills:     []string{},
		JDRequired:      []string{},
		JDOptional:      []string{},
		MatchedRequired: []string{},
		MissingRequired: []string{},
		MatchedOptional: []string{},
		MissingOptional: []string{},
		Evidence:        map[string]string{},
		Diagnostics: scoring.Diagnostics{
			ResumeDetected: resumeDetected,
		},
	}
}

// roundResult converts a full-precision outcome into the API result,
// rounding every float to 4 decimal places.
func roundResult(o *scoring.Outcome) *Result {
	return &Result{
		Score:           round4(o.Score),
		OverlapRatio:    round4(o.OverlapRatio),
		MatchedSkills:   emptyIfNil(o.MatchedSkills),
		MissingSkills:   emptyIfNil(o.MissingSkills),
		ExtraSkills:     emptyIfNil(o.ExtraSkills),
		JDRequired:      emptyIfNil(o.JDRequired),
		JDOptional:      emptyIfNil(o.JDOptional),
		MatchedRequired: emptyIfNil(o.MatchedRequired),
		MissingRequired: emptyIfNil(o.MissingRequired),
		MatchedOptional: emptyIfNil(o.MatchedOptional),
		MissingOptional: emptyIfNil(o.MissingOptional),
		Evidence:        o.Evidence,
		Breakdown: scoring.Breakdown{
			RequiredCoverage:       round4(o.Breakdown.RequiredCoverage),
			OptionalCoverage:       round4(o.Breakdown.OptionalCoverage),
			Distribution:           round4(o.Breakdown.Distribution),
			Title:                  round4(o.Breakdown.Title),
			Years:                  round4(o.Breakdown.Years),
			PenaltyMissingRequired: round4(o.Breakdown.PenaltyMissingRequired),
		},
		Diagnostics: scoring.Diagnostics{
			JDTotal:           o.Diagnostics.JDTotal,
			ResumeDetected:    o.Diagnostics.ResumeDetected,
			Matched:           o.Diagnostics.Matched,
			OverlapUnion:      round4(o.Diagnostics.OverlapUnion),
			BaseBeforePenalty: round4(o.Diagnostics.BaseBeforePenalty),
			SkillsCount:       o.Diagnostics.SkillsCount,
		},
	}
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
