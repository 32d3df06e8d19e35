package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/sections"
	"github.com/jonathan/resume-screener/internal/vocab"
)

// Input carries everything the composer needs: the analysis outputs of the
// extractor, the job-description parser, and the section segmenter.
type Input struct {
	ResumeText   string
	ResumeSkills map[string]bool
	Evidence     map[string]string
	Required     map[string]bool
	Optional     map[string]bool
	Spans        []sections.Span
	TitleScore   float64
	YearsScore   float64
}

// Breakdown holds the five sub-scores plus the missing-required penalty.
// All values are in [0,1] except the penalty, which is in [0, 0.50].
type Breakdown struct {
	RequiredCoverage       float64 `json:"required_coverage"`
	OptionalCoverage       float64 `json:"optional_coverage"`
	Distribution           float64 `json:"distribution"`
	Title                  float64 `json:"title"`
	Years                  float64 `json:"years"`
	PenaltyMissingRequired float64 `json:"penalty_missing_required"`
}

// Diagnostics carries counters useful for debugging a score.
type Diagnostics struct {
	JDTotal           int     `json:"jd_total"`
	ResumeDetected    int     `json:"resume_detected"`
	Matched           int     `json:"matched"`
	OverlapUnion      float64 `json:"overlap_union"`
	BaseBeforePenalty float64 `json:"base_before_penalty"`
	SkillsCount       int     `json:"skills_count"`
}

// Outcome is the full-precision composition result. Rounding to the output
// precision happens at the API boundary, not here.
type Outcome struct {
	Score        float64
	OverlapRatio float64

	MatchedSkills []string
	MissingSkills []string
	ExtraSkills   []string

	JDRequired []string
	JDOptional []string

	MatchedRequired []string
	MissingRequired []string
	MatchedOptional []string
	MissingOptional []string

	Evidence    map[string]string
	Breakdown   Breakdown
	Diagnostics Diagnostics
}

// Compose combines coverage, distribution, title, and years into the final
// weighted score, applies the missing-required penalty, and applies the
// zero-floor override for degenerate near-zero overlap. The caller must
// ensure the job universe (required ∪ optional) is non-empty; the degenerate
// empty-universe case is handled before composition.
func Compose(v *vocab.Vocabulary, in Input) *Outcome {
	union := make(map[string]bool, len(in.Required)+len(in.Optional))
	for s := range in.Required {
		union[s] = true
	}
	for s := range in.Optional {
		union[s] = true
	}

	matchedReq := intersect(in.ResumeSkills, in.Required)
	missingReq := subtract(in.Required, in.ResumeSkills)
	matchedOpt := intersect(in.ResumeSkills, in.Optional)
	missingOpt := subtract(in.Optional, in.ResumeSkills)
	matchedUnion := intersect(in.ResumeSkills, union)
	missingUnion := subtract(union, in.ResumeSkills)
	extraUnion := subtract(in.ResumeSkills, union)

	overlap := float64(len(matchedUnion)) / float64(max1(len(union)))

	distrib := distributionScore(v, in, union)

	reqCov := 1.0
	if len(in.Required) > 0 {
		reqCov = float64(len(matchedReq)) / float64(max1(len(in.Required)))
	}
	optCov := 1.0
	if len(in.Optional) > 0 {
		optCov = float64(len(matchedOpt)) / float64(max1(len(in.Optional)))
	}

	base := vocab.WeightRequired*reqCov +
		vocab.WeightOptional*optCov +
		vocab.WeightDistribution*distrib +
		vocab.WeightTitle*in.TitleScore +
		vocab.WeightYears*in.YearsScore

	penalty := vocab.MissingRequiredPenalty * float64(len(missingReq))
	if penalty > vocab.MaxPenalty {
		penalty = vocab.MaxPenalty
	}

	var final float64
	if len(matchedUnion) == 0 && overlap < vocab.ZeroFloorThreshold {
		final = 0.0
	} else {
		final = clamp01(base - penalty)
	}

	evidence := make(map[string]string, len(matchedUnion))
	for _, sk := range matchedUnion {
		if snip, ok := in.Evidence[sk]; ok && snip != "" {
			evidence[sk] = snip
		}
	}

	return &Outcome{
		Score:           final,
		OverlapRatio:    overlap,
		MatchedSkills:   matchedUnion,
		MissingSkills:   missingUnion,
		ExtraSkills:     extraUnion,
		JDRequired:      sortedKeys(in.Required),
		JDOptional:      sortedKeys(in.Optional),
		MatchedRequired: matchedReq,
		MissingRequired: missingReq,
		MatchedOptional: matchedOpt,
		MissingOptional: missingOpt,
		Evidence:        evidence,
		Breakdown: Breakdown{
			RequiredCoverage:       reqCov,
			OptionalCoverage:       optCov,
			Distribution:           distrib,
			Title:                  in.TitleScore,
			Years:                  in.YearsScore,
			PenaltyMissingRequired: penalty,
		},
		Diagnostics: Diagnostics{
			JDTotal:           len(union),
			ResumeDetected:    len(in.ResumeSkills),
			Matched:           len(matchedUnion),
			OverlapUnion:      overlap,
			BaseBeforePenalty: base,
			SkillsCount:       len(v.Skills),
		},
	}
}

// distributionScore measures how substantively each job skill is backed by
// the resume: every occurrence contributes its section's weight, summed per
// skill and capped, with required skills counting double the weight of
// optional ones.
func distributionScore(v *vocab.Vocabulary, in Input, union map[string]bool) float64 {
	lc := extraction.LowerASCII(in.ResumeText)
	raw, denom := 0.0, 0.0

	for _, sk := range sortedKeys(union) {
		w := 0.5
		if in.Required[sk] {
			w = 1.0
		}
		denom += vocab.OccurrenceCap * w

		occ := 0.0
		for _, variant := range v.Variants(sk) {
			for _, idx := range extraction.FindPhraseAll(lc, strings.ToLower(variant)) {
				occ += v.SectionWeight(sections.At(in.Spans, idx))
				if occ >= vocab.OccurrenceCap {
					break
				}
			}
			if occ >= vocab.OccurrenceCap {
				break
			}
		}
		if occ > vocab.OccurrenceCap {
			occ = vocab.OccurrenceCap
		}
		raw += w * occ
	}

	if denom <= 0 {
		return 1.0
	}
	return raw / denom
}

func intersect(a, b map[string]bool) []string {
	var out []string
	for s := range a {
		if b[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func subtract(a, b map[string]bool) []string {
	var out []string
	for s := range a {
		if !b[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
