package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*(?:years|year|yrs)`)

// ExtractYears returns the largest integer preceding a "year(s)/yrs"
// mention (an optional trailing "+" is accepted), and whether any mention
// was found at all.
func ExtractYears(text string) (int, bool) {
	t := strings.ToLower(text)
	max := 0
	found := false
	for _, m := range yearsPattern.FindAllStringSubmatch(t, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if !found || n > max {
			max = n
		}
		found = true
	}
	return max, found
}

// YearsScore compares the resume's years of experience against the job
// description's requirement. No requirement scores 1.0; a requirement the
// resume never mentions scores 0.0; otherwise the ratio, capped at 1.0 and
// floored at 0.
func YearsScore(resumeText, jdText string) float64 {
	need, jdHas := ExtractYears(jdText)
	if !jdHas {
		return 1.0
	}
	have, resumeHas := ExtractYears(resumeText)
	if !resumeHas {
		return 0.0
	}
	if have >= need {
		return 1.0
	}
	denom := need
	if denom < 1 {
		denom = 1
	}
	score := float64(have) / float64(denom)
	if score < 0 {
		return 0.0
	}
	return score
}
