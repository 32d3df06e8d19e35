package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "windows line endings",
			input:    "Experience\r\nbuilt APIs\r\n",
			expected: "Experience\nbuilt APIs",
		},
		{
			name:     "old mac line endings",
			input:    "Experience\rbuilt APIs",
			expected: "Experience\nbuilt APIs",
		},
		{
			name:     "collapses in-line whitespace",
			input:    "Senior   Software\tEngineer",
			expected: "Senior Software Engineer",
		},
		{
			name:     "strips trailing whitespace per line",
			input:    "Experience   \nbuilt APIs  ",
			expected: "Experience\nbuilt APIs",
		},
		{
			name:     "shrinks blank line runs to two",
			input:    "Experience\n\n\n\n\nEducation",
			expected: "Experience\n\nEducation",
		},
		{
			name:     "preserves indentation",
			input:    "Experience\n  - built   APIs",
			expected: "Experience\n  - built APIs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanText_KeepsHeadingsAtLineStart(t *testing.T) {
	input := "John Smith\r\n\r\nExperience:\r\n  Built services  in Go\r\n"
	cleaned := CleanText(input)

	assert.Contains(t, cleaned, "\nExperience:\n")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "abc", Truncate("abc", 0), "zero max disables truncation")
}

func TestTruncate_RuneBoundary(t *testing.T) {
	// "é" is two bytes; cutting mid-rune must back off to the boundary
	text := "aé"
	got := Truncate(text, 2)

	assert.Equal(t, "a", got)
	assert.True(t, len(got) <= 2)
}

func TestTruncate_LongText(t *testing.T) {
	long := strings.Repeat("x", 15000)
	assert.Len(t, Truncate(long, 10000), 10000)
}
