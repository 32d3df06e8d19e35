package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillCoverage(t *testing.T) {
	tests := []struct {
		name         string
		jobSkills    []string
		resumeSkills []string
		wantMatched  []string
		wantMissing  []string
	}{
		{
			name:         "full coverage",
			jobSkills:    []string{"python", "docker"},
			resumeSkills: []string{"docker", "python", "react"},
			wantMatched:  []string{"python", "docker"},
			wantMissing:  []string{},
		},
		{
			name:         "partial coverage",
			jobSkills:    []string{"python", "docker", "kubernetes"},
			resumeSkills: []string{"python"},
			wantMatched:  []string{"python"},
			wantMissing:  []string{"docker", "kubernetes"},
		},
		{
			name:         "no job skills",
			jobSkills:    nil,
			resumeSkills: []string{"python"},
			wantMatched:  []string{},
			wantMissing:  []string{},
		},
		{
			name:         "empty resume",
			jobSkills:    []string{"python"},
			resumeSkills: nil,
			wantMatched:  []string{},
			wantMissing:  []string{"python"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, missing := skillCoverage(tt.jobSkills, tt.resumeSkills)
			assert.Equal(t, tt.wantMatched, matched)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}
