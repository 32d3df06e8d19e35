package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/scan"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Score a resume against a job description",
	Long:  "Score a resume text file against a job description from a file or URL, writing the full result as JSON to stdout.",
	RunE:  runScan,
}

var (
	scanResumeFile string
	scanJDFile     string
	scanJDURL      string
	scanSkillsFile string
)

func init() {
	scanCmd.Flags().StringVar(&scanResumeFile, "resume", "", "Path to resume text file (required)")
	scanCmd.Flags().StringVar(&scanJDFile, "jd", "", "Path to job description text file")
	scanCmd.Flags().StringVar(&scanJDURL, "jd-url", "", "URL of a job posting to fetch")
	scanCmd.Flags().StringVar(&scanSkillsFile, "skills-file", "", "Path to a JSON skill list (overrides SKILLS_FILE)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	if scanResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}
	if (scanJDFile == "") == (scanJDURL == "") {
		return fmt.Errorf("exactly one of --jd or --jd-url is required")
	}

	resumeBytes, err := os.ReadFile(scanResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	ctx := context.Background()

	var jdText string
	if scanJDFile != "" {
		jdBytes, err := os.ReadFile(scanJDFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jdText = string(jdBytes)
	} else {
		jdText, err = ingestion.IngestFromURL(ctx, scanJDURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	skillsFile := scanSkillsFile
	if skillsFile == "" {
		skillsFile = os.Getenv("SKILLS_FILE")
	}
	voc, err := loadVocabulary(skillsFile)
	if err != nil {
		return err
	}

	result, err := scan.New(voc).Scan(ctx, string(resumeBytes), jdText)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
