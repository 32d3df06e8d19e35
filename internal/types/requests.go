package types

// ScanRequest represents a scan invocation: pre-extracted resume text plus
// the job-description text.
type ScanRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	JDText     string `json:"jd_text" validate:"required"`
}

// SaveScanRequest persists a completed scan to history. Result holds the
// scan result as returned by the scan endpoint.
type SaveScanRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	JDText     string `json:"jd_text" validate:"required"`
	Result     any    `json:"result" validate:"required"`
}

// CreateResumeRequest uploads a resume as pre-extracted plain text. PDF
// decoding is the caller's responsibility.
type CreateResumeRequest struct {
	Filename string `json:"filename" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

// CreateJobRequest creates a job posting from either inline description
// text or a URL to fetch it from.
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description,omitempty" validate:"omitempty,min=20"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
}
