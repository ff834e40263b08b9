package types

import (
	"github.com/go-playground/validator/v10"
)

// A single validator instance caches struct metadata across calls.
var validate = validator.New()

// AnalyzeRequest is the API request for a full gap analysis.
// Both documents arrive as already-cleaned plain text.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
	JDText     string `json:"jd_text" validate:"required,min=1"`

	// Optional per-request overrides; zero means "use configured default".
	ConfidenceThreshold float64 `json:"confidence_threshold,omitempty" validate:"gte=0,lte=1"`
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty" validate:"gte=0,lte=1"`

	IncludeATS bool `json:"include_ats,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}

// ATSRequest is the API request for a standalone ATS compatibility check.
type ATSRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
	JDText     string `json:"jd_text" validate:"required,min=1"`
}

// Validate validates the ATSRequest using the validator.
func (r *ATSRequest) Validate() error {
	return validate.Struct(r)
}

// TokenRequest exchanges the operator API key for a bearer token.
type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// Validate validates the TokenRequest using the validator.
func (r *TokenRequest) Validate() error {
	return validate.Struct(r)
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
