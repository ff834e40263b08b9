package types

import (
	"time"

	"github.com/google/uuid"
)

// Report is the full output of one pipeline run: both extractions, the
// gap analysis, and the ATS evaluation, assembled into a single value
// that serializes to JSON without loss.
type Report struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ResumeSkills []ExtractedSkill `json:"resume_skills"`
	JDSkills     []ExtractedSkill `json:"jd_skills"`

	Gap *GapAnalysisResult `json:"gap"`
	ATS *ATSResult         `json:"ats,omitempty"`
}

// Validate checks every nested component of the report.
func (r *Report) Validate() error {
	for i := range r.ResumeSkills {
		if err := r.ResumeSkills[i].Validate(); err != nil {
			return err
		}
	}
	for i := range r.JDSkills {
		if err := r.JDSkills[i].Validate(); err != nil {
			return err
		}
	}
	if r.Gap != nil {
		if err := r.Gap.Validate(); err != nil {
			return err
		}
	}
	if r.ATS != nil {
		if err := r.ATS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
