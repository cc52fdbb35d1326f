package models

import "time"

// SnapAssessment is one submitted SNAP (Strengths, Needs, Abilities,
// Preferences) assessment form.
type SnapAssessment struct {
	AssessmentID   int64  `json:"id"`
	ClientName     string `json:"clientName"`
	AssessmentDate string `json:"assessmentDate"`
	AssessorName   string `json:"assessorName"`
	Strengths      string `json:"strengths,omitempty"`
	Needs          string `json:"needs,omitempty"`
	Abilities      string `json:"abilities,omitempty"`
	Preferences    string `json:"preferences,omitempty"`

	// SupportAreas is the multi-select of areas where support is requested.
	// May be empty; order is preserved.
	SupportAreas []string `json:"supportAreas"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the SnapAssessment model.
func (s SnapAssessment) TableName() string {
	return "snap_assessments"
}
