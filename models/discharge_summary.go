package models

import "time"

// DischargeSummary is one submitted discharge summary form.
type DischargeSummary struct {
	SummaryID       int64  `json:"id"`
	ClientName      string `json:"clientName"`
	AdmissionDate   string `json:"admissionDate"`
	DischargeDate   string `json:"dischargeDate"`
	DischargeReason string `json:"dischargeReason"`
	ProgressSummary string `json:"progressSummary,omitempty"`
	AftercarePlan   string `json:"aftercarePlan,omitempty"`

	// Referrals is the multi-select of outbound referrals made at
	// discharge. May be empty; order is preserved.
	Referrals []string `json:"referrals"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the DischargeSummary model.
func (d DischargeSummary) TableName() string {
	return "discharge_summaries"
}
