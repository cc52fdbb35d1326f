package models

import "time"

// HandbookAcknowledgement is one submitted client-handbook consent form.
// ClientSignature is required - the form is meaningless unsigned; it is an
// opaque string (data-URI raster or typed name), never inspected.
type HandbookAcknowledgement struct {
	AcknowledgementID   int64  `json:"id"`
	ClientName          string `json:"clientName"`
	AcknowledgementDate string `json:"acknowledgementDate"`
	ClientSignature     string `json:"clientSignature"`
	StaffSignature      string `json:"staffSignature,omitempty"`

	// Sections is the multi-select of handbook sections acknowledged; at
	// least one is required.
	Sections []string `json:"sections"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the HandbookAcknowledgement model.
func (h HandbookAcknowledgement) TableName() string {
	return "handbook_acknowledgements"
}
