package models

import "time"

// Encounter is one submitted encounter form: a client contact with zero or
// more structured service-log lines attached.
type Encounter struct {
	EncounterID   int64  `json:"id"`
	ClientName    string `json:"clientName"`
	StaffName     string `json:"staffName"`
	EncounterDate string `json:"encounterDate"`
	Location      string `json:"location,omitempty"`
	Summary       string `json:"summary,omitempty"`

	// ServiceLogs are the structured repeating entries for this encounter,
	// inserted and read back in payload order.
	ServiceLogs []ServiceLogEntry `json:"serviceLogs"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Encounter model.
func (e Encounter) TableName() string {
	return "encounters"
}

// ServiceLogEntry is one line of an encounter's service log. Dates and times
// are opaque "YYYY-MM-DD" / "HH:MM" strings; Units is a whole count of
// billable units. Signatures are opaque - either a data-URI raster image
// drawn in the browser or a typed name; only presence matters.
type ServiceLogEntry struct {
	EntryDate       string `json:"entryDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Units           int    `json:"units"`
	StaffSignature  string `json:"staffSignature,omitempty"`
	ClientSignature string `json:"clientSignature,omitempty"`
}
