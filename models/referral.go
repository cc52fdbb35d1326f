package models

import "time"

// Referral is one submitted referral form: who is being referred into the
// program, by whom, and which services are requested.
//
// A referral is append-only. The server assigns ReferralID and CreatedAt on
// insert; everything else arrives verbatim from the client payload. Dates are
// carried as opaque "YYYY-MM-DD" strings - the platform never interprets
// them beyond presence.
type Referral struct {
	// ReferralID is the generated identifier of the parent row.
	ReferralID int64 `json:"id"`

	// ReferralDate is the date the referral was made (required).
	ReferralDate string `json:"referralDate"`

	// Name is the full name of the person being referred (required).
	Name string `json:"name"`

	// BirthDate is the referred person's date of birth (required).
	BirthDate string `json:"birthDate"`

	// Gender and Race are master-data values selected from dropdowns
	// (both required).
	Gender string `json:"gender"`
	Race   string `json:"race"`

	// ReferredByName identifies the referring party (required).
	ReferredByName string `json:"referredByName"`

	// Optional contact and context fields. Empty strings are normalized to
	// NULL at the persistence layer.
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Insurance string `json:"insurance,omitempty"`
	Notes     string `json:"notes,omitempty"`

	// Services is the ordered list of requested service tokens - one child
	// row each, at least one required. Order is preserved on read-back.
	Services []string `json:"services"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Referral model.
func (r Referral) TableName() string {
	return "referrals"
}
