package models

import "time"

// WrapPlan is one submitted WRAP (Wellness Recovery Action Plan) form. It is
// the only form carrying two distinct child collections: a multi-select of
// wellness tools and a structured list of supporters.
type WrapPlan struct {
	PlanID     int64  `json:"id"`
	ClientName string `json:"clientName"`
	PlanDate   string `json:"planDate"`
	DailyPlan  string `json:"dailyPlan,omitempty"`
	CrisisPlan string `json:"crisisPlan,omitempty"`

	// WellnessTools is the multi-select of chosen wellness tools; at least
	// one is required.
	WellnessTools []string `json:"wellnessTools"`

	// Supporters are the structured repeating entries naming the people in
	// the client's support network. Name is required per row.
	Supporters []Supporter `json:"supporters"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the WrapPlan model.
func (w WrapPlan) TableName() string {
	return "wrap_plans"
}

// Supporter is one row of a WRAP plan's support network.
type Supporter struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}
