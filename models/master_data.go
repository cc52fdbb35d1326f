package models

// MasterDataOption is one value/label pair from a read-only reference table,
// used to populate form dropdowns and checkbox groups. Options are seeded by
// migration and never mutated by form submission.
type MasterDataOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
