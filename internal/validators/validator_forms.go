package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/harborlight/intake-server/models"
)

// FormValidator enforces the per-form required-field contracts. One instance
// serves every form type; [FormValidator.Validate] dispatches on the payload
// type.
type FormValidator struct{}

// NewFormValidator constructs a [FormValidator].
func NewFormValidator() *FormValidator {
	return &FormValidator{}
}

// Validate implements [Validator] for the six intake form payload types.
// Unknown payload types yield [ErrUnsupportedType].
func (v *FormValidator) Validate(_ context.Context, value any) error {
	switch payload := value.(type) {
	case models.Referral:
		return v.validateReferral(payload)
	case models.Encounter:
		return v.validateEncounter(payload)
	case models.SnapAssessment:
		return v.validateSnapAssessment(payload)
	case models.DischargeSummary:
		return v.validateDischargeSummary(payload)
	case models.WrapPlan:
		return v.validateWrapPlan(payload)
	case models.HandbookAcknowledgement:
		return v.validateHandbookAcknowledgement(payload)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

// check is one field-presence rule. Rules are evaluated in declaration
// order; the first failing rule names its field and stops validation.
type check struct {
	field string
	ok    bool
}

func scalar(field, value string) check {
	return check{field: field, ok: strings.TrimSpace(value) != ""}
}

func group(field string, size int) check {
	return check{field: field, ok: size > 0}
}

func positive(field string, n int) check {
	return check{field: field, ok: n > 0}
}

func firstMissing(checks ...check) error {
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, c.field)
		}
	}

	return nil
}

func entryField(collection string, index int, name string) string {
	return fmt.Sprintf("%s[%d].%s", collection, index, name)
}

func (v *FormValidator) validateReferral(r models.Referral) error {
	return firstMissing(
		scalar("referralDate", r.ReferralDate),
		scalar("name", r.Name),
		scalar("birthDate", r.BirthDate),
		scalar("gender", r.Gender),
		scalar("race", r.Race),
		scalar("referredByName", r.ReferredByName),
		group("services", len(r.Services)),
	)
}

// validateEncounter checks the parent scalars, then each service log row in
// payload order. Service logs may be absent entirely, but a present row must
// carry its date, time range, and a positive unit count.
func (v *FormValidator) validateEncounter(e models.Encounter) error {
	if err := firstMissing(
		scalar("clientName", e.ClientName),
		scalar("staffName", e.StaffName),
		scalar("encounterDate", e.EncounterDate),
	); err != nil {
		return err
	}

	for i, entry := range e.ServiceLogs {
		if err := firstMissing(
			scalar(entryField("serviceLogs", i, "entryDate"), entry.EntryDate),
			scalar(entryField("serviceLogs", i, "startTime"), entry.StartTime),
			scalar(entryField("serviceLogs", i, "endTime"), entry.EndTime),
			positive(entryField("serviceLogs", i, "units"), entry.Units),
		); err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validateSnapAssessment(s models.SnapAssessment) error {
	return firstMissing(
		scalar("clientName", s.ClientName),
		scalar("assessmentDate", s.AssessmentDate),
		scalar("assessorName", s.AssessorName),
	)
}

func (v *FormValidator) validateDischargeSummary(d models.DischargeSummary) error {
	return firstMissing(
		scalar("clientName", d.ClientName),
		scalar("admissionDate", d.AdmissionDate),
		scalar("dischargeDate", d.DischargeDate),
		scalar("dischargeReason", d.DischargeReason),
	)
}

// validateWrapPlan requires at least one wellness tool; supporters are
// optional as a collection but a present supporter row must carry a name.
func (v *FormValidator) validateWrapPlan(p models.WrapPlan) error {
	if err := firstMissing(
		scalar("clientName", p.ClientName),
		scalar("planDate", p.PlanDate),
		group("wellnessTools", len(p.WellnessTools)),
	); err != nil {
		return err
	}

	for i, supporter := range p.Supporters {
		if err := firstMissing(
			scalar(entryField("supporters", i, "name"), supporter.Name),
		); err != nil {
			return err
		}
	}

	return nil
}

func (v *FormValidator) validateHandbookAcknowledgement(h models.HandbookAcknowledgement) error {
	return firstMissing(
		scalar("clientName", h.ClientName),
		scalar("acknowledgementDate", h.AcknowledgementDate),
		scalar("clientSignature", h.ClientSignature),
		group("sections", len(h.Sections)),
	)
}
