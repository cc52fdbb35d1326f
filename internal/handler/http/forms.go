package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/utils"
	"github.com/harborlight/intake-server/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// parseListParams reads the page/limit query parameters. Anything
// non-numeric or out of range falls back to the defaults; limit is capped.
func parseListParams(r *http.Request) (page, limit int) {
	page = defaultPage
	limit = defaultLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// parseIDParam reads the {id} URL parameter as a positive int64.
func parseIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badRequest(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.Response{Success: false, Error: message}, http.StatusBadRequest)
}

func (h *Handler) writeSubmitted(w http.ResponseWriter, message, idKey string, id int64) {
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: message,
		Data:    map[string]int64{idKey: id},
	}, http.StatusCreated)
}

// masterData returns the handler serving the dropdown/checkbox option lists
// of one form. The {field} URL parameter selects the payload field whose
// options are requested.
func (h *Handler) masterData(form string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field := chi.URLParam(r, "field")

		options, err := h.services.MasterData.Options(r.Context(), form, field)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("form", form).Str("field", field).Msg("master data lookup failed")
			h.writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.Response{Success: true, Data: options}, http.StatusOK)
	}
}

// ---------------------------------------------------------------------------
// Referrals
// ---------------------------------------------------------------------------

func (h *Handler) submitReferral(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var referral models.Referral
	if err := json.NewDecoder(r.Body).Decode(&referral); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		badRequest(w, "invalid JSON was passed")
		return
	}

	id, err := h.services.Referrals.Submit(r.Context(), referral)
	if err != nil {
		log.Err(err).Msg("referral submission failed")
		h.writeError(w, r, err)
		return
	}

	h.writeSubmitted(w, "Referral submitted successfully", "referralId", id)
}

func (h *Handler) listReferrals(w http.ResponseWriter, r *http.Request) {
	page, limit := parseListParams(r)

	referrals, pagination, err := h.services.Referrals.List(r.Context(), page, limit)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing referrals failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{Success: true, Data: referrals, Pagination: pagination}, http.StatusOK)
}

func (h *Handler) getReferral(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		badRequest(w, "invalid submission id")
		return
	}

	referral, err := h.services.Referrals.Get(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("fetching referral failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Data: referral}, http.StatusOK)
}

// ---------------------------------------------------------------------------
// Encounters
// ---------------------------------------------------------------------------

func (h *Handler) submitEncounter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var encounter models.Encounter
	if err := json.NewDecoder(r.Body).Decode(&encounter); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		badRequest(w, "invalid JSON was passed")
		return
	}

	id, err := h.services.Encounters.Submit(r.Context(), encounter)
	if err != nil {
		log.Err(err).Msg("encounter submission failed")
		h.writeError(w, r, err)
		return
	}

	h.writeSubmitted(w, "Encounter submitted successfully", "encounterId", id)
}

func (h *Handler) listEncounters(w http.ResponseWriter, r *http.Request) {
	page, limit := parseListParams(r)

	encounters, pagination, err := h.services.Encounters.List(r.Context(), page, limit)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing encounters failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{Success: true, Data: encounters, Pagination: pagination}, http.StatusOK)
}

func (h *Handler) getEncounter(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		badRequest(w, "invalid submission id")
		return
	}

	encounter, err := h.services.Encounters.Get(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("fetching encounter failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Data: encounter}, http.StatusOK)
}

// ---------------------------------------------------------------------------
// SNAP assessments
// ---------------------------------------------------------------------------

func (h *Handler) submitSnapAssessment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var assessment models.SnapAssessment
	if err := json.NewDecoder(r.Body).Decode(&assessment); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		badRequest(w, "invalid JSON was passed")
		return
	}

	id, err := h.services.SnapAssessments.Submit(r.Context(), assessment)
	if err != nil {
		log.Err(err).Msg("snap assessment submission failed")
		h.writeError(w, r, err)
		return
	}

	h.writeSubmitted(w, "SNAP assessment submitted successfully", "assessmentId", id)
}

func (h *Handler) listSnapAssessments(w http.ResponseWriter, r *http.Request) {
	page, limit := parseListParams(r)

	assessments, pagination, err := h.services.SnapAssessments.List(r.Context(), page, limit)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing snap assessments failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{Success: true, Data: assessments, Pagination: pagination}, http.StatusOK)
}

func (h *Handler) getSnapAssessment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		badRequest(w, "invalid submission id")
		return
	}

	assessment, err := h.services.SnapAssessments.Get(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("fetching snap assessment failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Data: assessment}, http.StatusOK)
}

// ---------------------------------------------------------------------------
// Discharge summaries
// ---------------------------------------------------------------------------

func (h *Handler) submitDischargeSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var summary models.DischargeSummary
	if err := json.NewDecoder(r.Body).Decode(&summary); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		badRequest(w, "invalid JSON was passed")
		return
	}

	id, err := h.services.DischargeSummaries.Submit(r.Context(), summary)
	if err != nil {
		log.Err(err).Msg("discharge summary submission failed")
		h.writeError(w, r, err)
		return
	}

	h.writeSubmitted(w, "Discharge summary submitted successfully", "summaryId", id)
}

func (h *Handler) listDischargeSummaries(w http.ResponseWriter, r *http.Request) {
	page, limit := parseListParams(r)

	summaries, pagination, err := h.services.DischargeSummaries.List(r.Context(), page, limit)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing discharge summaries failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{Success: true, Data: summaries, Pagination: pagination}, http.StatusOK)
}

func (h *Handler) getDischargeSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		badRequest(w, "invalid submission id")
		return
	}

	summary, err := h.services.DischargeSummaries.Get(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("fetching discharge summary failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Data: summary}, http.StatusOK)
}

// ---------------------------------------------------------------------------
// WRAP plans
// ---------------------------------------------------------------------------

func (h *Handler) submitWrapPlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var plan models.WrapPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		badRequest(w, "invalid JSON was passed")
		return
	}

	id, err := h.services.WrapPlans.Submit(r.Context(), plan)
	if err != nil {
		log.Err(err).Msg("wrap plan submission failed")
		h.writeError(w, r, err)
		return
	}

	h.writeSubmitted(w, "WRAP plan submitted successfully", "planId", id)
}

func (h *Handler) listWrapPlans(w http.ResponseWriter, r *http.Request) {
	page, limit := parseListParams(r)

	plans, pagination, err := h.services.WrapPlans.List(r.Context(), page, limit)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing wrap plans failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{Success: true, Data: plans, Pagination: pagination}, http.StatusOK)
}

func (h *Handler) getWrapPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		badRequest(w, "invalid submission id")
		return
	}

	plan, err := h.services.WrapPlans.Get(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("fetching wrap plan failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Data: plan}, http.StatusOK)
}

// ---------------------------------------------------------------------------
// Handbook acknowledgements
// ---------------------------------------------------------------------------

func (h *Handler) submitHandbookAcknowledgement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var ack models.HandbookAcknowledgement
	if err := json.NewDecoder(r.Body).Decode(&ack); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		badRequest(w, "invalid JSON was passed")
		return
	}

	id, err := h.services.Handbook.Submit(r.Context(), ack)
	if err != nil {
		log.Err(err).Msg("handbook acknowledgement submission failed")
		h.writeError(w, r, err)
		return
	}

	h.writeSubmitted(w, "Handbook acknowledgement submitted successfully", "acknowledgementId", id)
}

func (h *Handler) listHandbookAcknowledgements(w http.ResponseWriter, r *http.Request) {
	page, limit := parseListParams(r)

	acks, pagination, err := h.services.Handbook.List(r.Context(), page, limit)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing handbook acknowledgements failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{Success: true, Data: acks, Pagination: pagination}, http.StatusOK)
}

func (h *Handler) getHandbookAcknowledgement(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		badRequest(w, "invalid submission id")
		return
	}

	ack, err := h.services.Handbook.Get(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("fetching handbook acknowledgement failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Data: ack}, http.StatusOK)
}
