package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/utils"
	"github.com/harborlight/intake-server/models"
)

// knownForms names every form resource the public API serves.
var knownForms = map[string]struct{}{
	"referrals":                 {},
	"encounters":                {},
	"snap-assessments":          {},
	"discharge-summaries":       {},
	"wrap-plans":                {},
	"handbook-acknowledgements": {},
}

type httpIntakeGateway struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPIntakeGateway constructs an HTTP/REST implementation of
// [IntakeGateway]. It normalises and validates the base URL from address and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPIntakeGateway(address string, requestTimeout time.Duration, logger *logger.Logger) (IntakeGateway, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpIntakeGateway{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func checkForm(form string) error {
	if _, ok := knownForms[form]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownForm, form)
	}
	return nil
}

// submitResult is the data object of a successful submission response,
// carrying exactly one entry ("referralId": 42, "planId": 7, ...).
type submitResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    map[string]int64 `json:"data"`
}

// Submit implements [IntakeGateway]. It POSTs payload to /api/<form> and
// returns the generated identifier from the response envelope.
func (g *httpIntakeGateway) Submit(ctx context.Context, form string, payload json.RawMessage) (int64, error) {
	if err := checkForm(form); err != nil {
		return 0, err
	}

	var result submitResult
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(payload)).
		SetResult(&result).
		Post("/api/" + form)
	if err != nil {
		return 0, fmt.Errorf("submit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	for _, id := range result.Data {
		return id, nil
	}

	return 0, fmt.Errorf("submit response carries no identifier")
}

// listResult keeps list items raw so the gateway serves all form types.
type listResult struct {
	Success    bool              `json:"success"`
	Data       json.RawMessage   `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// List implements [IntakeGateway].
func (g *httpIntakeGateway) List(ctx context.Context, form string, page, limit int) (json.RawMessage, models.Pagination, error) {
	if err := checkForm(form); err != nil {
		return nil, models.Pagination{}, err
	}

	var result listResult
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("/api/" + form)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, models.Pagination{}, err
	}

	return result.Data, result.Pagination, nil
}

type getResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// Get implements [IntakeGateway].
func (g *httpIntakeGateway) Get(ctx context.Context, form string, id int64) (json.RawMessage, error) {
	if err := checkForm(form); err != nil {
		return nil, err
	}

	var result getResult
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/api/%s/%d", form, id))
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data, nil
}

type optionsResult struct {
	Success bool                      `json:"success"`
	Data    []models.MasterDataOption `json:"data"`
}

// Options implements [IntakeGateway].
func (g *httpIntakeGateway) Options(ctx context.Context, form, field string) ([]models.MasterDataOption, error) {
	if err := checkForm(form); err != nil {
		return nil, err
	}

	var result optionsResult
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/api/%s/master-data/%s", form, field))
	if err != nil {
		return nil, fmt.Errorf("options request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// Health implements [IntakeGateway].
func (g *httpIntakeGateway) Health(ctx context.Context) error {
	var status models.HealthStatus
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if !status.Success {
		return fmt.Errorf("%w: %s", ErrServerUnavailable, status.Status)
	}

	return nil
}
