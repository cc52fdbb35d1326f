// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harborlight Recovery Services

package service

import (
	"context"

	"github.com/harborlight/intake-server/models"
)

// ReferralService accepts, lists, and retrieves referral submissions.
type ReferralService interface {
	Submit(ctx context.Context, referral models.Referral) (int64, error)
	List(ctx context.Context, page, limit int) ([]models.Referral, models.Pagination, error)
	Get(ctx context.Context, id int64) (models.Referral, error)
}

// EncounterService accepts, lists, and retrieves encounter notes with their
// service log entries.
type EncounterService interface {
	Submit(ctx context.Context, encounter models.Encounter) (int64, error)
	List(ctx context.Context, page, limit int) ([]models.Encounter, models.Pagination, error)
	Get(ctx context.Context, id int64) (models.Encounter, error)
}

// SnapAssessmentService accepts, lists, and retrieves SNAP assessments.
type SnapAssessmentService interface {
	Submit(ctx context.Context, assessment models.SnapAssessment) (int64, error)
	List(ctx context.Context, page, limit int) ([]models.SnapAssessment, models.Pagination, error)
	Get(ctx context.Context, id int64) (models.SnapAssessment, error)
}

// DischargeSummaryService accepts, lists, and retrieves discharge summaries.
type DischargeSummaryService interface {
	Submit(ctx context.Context, summary models.DischargeSummary) (int64, error)
	List(ctx context.Context, page, limit int) ([]models.DischargeSummary, models.Pagination, error)
	Get(ctx context.Context, id int64) (models.DischargeSummary, error)
}

// WrapPlanService accepts, lists, and retrieves WRAP plans.
type WrapPlanService interface {
	Submit(ctx context.Context, plan models.WrapPlan) (int64, error)
	List(ctx context.Context, page, limit int) ([]models.WrapPlan, models.Pagination, error)
	Get(ctx context.Context, id int64) (models.WrapPlan, error)
}

// HandbookService accepts, lists, and retrieves handbook acknowledgements.
type HandbookService interface {
	Submit(ctx context.Context, ack models.HandbookAcknowledgement) (int64, error)
	List(ctx context.Context, page, limit int) ([]models.HandbookAcknowledgement, models.Pagination, error)
	Get(ctx context.Context, id int64) (models.HandbookAcknowledgement, error)
}

// MasterDataService resolves a form's selectable field to its option list.
type MasterDataService interface {
	Options(ctx context.Context, form, field string) ([]models.MasterDataOption, error)
}

// AuthService handles credential verification, the JWT token lifecycle, and
// the startup administrator bootstrap.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.User, models.Permissions, error)
	Identity(ctx context.Context, userID int64) (models.User, models.Permissions, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	EnsureAdmin(ctx context.Context) error
}

// UserService handles staff account administration.
type UserService interface {
	Create(ctx context.Context, user models.User, password string, perms models.Permissions) (models.User, error)
	List(ctx context.Context, page, limit int) ([]models.User, models.Pagination, error)
	Update(ctx context.Context, id int64, update models.UserUpdate) error
}
