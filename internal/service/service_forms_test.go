// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harborlight Recovery Services

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/mock"
	"github.com/harborlight/intake-server/internal/store"
	"github.com/harborlight/intake-server/internal/validators"
	"github.com/harborlight/intake-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validReferral() models.Referral {
	return models.Referral{
		ReferralDate:   "2026-03-02",
		Name:           "Alex Morgan",
		BirthDate:      "1990-06-15",
		Gender:         "female",
		Race:           "white",
		ReferredByName: "Dr. Singh",
		Services:       []string{"Peer Support", "Housing Assistance"},
	}
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestReferralService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockReferralRepository(ctrl)
	svc := NewReferralService(mockRepo, validators.NewFormValidator(), logger.Nop())
	ctx := context.Background()

	referral := validReferral()
	mockRepo.EXPECT().Create(ctx, referral).Return(int64(101), nil)

	id, err := svc.Submit(ctx, referral)
	require.NoError(t, err)
	assert.Equal(t, int64(101), id)
}

func TestReferralService_Submit_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the repository must never be touched when validation fails
	mockRepo := mock.NewMockReferralRepository(ctrl)
	svc := NewReferralService(mockRepo, validators.NewFormValidator(), logger.Nop())

	referral := validReferral()
	referral.Name = ""

	_, err := svc.Submit(context.Background(), referral)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "name")
}

func TestReferralService_Submit_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockReferralRepository(ctrl)
	svc := NewReferralService(mockRepo, validators.NewFormValidator(), logger.Nop())
	ctx := context.Background()

	storeErr := errors.New("connection reset")
	mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(int64(0), storeErr)

	_, err := svc.Submit(ctx, validReferral())
	assert.ErrorIs(t, err, storeErr)
}

func TestEncounterService_Submit_ValidatesRepeatingEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockEncounterRepository(ctrl)
	svc := NewEncounterService(mockRepo, validators.NewFormValidator(), logger.Nop())

	encounter := models.Encounter{
		ClientName:    "Alex Morgan",
		StaffName:     "Riley Chen",
		EncounterDate: "2026-03-02",
		ServiceLogs: []models.ServiceLogEntry{
			{EntryDate: "2026-03-02", StartTime: "09:00", EndTime: "", Units: 2},
		},
	}

	_, err := svc.Submit(context.Background(), encounter)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Contains(t, err.Error(), "serviceLogs[0].endTime")
}

// ---------------------------------------------------------------------------
// List / Get
// ---------------------------------------------------------------------------

func TestReferralService_List_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockReferralRepository(ctrl)
	svc := NewReferralService(mockRepo, validators.NewFormValidator(), logger.Nop())
	ctx := context.Background()

	want := []models.Referral{validReferral()}
	pagination := models.Pagination{Page: 2, Limit: 10, Total: 12, TotalPages: 2}
	mockRepo.EXPECT().List(ctx, 2, 10).Return(want, pagination, nil)

	got, gotPagination, err := svc.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, pagination, gotPagination)
}

func TestReferralService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockReferralRepository(ctrl)
	svc := NewReferralService(mockRepo, validators.NewFormValidator(), logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().
		GetByID(ctx, int64(999)).
		Return(models.Referral{}, store.ErrSubmissionNotFound)

	_, err := svc.Get(ctx, 999)
	assert.ErrorIs(t, err, store.ErrSubmissionNotFound)
}

func TestWrapPlanService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockWrapPlanRepository(ctrl)
	svc := NewWrapPlanService(mockRepo, validators.NewFormValidator(), logger.Nop())
	ctx := context.Background()

	plan := models.WrapPlan{
		ClientName:    "Alex Morgan",
		PlanDate:      "2026-03-02",
		WellnessTools: []string{"Journaling"},
		Supporters:    []models.Supporter{{Name: "Sam Lee", Phone: "555-0100", Role: "sponsor"}},
	}
	mockRepo.EXPECT().Create(ctx, plan).Return(int64(55), nil)

	id, err := svc.Submit(ctx, plan)
	require.NoError(t, err)
	assert.Equal(t, int64(55), id)
}
