package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/models"
)

type mockWaterService struct {
	createWaterEntryFn func(ctx context.Context, userID string, e models.WaterEntry) (models.WaterEntry, error)
	listWaterEntriesFn func(ctx context.Context, userID string, from, to time.Time) ([]models.WaterEntry, error)
	waterTotalFn       func(ctx context.Context, userID string, from, to time.Time) (int64, error)
	deleteWaterEntryFn func(ctx context.Context, userID, id string) error
}

func (m *mockWaterService) CreateWaterEntry(ctx context.Context, userID string, e models.WaterEntry) (models.WaterEntry, error) {
	return m.createWaterEntryFn(ctx, userID, e)
}

func (m *mockWaterService) ListWaterEntries(ctx context.Context, userID string, from, to time.Time) ([]models.WaterEntry, error) {
	return m.listWaterEntriesFn(ctx, userID, from, to)
}

func (m *mockWaterService) WaterTotal(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	return m.waterTotalFn(ctx, userID, from, to)
}

func (m *mockWaterService) DeleteWaterEntry(ctx context.Context, userID, id string) error {
	return m.deleteWaterEntryFn(ctx, userID, id)
}

func TestCreateWaterEntry_Success(t *testing.T) {
	water := &mockWaterService{
		createWaterEntryFn: func(_ context.Context, userID string, e models.WaterEntry) (models.WaterEntry, error) {
			assert.Equal(t, "u-1", userID)
			assert.Equal(t, 250, e.VolumeML)

			e.ID = "w-1"
			e.UserID = userID
			return e, nil
		},
	}
	h := newTestHandler(t, &service.Services{WaterService: water})

	body := jsonBody(t, models.CreateWaterEntryRequest{DrunkAt: "2026-03-01T09:30:00Z", VolumeML: 250})
	req := httptest.NewRequest(http.MethodPost, "/api/water", strings.NewReader(body))
	req = requestWithPrincipal(req, testPrincipal())
	rec := httptest.NewRecorder()

	h.createWaterEntry(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.WaterEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "w-1", created.ID)
}

func TestCreateWaterEntry_InvalidVolume(t *testing.T) {
	water := &mockWaterService{
		createWaterEntryFn: func(_ context.Context, _ string, _ models.WaterEntry) (models.WaterEntry, error) {
			return models.WaterEntry{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, &service.Services{WaterService: water})

	body := jsonBody(t, models.CreateWaterEntryRequest{VolumeML: -10})
	req := httptest.NewRequest(http.MethodPost, "/api/water", strings.NewReader(body))
	req = requestWithPrincipal(req, testPrincipal())
	rec := httptest.NewRecorder()

	h.createWaterEntry(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWaterTotal_DefaultsToCurrentDay(t *testing.T) {
	water := &mockWaterService{
		waterTotalFn: func(_ context.Context, userID string, from, to time.Time) (int64, error) {
			assert.Equal(t, "u-1", userID)
			assert.Equal(t, 24*time.Hour, to.Sub(from))
			assert.Zero(t, from.Hour())
			assert.Zero(t, from.Minute())
			return 1500, nil
		},
	}
	h := newTestHandler(t, &service.Services{WaterService: water})

	req := httptest.NewRequest(http.MethodGet, "/api/water/total", nil)
	req = requestWithPrincipal(req, testPrincipal())
	rec := httptest.NewRecorder()

	h.waterTotal(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body models.WaterTotalResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(1500), body.VolumeML)
}

func TestListWaterEntries_ExplicitRange(t *testing.T) {
	water := &mockWaterService{
		listWaterEntriesFn: func(_ context.Context, _ string, from, to time.Time) ([]models.WaterEntry, error) {
			assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), to)
			return []models.WaterEntry{{ID: "w-1"}, {ID: "w-2"}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{WaterService: water})

	req := httptest.NewRequest(http.MethodGet, "/api/water?from=2026-03-01T00:00:00Z&to=2026-03-02T00:00:00Z", nil)
	req = requestWithPrincipal(req, testPrincipal())
	rec := httptest.NewRecorder()

	h.listWaterEntries(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListWaterEntries_HalfOpenRangeRejected(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/water?from=2026-03-01T00:00:00Z", nil)
	req = requestWithPrincipal(req, testPrincipal())
	rec := httptest.NewRecorder()

	h.listWaterEntries(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteWaterEntry_Success(t *testing.T) {
	var deleted string
	water := &mockWaterService{
		deleteWaterEntryFn: func(_ context.Context, userID, id string) error {
			assert.Equal(t, "u-1", userID)
			deleted = id
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{WaterService: water})

	req := httptest.NewRequest(http.MethodDelete, "/api/water/w-1", nil)
	req = requestWithPrincipal(req, testPrincipal())
	req = withURLParam(req, "id", "w-1")
	rec := httptest.NewRecorder()

	h.deleteWaterEntry(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "w-1", deleted)
}
