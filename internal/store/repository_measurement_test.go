package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/models"
)

func newTestMeasurementRepo(t *testing.T) (MeasurementRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	return NewMeasurementRepository(db, logger.Nop()), mock
}

func TestMeasurementRepository_CreateMeasurement(t *testing.T) {
	repo, mock := newTestMeasurementRepo(t)

	recordedAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO measurements").
		WithArgs(sqlmock.AnyArg(), "u-1", recordedAt, 82.5, nil, nil, "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateMeasurement(context.Background(), models.Measurement{
		UserID:     "u-1",
		RecordedAt: recordedAt,
		WeightKG:   82.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated id on the created measurement")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMeasurementRepository_FindMeasurement_NotFound(t *testing.T) {
	repo, mock := newTestMeasurementRepo(t)

	mock.ExpectQuery("SELECT id, user_id, recorded_at").
		WithArgs("u-1", "m-404").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "recorded_at", "weight_kg", "body_fat_pct", "waist_cm", "note"}))

	_, err := repo.FindMeasurement(context.Background(), "u-1", "m-404")
	if !errors.Is(err, ErrNoMeasurementWasFound) {
		t.Errorf("expected ErrNoMeasurementWasFound, got %v", err)
	}
}

func TestMeasurementRepository_ListMeasurements_WithRange(t *testing.T) {
	repo, mock := newTestMeasurementRepo(t)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	recordedAt := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "recorded_at", "weight_kg", "body_fat_pct", "waist_cm", "note"}).
		AddRow("m-1", "u-1", recordedAt, 82.5, nil, nil, "")

	mock.ExpectQuery("SELECT id, user_id, recorded_at, weight_kg, body_fat_pct, waist_cm, note FROM measurements").
		WithArgs("u-1", from, to).
		WillReturnRows(rows)

	measurements, err := repo.ListMeasurements(context.Background(), "u-1", models.MeasurementFilter{From: &from, To: &to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(measurements) != 1 || measurements[0].ID != "m-1" {
		t.Errorf("unexpected result: %+v", measurements)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMeasurementRepository_ListMeasurements_Empty(t *testing.T) {
	repo, mock := newTestMeasurementRepo(t)

	mock.ExpectQuery("FROM measurements").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "recorded_at", "weight_kg", "body_fat_pct", "waist_cm", "note"}))

	measurements, err := repo.ListMeasurements(context.Background(), "u-1", models.MeasurementFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if measurements == nil {
		t.Error("expected an empty slice, not nil")
	}
	if len(measurements) != 0 {
		t.Errorf("expected no measurements, got %d", len(measurements))
	}
}

func TestMeasurementRepository_DeleteMeasurement_NotFound(t *testing.T) {
	repo, mock := newTestMeasurementRepo(t)

	mock.ExpectExec("DELETE FROM measurements").
		WithArgs("u-1", "m-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteMeasurement(context.Background(), "u-1", "m-404")
	if !errors.Is(err, ErrNoMeasurementWasFound) {
		t.Errorf("expected ErrNoMeasurementWasFound, got %v", err)
	}
}
