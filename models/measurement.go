package models

import "time"

// Measurement is a single body-measurement diary entry owned by one user.
type Measurement struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	RecordedAt time.Time `json:"recorded_at"`

	// WeightKG is the body weight in kilograms. Required.
	WeightKG float64 `json:"weight_kg"`

	// BodyFatPct and WaistCM are optional metrics; nil means "not recorded".
	BodyFatPct *float64 `json:"body_fat_pct,omitempty"`
	WaistCM    *float64 `json:"waist_cm,omitempty"`

	Note string `json:"note,omitempty"`
}

// MeasurementFilter narrows a measurement listing to a date range.
// Nil bounds are open.
type MeasurementFilter struct {
	From *time.Time
	To   *time.Time
}
