package models

import "time"

// WaterEntry is a single hydration log record owned by one user.
type WaterEntry struct {
	ID       string    `json:"id"`
	UserID   string    `json:"-"`
	DrunkAt  time.Time `json:"drunk_at"`
	VolumeML int       `json:"volume_ml"`
}
