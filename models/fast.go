package models

import "time"

// Fast is one intermittent-fasting window. An open fast has a nil EndedAt;
// the store enforces at most one open fast per user.
type Fast struct {
	ID        string     `json:"id"`
	UserID    string     `json:"-"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`

	// TargetHours is the planned fasting duration the user committed to.
	TargetHours int `json:"target_hours"`
}

// Open reports whether the fast has not been finished yet.
func (f Fast) Open() bool {
	return f.EndedAt == nil
}
