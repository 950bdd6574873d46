package models

// Request and response bodies of the HTTP API. Kept in models so that both
// the server handlers and the vitactl client speak the same shapes.

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthCheckResponse is the body of GET /api/auth/check. For unauthenticated
// callers only Authenticated=false is set; the endpoint never returns 401.
type AuthCheckResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id,omitempty"`
	Email         string `json:"email,omitempty"`
	Role          Role   `json:"role,omitempty"`
}

// AdminCreateUserRequest is the body of POST /api/admin/users. Unlike
// self-service registration it may assign a role directly.
type AdminCreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UpdateRoleRequest is the body of PATCH /api/admin/users/{id}/role.
type UpdateRoleRequest struct {
	Role Role `json:"role"`
}

// ResetPasswordRequest is the body of PATCH /api/admin/users/{id}/password.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// UpdateThemeRequest is the body of PUT /api/profile/theme.
type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

// CreateMeasurementRequest is the body of POST /api/measurements.
type CreateMeasurementRequest struct {
	RecordedAt string   `json:"recorded_at"`
	WeightKG   float64  `json:"weight_kg"`
	BodyFatPct *float64 `json:"body_fat_pct,omitempty"`
	WaistCM    *float64 `json:"waist_cm,omitempty"`
	Note       string   `json:"note,omitempty"`
}

// CreateWaterEntryRequest is the body of POST /api/water.
type CreateWaterEntryRequest struct {
	DrunkAt  string `json:"drunk_at"`
	VolumeML int    `json:"volume_ml"`
}

// WaterTotalResponse is the body of GET /api/water/total.
type WaterTotalResponse struct {
	VolumeML int64 `json:"volume_ml"`
}

// StartFastRequest is the body of POST /api/fasts.
type StartFastRequest struct {
	TargetHours int `json:"target_hours"`
}

// ErrorResponse is the uniform error body returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
