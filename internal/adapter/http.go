package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

const sessionCookieName = "vitalog_session"

type httpAdminClient struct {
	client *utils.HTTPClient

	session *http.Cookie

	logger *logger.Logger
}

// NewAdminClient constructs an HTTP implementation of [AdminClient] for the
// server at address. The address is normalised to a base URL; a scheme is
// assumed to be http when missing.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewAdminClient(address string, timeout time.Duration, log *logger.Logger) (AdminClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpAdminClient{client: client, logger: log}, nil
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

// Login implements [AdminClient]. It POSTs the credentials to
// POST /api/auth/login and captures the session cookie from the response for
// use on all subsequent requests.
func (h *httpAdminClient) Login(ctx context.Context, email, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			h.session = c
			return nil
		}
	}

	return fmt.Errorf("login response carried no session cookie")
}

// Logout implements [AdminClient]. A missing session is not an error.
func (h *httpAdminClient) Logout(ctx context.Context) error {
	if h.session == nil {
		return nil
	}

	resp, err := h.authorized(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	h.session = nil

	return mapHTTPError(resp)
}

// ListUsers implements [AdminClient].
func (h *httpAdminClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.authorized(ctx).
		SetResult(&users).
		Get("/api/admin/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser implements [AdminClient].
func (h *httpAdminClient) CreateUser(ctx context.Context, email, password string, role models.Role) (models.User, error) {
	var created models.User

	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AdminCreateUserRequest{Email: email, Password: password, Role: role}).
		SetResult(&created).
		Post("/api/admin/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// SetUserRole implements [AdminClient].
func (h *httpAdminClient) SetUserRole(ctx context.Context, userID string, role models.Role) error {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateRoleRequest{Role: role}).
		Patch("/api/admin/users/" + url.PathEscape(userID) + "/role")
	if err != nil {
		return fmt.Errorf("set user role request: %w", err)
	}

	return mapHTTPError(resp)
}

// ResetUserPassword implements [AdminClient].
func (h *httpAdminClient) ResetUserPassword(ctx context.Context, userID, password string) error {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ResetPasswordRequest{Password: password}).
		Patch("/api/admin/users/" + url.PathEscape(userID) + "/password")
	if err != nil {
		return fmt.Errorf("reset user password request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteUser implements [AdminClient].
func (h *httpAdminClient) DeleteUser(ctx context.Context, userID string) error {
	resp, err := h.authorized(ctx).
		Delete("/api/admin/users/" + url.PathEscape(userID))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// authorized prepares a request carrying the captured session cookie.
func (h *httpAdminClient) authorized(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.session != nil {
		req.SetCookie(h.session)
	}

	return req
}
