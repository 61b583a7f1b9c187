package erp

import (
	"context"
	"errors"
	"net/http"
)

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, "login", http.MethodPost, "/auth/login",
		loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return AuthResponse{}, authError("login failed", err)
	}
	return resp, nil
}

// Register creates an account and logs it in.
func (c *Client) Register(ctx context.Context, name, email, password, role string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, "register", http.MethodPost, "/auth/register",
		registerRequest{Name: name, Email: email, Password: password, Role: role}, &resp)
	if err != nil {
		return AuthResponse{}, authError("registration failed", err)
	}
	return resp, nil
}

// Logout invalidates the token server-side. Callers clear local state
// regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "logout", http.MethodPost, "/auth/logout", nil, nil)
}

// authError wraps an API failure as an AuthError, keeping the remote's
// wording available for logging.
func authError(fallback string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &AuthError{Message: apiErr.Message, RemoteMessage: apiErr.Message}
	}
	return &AuthError{Message: fallback}
}
