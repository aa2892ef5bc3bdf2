package backend

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/ports"
)

var _ ports.Authenticator = (*Client)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session token. Login is called without a
// bearer token; any token on ctx is dropped.
func (c *Client) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	var out ports.LoginResult
	err := c.sendJSON(WithToken(ctx, ""), http.MethodPost, "User/login", nil, loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		if apperrors.IsUnauthorized(err) || apperrors.IsValidation(err) || apperrors.IsNotFound(err) {
			return ports.LoginResult{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "Invalid email or password")
		}
		return ports.LoginResult{}, err
	}
	if strings.TrimSpace(out.Token) == "" {
		return ports.LoginResult{}, apperrors.Upstream(0, "The store API did not return a token")
	}
	return out, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.sendJSON(WithToken(ctx, ""), http.MethodPost, "User/forgot-password", nil, struct {
		Email string `json:"email"`
	}{Email: email}, nil)
}
