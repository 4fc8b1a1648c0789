package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"jobdeck/internal/config"
	"jobdeck/internal/logging"
	"jobdeck/pkg/utils"
)

// Verifier resolves a bearer token to the owning user id. The identity
// provider itself is an external service; this is the only contact surface.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// HTTPVerifier verifies tokens against the identity provider's
// token-introspection endpoint
type HTTPVerifier struct {
	verifyURL string
	client    *http.Client
	logger    logging.Logger
}

// NewHTTPVerifier creates a verifier backed by the configured identity
// provider
func NewHTTPVerifier(cfg *config.Config) (*HTTPVerifier, error) {
	if cfg.Auth.VerifyURL == "" {
		return nil, fmt.Errorf("auth verify URL is required")
	}

	return &HTTPVerifier{
		verifyURL: cfg.Auth.VerifyURL,
		client:    &http.Client{Timeout: cfg.Auth.Timeout},
		logger:    logging.GetGlobalLogger(),
	}, nil
}

// Verify calls the identity provider and returns the authenticated user id
func (v *HTTPVerifier) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", utils.NewAuthError("missing bearer token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.verifyURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Error("Identity provider request failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", utils.NewAuthError("identity provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", utils.NewAuthError("token rejected")
	}
	if resp.StatusCode != http.StatusOK {
		v.logger.Error("Identity provider returned unexpected status", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return "", utils.NewAuthError(fmt.Sprintf("unexpected identity provider status %d", resp.StatusCode))
	}

	var payload struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", utils.NewAuthError("malformed identity provider response")
	}
	if payload.UserID == "" {
		return "", utils.NewAuthError("identity provider returned no user id")
	}

	return payload.UserID, nil
}

// StaticVerifier maps fixed tokens to user ids. Intended for local
// development and tests.
type StaticVerifier struct {
	tokens map[string]string
}

// NewStaticVerifier creates a verifier from a token -> user id map
func NewStaticVerifier(tokens map[string]string) *StaticVerifier {
	return &StaticVerifier{tokens: tokens}
}

// Verify resolves the token against the static map
func (v *StaticVerifier) Verify(_ context.Context, token string) (string, error) {
	if userID, ok := v.tokens[token]; ok {
		return userID, nil
	}
	return "", utils.NewAuthError("unknown token")
}
