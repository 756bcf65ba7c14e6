package transport

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/region-mirror/models"
)

// LoginConfig holds the settings for the HTTP session login that precedes
// the websocket dial.
type LoginConfig struct {
	// BaseURL is the region's HTTP API base URL.
	BaseURL string
	// Timeout bounds the login request.
	Timeout time.Duration
}

// Login authenticates against the region's HTTP API and returns the session
// used to dial the websocket. Returns [ErrUnauthorized] (wrapped) if the
// credentials are rejected.
func Login(ctx context.Context, cfg LoginConfig, creds models.Credentials) (models.Session, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	resp, err := cli.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/accounts/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return models.Session{}, fmt.Errorf("login for %s: %w", creds.Username, ErrUnauthorized)
	case resp.IsError():
		return models.Session{}, fmt.Errorf("login for %s: unexpected status %d", creds.Username, resp.StatusCode())
	}

	cookie := sessionCookie(resp.Cookies())
	if cookie == "" {
		return models.Session{}, fmt.Errorf("login for %s: no session cookie in response", creds.Username)
	}

	return models.Session{Cookie: cookie}, nil
}

func sessionCookie(cookies []*http.Cookie) string {
	for _, c := range cookies {
		if c.Name == "sessionid" {
			return c.Name + "=" + c.Value
		}
	}
	return ""
}
