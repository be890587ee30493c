// Package tradeport holds HTTP clients for the opaque tradeport backend
// services: user management, order management, and product management. The
// backends own all business validation; these clients only move JSON and map
// transport and status failures onto the application error taxonomy.
package tradeport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
)

const maxErrorBodyBytes = 4 * 1024 // keep backend error payloads bounded

// Config captures the connection settings shared by all backend clients.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

func (c Config) resolve(name string) (string, *http.Client, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		return "", nil, fmt.Errorf("%s base URL is required", name)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := c.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	return base, hc, nil
}

// doJSON issues a request with an optional JSON body and bearer token,
// decodes a 2xx response into out (when out is non-nil), and maps failures
// onto app errors.
func doJSON(ctx context.Context, hc *http.Client, method, url, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "backend request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "decode response body")
	}
	return nil
}

// statusError maps a non-2xx backend response to the app error taxonomy.
func statusError(resp *http.Response) error {
	cause := errors.New(readErrorSnippet(resp.Body))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.Wrap(cause, apperrors.ErrCodeNotFound, "resource not found")
	case resp.StatusCode == http.StatusUnauthorized:
		return apperrors.Wrap(cause, apperrors.ErrCodeUnauthorized, "backend rejected credentials")
	case resp.StatusCode == http.StatusConflict:
		return apperrors.Wrap(cause, apperrors.ErrCodeConflict, "backend conflict")
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return apperrors.Wrapf(cause, apperrors.ErrCodeValidation, "backend rejected request: %d", resp.StatusCode)
	default:
		return apperrors.Wrapf(cause, apperrors.ErrCodeUnavailable, "backend error: %d", resp.StatusCode)
	}
}

func readErrorSnippet(body io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil || len(bytes.TrimSpace(b)) == 0 {
		return "empty response body"
	}
	return string(bytes.TrimSpace(b))
}
