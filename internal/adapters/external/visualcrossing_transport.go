// Package external provides adapters for external services.
// The Visual Crossing adapter implements the ForecastTransport port over HTTP.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"visualcrossing.app/internal/ports"
	"visualcrossing.app/pkg/errors"
)

// DefaultVisualCrossingBaseURL is the Timeline API root
const DefaultVisualCrossingBaseURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline/"

const (
	unitGroup       = "metric"
	contentType     = "json"
	iconSet         = "icons2"
	maxErrorBodyLen = 256
	redactedValue   = "REDACTED"
)

// HTTPClient is a reusable HTTP session (for testing and connection sharing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ownedSession is a session created and released by the transport itself
type ownedSession interface {
	HTTPClient
	CloseIdleConnections()
}

// VisualCrossingTransport implements ForecastTransport for the Visual Crossing Timeline API
type VisualCrossingTransport struct {
	baseURL    string
	session    HTTPClient
	newSession func() ownedSession
	logger     ports.Logger
}

// VisualCrossingTransportParams holds parameters for creating the transport.
// Session is optional; when nil every call opens and closes its own session.
type VisualCrossingTransportParams struct {
	BaseURL string
	Session HTTPClient
	Logger  ports.Logger
}

// Ensure VisualCrossingTransport implements ports.ForecastTransport
var _ ports.ForecastTransport = (*VisualCrossingTransport)(nil)

// NewVisualCrossingTransport creates a new Visual Crossing transport adapter
func NewVisualCrossingTransport(params VisualCrossingTransportParams) *VisualCrossingTransport {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = DefaultVisualCrossingBaseURL
	}

	return &VisualCrossingTransport{
		baseURL:    baseURL,
		session:    params.Session,
		newSession: newHTTPSession,
		logger:     params.Logger,
	}
}

func newHTTPSession() ownedSession {
	return &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
}

// FetchData performs one blocking GET and returns the raw JSON payload
func (t *VisualCrossingTransport) FetchData(ctx context.Context, params ports.FetchParams) (json.RawMessage, error) {
	reqURL, err := t.buildURL(params)
	if err != nil {
		return nil, errors.NewAccessError("failed to build Visual Crossing URL", 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.NewAccessError("failed to create Visual Crossing request", 0, redactKey(err))
	}
	req.Header.Set("Accept", "application/json")

	session, release := t.acquireSession()
	defer release()

	resp, err := session.Do(req)
	if err != nil {
		return nil, errors.NewAccessError("failed to call Visual Crossing", 0, redactKey(err))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			t.logger.Warn("Failed to close Visual Crossing response body", ports.F("error", closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewAccessError("failed to read Visual Crossing response", resp.StatusCode, redactKey(err))
	}

	if err := classifyStatus(resp.StatusCode, body); err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, errors.NewAccessError("Visual Crossing returned a non-JSON body", resp.StatusCode, nil)
	}

	return json.RawMessage(body), nil
}

// FetchDataAsync runs FetchData on its own goroutine.
// The returned channel yields exactly one result and is then closed.
func (t *VisualCrossingTransport) FetchDataAsync(ctx context.Context, params ports.FetchParams) <-chan ports.RawResult {
	results := make(chan ports.RawResult, 1)

	go func() {
		defer close(results)
		payload, err := t.FetchData(ctx, params)
		results <- ports.RawResult{Payload: payload, Err: err}
	}()

	return results
}

// acquireSession returns the caller's session untouched, or a fresh one released after the call
func (t *VisualCrossingTransport) acquireSession() (HTTPClient, func()) {
	if t.session != nil {
		return t.session, func() {}
	}

	session := t.newSession()
	return session, session.CloseIdleConnections
}

// buildURL constructs {base}{lat},{lon}/today/next{days}days with the fixed query parameters
func (t *VisualCrossingTransport) buildURL(params ports.FetchParams) (string, error) {
	base, err := url.Parse(t.baseURL)
	if err != nil {
		return "", err
	}

	location := formatCoordinate(params.Latitude) + "," + formatCoordinate(params.Longitude)
	path := fmt.Sprintf("%s/today/next%ddays", location, params.Days)

	query := url.Values{}
	query.Set("unitGroup", unitGroup)
	query.Set("key", params.APIKey)
	query.Set("contentType", contentType)
	query.Set("iconSet", iconSet)
	query.Set("lang", params.Language)

	return strings.TrimSuffix(base.String(), "/") + "/" + path + "?" + query.Encode(), nil
}

// redactKey masks the key query value of a *url.Error, keeping the inner error intact
func redactKey(err error) error {
	urlErr, ok := err.(*url.Error)
	if !ok {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: redactURL(urlErr.URL), Err: urlErr.Err}
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return redactedValue
	}
	query := u.Query()
	if query.Has("key") {
		query.Set("key", redactedValue)
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func formatCoordinate(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// classifyStatus maps the documented failure statuses to their error kinds
func classifyStatus(statusCode int, body []byte) error {
	if statusCode == http.StatusOK {
		return nil
	}

	detail := errorDetail(body)
	switch statusCode {
	case http.StatusBadRequest:
		return errors.NewBadRequestError("Visual Crossing rejected the request: " + detail)
	case http.StatusUnauthorized:
		return errors.NewUnauthorizedError("Visual Crossing rejected the API key: " + detail)
	case http.StatusTooManyRequests:
		return errors.NewTooManyRequestsError("Visual Crossing quota exceeded: " + detail)
	case http.StatusInternalServerError:
		return errors.NewInternalServerError("Visual Crossing internal error: " + detail)
	default:
		return errors.NewAccessError(fmt.Sprintf("Visual Crossing returned status %d: %s", statusCode, detail), statusCode, nil)
	}
}

func errorDetail(body []byte) string {
	detail := strings.TrimSpace(string(body))
	if len(detail) > maxErrorBodyLen {
		cut := maxErrorBodyLen
		for cut > 0 && !utf8.RuneStart(detail[cut]) {
			cut--
		}
		detail = detail[:cut] + "..."
	}
	if detail == "" {
		return "no details"
	}
	return detail
}
