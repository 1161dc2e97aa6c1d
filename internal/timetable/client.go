// Package timetable implements the client for the university scheduling
// API: request URL construction, fetching, and rendering of the loosely
// specified responses into bounded chat text.
package timetable

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"rozkladbot/internal/config"
)

// Mode selects the schedule subject of a request.
type Mode string

const (
	ModeGroup   Mode = "group"
	ModeTeacher Mode = "teacher"
)

// Request describes one schedule query. GroupCode is used in ModeGroup,
// TeacherAPIID in ModeTeacher. Begin and End are inclusive.
type Request struct {
	Mode         Mode
	GroupCode    string
	TeacherAPIID int64
	Begin        time.Time
	End          time.Time
}

// StatusError reports a non-2xx response from the timetable API.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("timetable API returned %s", e.Status)
}

// Client talks to the remote timetable export endpoint.
type Client struct {
	baseURL    string
	format     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a timetable API client. The configured timeout bounds
// the whole fetch including body read.
func NewClient(cfg config.TimetableConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		format:     cfg.Format,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With("component", "timetable_client"),
	}
}

// BuildURL constructs the fully qualified query URL for a request. It is
// deterministic and performs no network access. All parameter values are
// URL-encoded, including special characters in group codes.
func (c *Client) BuildURL(req Request) string {
	params := url.Values{}
	params.Set("req_mode", string(req.Mode))
	params.Set("req_type", "rozklad")
	params.Set("req_format", c.format)
	params.Set("coding_mode", "UTF8")
	if req.Mode == ModeTeacher {
		params.Set("OBJ_ID", fmt.Sprintf("%d", req.TeacherAPIID))
	} else {
		params.Set("OBJ_name", req.GroupCode)
	}
	params.Set("begin_date", req.Begin.Format("2006-01-02"))
	params.Set("end_date", req.End.Format("2006-01-02"))

	return c.baseURL + "?" + params.Encode()
}

// Fetch performs the GET request and decodes the response. A non-2xx status
// is returned as *StatusError. A body that fails JSON decoding is not an
// error: the API sometimes answers with plain text despite req_format=json,
// so the body degrades to a raw-text payload.
func (c *Client) Fetch(ctx context.Context, rawURL string) (Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to build timetable request: %w", err)
	}

	c.logger.DebugContext(ctx, "Fetching timetable", "url", rawURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("timetable request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "Error closing timetable response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "Timetable API returned non-success status", "status", resp.Status)
		return Payload{}, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to read timetable response: %w", err)
	}

	return DecodePayload(body), nil
}
