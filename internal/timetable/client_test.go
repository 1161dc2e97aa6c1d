package timetable

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"rozkladbot/internal/config"
)

func testClient(baseURL string) *Client {
	return NewClient(config.TimetableConfig{
		BaseURL: baseURL,
		Format:  "json",
		Timeout: 15 * time.Second,
	}, nil)
}

func TestBuildURLRoundTrip(t *testing.T) {
	t.Parallel()

	begin := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     Request
		objKey  string
		objWant string
	}{
		{
			name:    "group with cyrillic code",
			req:     Request{Mode: ModeGroup, GroupCode: "202-1-Д", Begin: begin, End: end},
			objKey:  "OBJ_name",
			objWant: "202-1-Д",
		},
		{
			name:    "group code with reserved characters",
			req:     Request{Mode: ModeGroup, GroupCode: "A/B C&1+2", Begin: begin, End: end},
			objKey:  "OBJ_name",
			objWant: "A/B C&1+2",
		},
		{
			name:    "teacher numeric id",
			req:     Request{Mode: ModeTeacher, TeacherAPIID: 4217, Begin: begin, End: end},
			objKey:  "OBJ_ID",
			objWant: "4217",
		},
	}

	c := testClient("http://example.invalid/cgi-bin/timetable_export.cgi")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			raw := c.BuildURL(tc.req)

			parsed, err := url.Parse(raw)
			if err != nil {
				t.Fatalf("BuildURL() produced unparseable URL %q: %v", raw, err)
			}

			q := parsed.Query()
			if got := q.Get("req_mode"); got != string(tc.req.Mode) {
				t.Errorf("req_mode = %q, want %q", got, tc.req.Mode)
			}
			if got := q.Get("req_type"); got != "rozklad" {
				t.Errorf("req_type = %q, want %q", got, "rozklad")
			}
			if got := q.Get("req_format"); got != "json" {
				t.Errorf("req_format = %q, want %q", got, "json")
			}
			if got := q.Get("coding_mode"); got != "UTF8" {
				t.Errorf("coding_mode = %q, want %q", got, "UTF8")
			}
			if got := q.Get(tc.objKey); got != tc.objWant {
				t.Errorf("%s = %q, want %q", tc.objKey, got, tc.objWant)
			}
			if got := q.Get("begin_date"); got != "2024-03-01" {
				t.Errorf("begin_date = %q, want %q", got, "2024-03-01")
			}
			if got := q.Get("end_date"); got != "2024-03-10" {
				t.Errorf("end_date = %q, want %q", got, "2024-03-10")
			}
		})
	}
}

func TestFetchDecodesJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"days":[{"date":"2024-03-01","weekday":"Пт","lessons":[]}]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	payload, err := c.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if payload.Kind != KindDays {
		t.Fatalf("payload kind = %v, want %v", payload.Kind, KindDays)
	}
	if len(payload.Days) != 1 || payload.Days[0].Date != "2024-03-01" {
		t.Errorf("unexpected days payload: %+v", payload.Days)
	}
}

func TestFetchNonJSONBodyDegradesToRaw(t *testing.T) {
	t.Parallel()

	const body = "timetable export temporarily unavailable"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	payload, err := c.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if payload.Kind != KindRawText {
		t.Fatalf("payload kind = %v, want %v", payload.Kind, KindRawText)
	}
	if payload.Raw != body {
		t.Errorf("raw payload = %q, want %q", payload.Raw, body)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	_, err := c.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Fetch() expected error for HTTP 500, got nil")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Fetch() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status code = %d, want %d", statusErr.StatusCode, http.StatusInternalServerError)
	}

	// No retry policy: exactly one request must have been made.
	if got := requests.Load(); got != 1 {
		t.Errorf("server saw %d requests, want 1", got)
	}
}
