package timetable

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "api error with error_message",
			body: `{"code":7,"error_message":"bad"}`,
			want: "API error: code=7. bad",
		},
		{
			name: "api error with error field fallback",
			body: `{"code":3,"error":"denied"}`,
			want: "API error: code=3. denied",
		},
		{
			name: "api error with no message",
			body: `{"code":1}`,
			want: "API error: code=1. ",
		},
		{
			name: "empty day",
			body: `{"days":[{"date":"2024-01-01","weekday":"Mon","lessons":[]}]}`,
			want: "2024-01-01 (Mon):\n  — Пустий день",
		},
		{
			name: "day with lessons",
			body: `{"days":[{"date":"2024-01-02","weekday":"Tue","lessons":[
				{"time":"08:30","subject":"Математика","teacher":"Іваненко","room":"101"},
				{"time":"10:05","name":"Фізика","teacher":"Петренко","room":"202"}]}]}`,
			want: "2024-01-02 (Tue):\n" +
				"  08:30 — Математика (Іваненко) [101]\n" +
				"  10:05 — Фізика (Петренко) [202]",
		},
		{
			name: "days list variant",
			body: `{"days_list":["пн: 2 пари","вт: вихідний"]}`,
			want: "пн: 2 пари\nвт: вихідний",
		},
		{
			name: "non-json body degrades to raw text",
			body: "Server maintenance until 6am",
			want: "Server maintenance until 6am",
		},
		{
			name: "raw field object renders its text",
			body: `{"raw":"Заняття скасовано"}`,
			want: "Заняття скасовано",
		},
		{
			name: "unrecognized object is dumped",
			body: `{"whatever":1}`,
			want: "{\n  \"whatever\": 1\n}",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Format(DecodePayload([]byte(tc.body)))
			if got != tc.want {
				t.Errorf("Format() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatLengthCap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "huge raw text",
			body: strings.Repeat("розклад ", 10000),
		},
		{
			name: "huge opaque json",
			body: `{"data":"` + strings.Repeat("x", 50000) + `"}`,
		},
		{
			name: "huge day list",
			body: `{"days":[` + strings.Repeat(`{"date":"2024-01-01","weekday":"Mon","lessons":[]},`, 999) +
				`{"date":"2024-01-01","weekday":"Mon","lessons":[]}]}`,
		},
		{
			name: "huge days_list variant",
			body: `{"days_list":[` + strings.Repeat(`"день",`, 4999) + `"день"]}`,
		},
		{
			name: "huge api error message",
			body: `{"code":1,"error_message":"` + strings.Repeat("x", 8000) + `"}`,
		},
		{
			name: "huge raw field",
			body: `{"raw":"` + strings.Repeat("y", 8000) + `"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Format(DecodePayload([]byte(tc.body)))
			if n := len([]rune(got)); n > MaxMessageLen {
				t.Errorf("Format() produced %d characters, cap is %d", n, MaxMessageLen)
			}
		})
	}
}

func TestDecodePayloadKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want PayloadKind
	}{
		{"error object", `{"code":500,"error":"oops"}`, KindAPIError},
		{"days object", `{"days":[]}`, KindDays},
		{"days_list object", `{"days_list":[]}`, KindDaysList},
		{"plain text", "not json at all", KindRawText},
		{"raw field object", `{"raw":"hello"}`, KindRawText},
		{"array", `[1,2,3]`, KindOpaque},
		{"unknown object", `{"foo":"bar"}`, KindOpaque},
		{"days with unexpected inner shape", `{"days":"tomorrow"}`, KindOpaque},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := DecodePayload([]byte(tc.body)); got.Kind != tc.want {
				t.Errorf("DecodePayload() kind = %v, want %v", got.Kind, tc.want)
			}
		})
	}
}
