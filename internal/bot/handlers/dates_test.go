package handlers

import (
	"testing"
	"time"
)

func TestParseDateRange(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		args      []string
		wantBegin string
		wantEnd   string
	}{
		{
			name:      "no args uses default window",
			args:      nil,
			wantBegin: "2024-03-15",
			wantEnd:   "2024-03-21",
		},
		{
			name:      "single date sets begin only",
			args:      []string{"2024-03-01"},
			wantBegin: "2024-03-01",
			wantEnd:   "2024-03-21",
		},
		{
			name:      "two dates set both endpoints",
			args:      []string{"2024-03-01", "2024-03-10"},
			wantBegin: "2024-03-01",
			wantEnd:   "2024-03-10",
		},
		{
			name:      "non-date is skipped",
			args:      []string{"not-a-date"},
			wantBegin: "2024-03-15",
			wantEnd:   "2024-03-21",
		},
		{
			name:      "non-dates interleaved with dates",
			args:      []string{"від", "2024-03-01", "до", "2024-03-10"},
			wantBegin: "2024-03-01",
			wantEnd:   "2024-03-10",
		},
		{
			name:      "dates beyond the first two are ignored",
			args:      []string{"2024-03-01", "2024-03-10", "2024-03-20"},
			wantBegin: "2024-03-01",
			wantEnd:   "2024-03-10",
		},
		{
			name:      "slash-separated format is accepted",
			args:      []string{"01/03/2024"},
			wantBegin: "2024-01-03",
			wantEnd:   "2024-03-21",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			begin, end := ParseDateRange(tc.args, today)
			if got := isoDate(begin); got != tc.wantBegin {
				t.Errorf("begin = %s, want %s", got, tc.wantBegin)
			}
			if got := isoDate(end); got != tc.wantEnd {
				t.Errorf("end = %s, want %s", got, tc.wantEnd)
			}
		})
	}
}
