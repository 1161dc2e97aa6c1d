package handlers

import (
	"time"

	"github.com/araddon/dateparse"
)

// defaultRangeDays is the span of the default schedule window: today
// through today+6, inclusive.
const defaultRangeDays = 6

// ParseDateRange scans args left to right for date-looking strings. The
// first argument that parses becomes the begin date, the second the end
// date; anything that does not parse is skipped, and arguments beyond the
// first two parsed dates are ignored. Each endpoint defaults independently:
// supplying only a begin date leaves the end at today+6.
func ParseDateRange(args []string, today time.Time) (begin, end time.Time) {
	begin = today
	end = today.AddDate(0, 0, defaultRangeDays)

	parsed := 0
	for _, arg := range args {
		d, err := dateparse.ParseAny(arg)
		if err != nil {
			continue
		}
		switch parsed {
		case 0:
			begin = d
		case 1:
			end = d
		}
		parsed++
		if parsed == 2 {
			break
		}
	}

	return begin, end
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}
