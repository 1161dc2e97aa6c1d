package timetable

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MaxMessageLen is the chat message size ceiling applied to formatted output.
const MaxMessageLen = 4000

const emptyDayMarker = "  — Пустий день"

// Format renders a payload as bounded human-readable text. It is total and
// never returns more than MaxMessageLen characters.
func Format(p Payload) string {
	switch p.Kind {
	case KindAPIError:
		return truncate(fmt.Sprintf("API error: code=%v. %s", p.APIError.Code, p.APIError.Message))
	case KindDays:
		return truncate(formatDays(p.Days))
	case KindDaysList:
		lines := make([]string, 0, len(p.DaysList))
		for _, day := range p.DaysList {
			lines = append(lines, fmt.Sprintf("%v", day))
		}
		return truncate(strings.Join(lines, "\n"))
	case KindRawText:
		return truncate(p.Raw)
	default:
		return truncate(dump(p.Opaque))
	}
}

func formatDays(days []Day) string {
	var out []string
	for _, day := range days {
		out = append(out, fmt.Sprintf("%s (%s):", day.Date, day.Weekday))
		if len(day.Lessons) == 0 {
			out = append(out, emptyDayMarker)
			continue
		}
		for _, lesson := range day.Lessons {
			subject := lesson.Subject
			if subject == "" {
				subject = lesson.Name
			}
			out = append(out, fmt.Sprintf("  %s — %s (%s) [%s]", lesson.Time, subject, lesson.Teacher, lesson.Room))
		}
	}
	return strings.Join(out, "\n")
}

func dump(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// truncate applies a hard character-count cut at MaxMessageLen. The cut is
// by rune so a UTF-8 sequence is never split mid-character.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxMessageLen {
		return s
	}
	return string(runes[:MaxMessageLen])
}
