package timetable

import "encoding/json"

// PayloadKind tags the recognized response shapes.
type PayloadKind int

const (
	// KindAPIError is an error-shaped object carrying a code field.
	KindAPIError PayloadKind = iota
	// KindDays is the primary day-list shape ({"days": [...]}).
	KindDays
	// KindDaysList is an alternate day-list shape ({"days_list": [...]}).
	KindDaysList
	// KindRawText is plain text: a body that did not decode as JSON, or
	// an object carrying its text under a "raw" field.
	KindRawText
	// KindOpaque is valid JSON of no recognized shape.
	KindOpaque
)

// Payload is a tagged union over the response shapes the API is known to
// produce. Exactly the field matching Kind is populated.
type Payload struct {
	Kind PayloadKind

	APIError *APIError
	Days     []Day
	DaysList []any
	Raw      string
	Opaque   any
}

// APIError is the error object the API returns in place of a schedule.
// Code keeps the decoded JSON value as-is since its type varies.
type APIError struct {
	Code    any
	Message string
}

// Day is one day entry of the primary day-list shape.
type Day struct {
	Date    string   `json:"date"`
	Weekday string   `json:"weekday"`
	Lessons []Lesson `json:"lessons"`
}

// Lesson is one lesson line. Subject sometimes arrives under "name".
type Lesson struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Name    string `json:"name"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
}

// DecodePayload classifies a response body into one of the known shapes.
// It is total: any input produces a payload, never an error. Probing order
// matches the formatter's decision order: error object, days, days_list,
// raw, then opaque; non-JSON degrades to raw text.
func DecodePayload(body []byte) Payload {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return Payload{Kind: KindRawText, Raw: string(body)}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return Payload{Kind: KindOpaque, Opaque: value}
	}

	if code, ok := obj["code"]; ok {
		msg, _ := obj["error_message"].(string)
		if msg == "" {
			msg, _ = obj["error"].(string)
		}
		return Payload{Kind: KindAPIError, APIError: &APIError{Code: code, Message: msg}}
	}

	if _, ok := obj["days"]; ok {
		var wrapper struct {
			Days []Day `json:"days"`
		}
		if err := json.Unmarshal(body, &wrapper); err == nil {
			return Payload{Kind: KindDays, Days: wrapper.Days}
		}
		// A days field with an unexpected inner shape falls through to the
		// generic dump rather than failing.
		return Payload{Kind: KindOpaque, Opaque: value}
	}

	if list, ok := obj["days_list"].([]any); ok {
		return Payload{Kind: KindDaysList, DaysList: list}
	}

	if raw, ok := obj["raw"].(string); ok {
		return Payload{Kind: KindRawText, Raw: raw}
	}

	return Payload{Kind: KindOpaque, Opaque: value}
}
