package backend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx backend response with whatever human-readable
// message could be pulled out of its payload.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

type fieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// decodeError turns an error payload into an APIError. The backend
// answers either a plain string detail, a list of field-level validation
// messages, or something unrecognized; the messages are surfaced
// verbatim, joined when it is a list, with a generic fallback otherwise.
func decodeError(status int, body []byte) *APIError {
	var withDetail struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &withDetail); err == nil && len(withDetail.Detail) > 0 {
		var s string
		if json.Unmarshal(withDetail.Detail, &s) == nil && s != "" {
			return &APIError{Status: status, Message: s}
		}
		var fields []fieldError
		if json.Unmarshal(withDetail.Detail, &fields) == nil && len(fields) > 0 {
			msgs := make([]string, 0, len(fields))
			for _, f := range fields {
				if f.Msg != "" {
					msgs = append(msgs, f.Msg)
				}
			}
			if len(msgs) > 0 {
				return &APIError{Status: status, Message: strings.Join(msgs, "; ")}
			}
		}
	}
	var withError struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &withError); err == nil && withError.Error != "" {
		return &APIError{Status: status, Message: withError.Error}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("backend request failed (status %d)", status)}
}
