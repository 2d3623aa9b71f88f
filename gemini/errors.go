package gemini

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyResponse means the model replied with no text payload.
	ErrEmptyResponse = errors.New("model returned an empty response")
	// ErrNotJSON means the response text did not parse as JSON even
	// after stripping a code fence.
	ErrNotJSON = errors.New("model response is not valid JSON")
)

// IsUnknownModel reports whether err looks like the configured model
// name is not recognized by the service. Callers use it to point the
// operator at the list-models diagnostic; nothing is listed
// automatically.
func IsUnknownModel(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "404") || strings.Contains(msg, "not found")
}
