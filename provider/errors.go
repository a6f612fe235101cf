package provider

import "errors"

// Every fetch failure wraps exactly one of these sentinels. All four are
// terminal for a single attempt: nothing is retried.
var (
	// ErrNetwork covers transport failures, timeouts and non-2xx statuses.
	ErrNetwork = errors.New("network failure")
	// ErrParse means the response body is not valid JSON.
	ErrParse = errors.New("malformed response body")
	// ErrMissingField means a record lacks an expected key.
	ErrMissingField = errors.New("record missing expected field")
	// ErrEmptyResult means a well-formed response carried zero records.
	ErrEmptyResult = errors.New("no records in response")
)
