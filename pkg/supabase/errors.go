package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnavailable wraps transport failures and timeouts.
	ErrUnavailable = errors.New("supabase: service unavailable")
	// ErrNotFound is returned when a single-row select matches nothing.
	ErrNotFound = errors.New("supabase: row not found")
	// ErrNotConfigured is returned when no project URL was configured.
	ErrNotConfigured = errors.New("supabase: not configured")
)

// Well-known auth error codes.
const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidGrant       = "invalid_grant"
	CodeEmailNotConfirmed  = "email_not_confirmed"
	CodeUserAlreadyExists  = "user_already_exists"
	CodeEmailExists        = "email_exists"
	CodeWeakPassword       = "weak_password"
	CodeFlowStateNotFound  = "flow_state_not_found"
	CodeFlowStateExpired   = "flow_state_expired"
	CodeBadJWT             = "bad_jwt"
	CodeSessionNotFound    = "session_not_found"
	CodeRefreshNotFound    = "refresh_token_not_found"
	codeNoRows             = "PGRST116"
)

// APIError is a non-2xx response. Code carries the structured error code
// when the service sent one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase API error %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether retrying later could succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// errorBody covers the auth ("error_code"/"msg"), OAuth ("error"/
// "error_description") and PostgREST ("code"/"message") error shapes.
type errorBody struct {
	ErrorCode        string          `json:"error_code"`
	Code             json.RawMessage `json:"code"`
	Msg              string          `json:"msg"`
	Message          string          `json:"message"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		return apiErr
	}

	var codeStr string
	if len(body.Code) > 0 {
		// "code" is a number for auth errors and a string for PostgREST
		_ = json.Unmarshal(body.Code, &codeStr)
	}

	switch {
	case body.ErrorCode != "":
		apiErr.Code = body.ErrorCode
	case body.Error != "":
		apiErr.Code = body.Error
	default:
		apiErr.Code = codeStr
	}

	for _, m := range []string{body.Msg, body.ErrorDescription, body.Message} {
		if m != "" {
			apiErr.Message = m
			break
		}
	}
	return apiErr
}
