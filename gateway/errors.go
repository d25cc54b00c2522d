package gateway

import "encoding/json"

// Each remote operation fails with its own error type. They are all
// "remote call failed" variants carrying the server-reported message when
// one was present and a generic fallback otherwise.

// AuthError is returned when the login call fails
type AuthError struct{ Message string }

func (e *AuthError) Error() string { return e.Message }

// RegistrationError is returned when the register call fails
type RegistrationError struct{ Message string }

func (e *RegistrationError) Error() string { return e.Message }

// FetchError is returned when listing messages fails
type FetchError struct{ Message string }

func (e *FetchError) Error() string { return e.Message }

// SubmitError is returned when submitting a contact message fails
type SubmitError struct{ Message string }

func (e *SubmitError) Error() string { return e.Message }

// ToggleError is returned when toggling a message's read state fails
type ToggleError struct{ Message string }

func (e *ToggleError) Error() string { return e.Message }

// DeleteError is returned when deleting a message fails
type DeleteError struct{ Message string }

func (e *DeleteError) Error() string { return e.Message }

// serverMessage extracts the "message" field from an error response body,
// falling back when the body is empty or not JSON.
func serverMessage(body []byte, fallback string) string {
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return resp.Message
	}
	return fallback
}
