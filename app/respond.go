package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Log prints a log line for the given package and stores it in the system log
func Log(pkg, format string, args ...interface{}) {
	fmt.Printf("[%s] %s\n", pkg, fmt.Sprintf(format, args...))
	appendSysLog(pkg, format, args...)
}

// WantsJSON reports whether the client asked for a JSON response
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// SendsJSON reports whether the request body is JSON
func SendsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

// DecodeJSON decodes the request body into v
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// RespondJSON writes v as a JSON response
func RespondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// RespondError writes a JSON error response with the given status
func RespondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// Unauthorized responds to an unauthenticated request
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	if WantsJSON(r) {
		RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

// Forbidden responds to a request lacking permission
func Forbidden(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "Forbidden"
	}
	if WantsJSON(r) {
		RespondError(w, http.StatusForbidden, msg)
		return
	}
	http.Error(w, msg, http.StatusForbidden)
}

// BadRequest responds to a malformed request
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "Bad request"
	}
	if WantsJSON(r) {
		RespondError(w, http.StatusBadRequest, msg)
		return
	}
	http.Error(w, msg, http.StatusBadRequest)
}

// TimeAgo formats a timestamp as a relative duration like "5m ago"
func TimeAgo(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	d := time.Since(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
