package app

import (
	"encoding/base64"
	"fmt"
	"html"
	"net/http"
	"strings"
)

const flashCookie = "hub_flash"

// Flash sets a one-shot notification shown on the next rendered page.
// Kind is "success" or "error".
func Flash(w http.ResponseWriter, kind, msg string) {
	val := base64.URLEncoding.EncodeToString([]byte(kind + "|" + msg))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    val,
		Path:     "/",
		HttpOnly: true,
	})
}

// TakeFlash returns the pending notification banner html, clearing the
// cookie so the notification renders exactly once.
func TakeFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:   flashCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	dec, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return ""
	}

	kind, msg, ok := strings.Cut(string(dec), "|")
	if !ok || msg == "" {
		return ""
	}

	return Banner(kind, msg)
}

// Banner renders a notification banner for inclusion in the current
// response. Used directly when a handler re-renders the same page instead
// of redirecting.
func Banner(kind, msg string) string {
	class := "flash"
	if kind == "error" {
		class = "flash flash-error"
	}

	return fmt.Sprintf(`<div class="%s">%s</div>`, class, html.EscapeString(msg))
}
