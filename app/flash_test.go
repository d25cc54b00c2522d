package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hub/auth"
)

func TestFlashConsumedOnce(t *testing.T) {
	// Set the notification.
	w := httptest.NewRecorder()
	Flash(w, "success", "Message sent!")

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "hub_flash" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("Flash set no cookie")
	}

	// First page load shows it and clears the cookie.
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookie)
	w2 := httptest.NewRecorder()

	banner := TakeFlash(w2, r)
	if !strings.Contains(banner, "Message sent!") {
		t.Errorf("banner = %q, want the message", banner)
	}

	cleared := false
	for _, c := range w2.Result().Cookies() {
		if c.Name == "hub_flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("TakeFlash did not clear the cookie")
	}

	// The next load has no cookie and shows nothing.
	if got := TakeFlash(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)); got != "" {
		t.Errorf("second TakeFlash = %q, want empty", got)
	}
}

func TestBannerKinds(t *testing.T) {
	if got := Banner("success", "ok"); strings.Contains(got, "flash-error") {
		t.Errorf("success banner carries error class: %q", got)
	}
	if got := Banner("error", "bad"); !strings.Contains(got, "flash-error") {
		t.Errorf("error banner missing error class: %q", got)
	}
}

func TestBannerEscapesMessage(t *testing.T) {
	got := Banner("error", `<script>alert("x")</script>`)
	if strings.Contains(got, "<script>") {
		t.Errorf("banner did not escape markup: %q", got)
	}
}

func TestNavByRole(t *testing.T) {
	anon := Nav(nil)
	if !strings.Contains(anon, "/signup") {
		t.Error("anonymous nav missing signup")
	}
	if strings.Contains(anon, "/dashboard") || strings.Contains(anon, "/inbox") {
		t.Error("anonymous nav exposes signed-in links")
	}

	user := Nav(&auth.Account{Name: "U"})
	if !strings.Contains(user, "/dashboard") || !strings.Contains(user, "/logout") {
		t.Error("user nav missing dashboard or logout")
	}
	if strings.Contains(user, "/inbox") || strings.Contains(user, "/admin") {
		t.Error("user nav exposes admin links")
	}

	admin := Nav(&auth.Account{Name: "A", Admin: true})
	if !strings.Contains(admin, "/inbox") || !strings.Contains(admin, "/admin") {
		t.Error("admin nav missing inbox or admin links")
	}
}
