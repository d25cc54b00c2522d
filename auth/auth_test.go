package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "auth-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("DATA_DIR", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestTokenRoundTrip(t *testing.T) {
	token := GenerateToken()
	if err := ValidateToken(token); err != nil {
		t.Errorf("generated token failed validation: %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	tests := []string{
		"",
		"not-base64!!!",
		"aGVsbG8=", // valid base64, not a uuid
	}
	for _, tk := range tests {
		if err := ValidateToken(tk); err == nil {
			t.Errorf("ValidateToken(%q) accepted an invalid token", tk)
		}
	}
}

func TestCreateLookupDestroy(t *testing.T) {
	acc := &Account{Name: "A", Email: "a@example.com"}
	token := Create(acc)

	sess := Lookup(token)
	if sess == nil {
		t.Fatal("created session not found")
	}
	if sess.Account.Email != "a@example.com" {
		t.Errorf("session account = %+v", sess.Account)
	}

	Destroy(token)
	if Lookup(token) != nil {
		t.Error("session survived Destroy")
	}
}

func TestSessionPersistenceRoundTrip(t *testing.T) {
	acc := &Account{Name: "Admin", Email: "admin@example.com", Admin: true}
	token := Create(acc)

	// Simulate a process restart: wipe the in-memory store and rehydrate.
	mutex.Lock()
	sessions = map[string]*Session{}
	mutex.Unlock()

	if Lookup(token) != nil {
		t.Fatal("session present before Load")
	}

	Load()

	sess := Lookup(token)
	if sess == nil {
		t.Fatal("session not rehydrated from disk")
	}
	if !sess.Account.Admin || sess.Account.Email != "admin@example.com" {
		t.Errorf("rehydrated account = %+v", sess.Account)
	}
}

func TestGetSessionFromRequest(t *testing.T) {
	token := Create(&Account{Name: "U", Email: "u@example.com"})

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: token})

	sess, err := GetSession(r)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess.Token != token {
		t.Errorf("session token mismatch")
	}

	// No cookie means no session.
	if _, err := GetSession(httptest.NewRequest("GET", "/", nil)); err == nil {
		t.Error("GetSession succeeded without a cookie")
	}

	// A well-formed token with no stored session is rejected.
	r = httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: GenerateToken()})
	if _, err := GetSession(r); err == nil {
		t.Error("GetSession accepted an unknown token")
	}
}

func TestRequireAdmin(t *testing.T) {
	userToken := Create(&Account{Name: "U", Email: "u@example.com"})
	adminToken := Create(&Account{Name: "A", Email: "a@example.com", Admin: true})

	r := httptest.NewRequest("GET", "/admin", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: userToken})
	if _, _, err := RequireAdmin(r); err == nil {
		t.Error("RequireAdmin passed a non-admin")
	}

	r = httptest.NewRequest("GET", "/admin", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: adminToken})
	if _, acc, err := RequireAdmin(r); err != nil || !acc.Admin {
		t.Errorf("RequireAdmin failed an admin: %v", err)
	}
}
