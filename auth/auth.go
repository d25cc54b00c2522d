package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"hub/data"
)

const sessionsFile = "sessions.json"

// Account is the identity returned by the remote login endpoint.
// The remote service is the authority; this is a client-held copy.
type Account struct {
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Admin   bool      `json:"isAdmin"`
	Created time.Time `json:"created"`
}

// Session ties a browser cookie token to an account.
type Session struct {
	Token   string    `json:"token"`
	Account *Account  `json:"account"`
	Created time.Time `json:"created"`
}

var (
	mutex    sync.RWMutex
	sessions = map[string]*Session{}
)

// Load rehydrates persisted sessions from local storage
func Load() {
	b, err := data.LoadFile(sessionsFile)
	if err != nil {
		return
	}

	mutex.Lock()
	defer mutex.Unlock()

	json.Unmarshal(b, &sessions)
}

func saveUnlocked() error {
	// Caller must hold mutex lock
	return data.SaveJSON(sessionsFile, sessions)
}

// GenerateToken creates a new opaque session token
func GenerateToken() string {
	id := uuid.New().String()
	return base64.StdEncoding.EncodeToString([]byte(id))
}

// ValidateToken checks that a token has the expected shape
func ValidateToken(tk string) error {
	dec, err := base64.StdEncoding.DecodeString(tk)
	if err != nil {
		return errors.New("invalid session")
	}

	_, err = uuid.Parse(string(dec))
	if err != nil {
		return errors.New("invalid session")
	}

	return nil
}

// Create stores a new session for the given account and returns its token.
// Persistence to local storage happens on this write path.
func Create(acc *Account) string {
	token := GenerateToken()

	mutex.Lock()
	sessions[token] = &Session{
		Token:   token,
		Account: acc,
		Created: time.Now(),
	}
	saveUnlocked()
	mutex.Unlock()

	return token
}

// Destroy removes a session. Cleared only by explicit logout.
func Destroy(token string) {
	mutex.Lock()
	delete(sessions, token)
	saveUnlocked()
	mutex.Unlock()
}

// Lookup returns the session for a token, if any
func Lookup(token string) *Session {
	mutex.RLock()
	defer mutex.RUnlock()
	return sessions[token]
}

// GetSession returns the session for the request's cookie
func GetSession(r *http.Request) (*Session, error) {
	c, err := r.Cookie("session")
	if err != nil || c == nil {
		return nil, errors.New("session not found")
	}

	if err := ValidateToken(c.Value); err != nil {
		return nil, err
	}

	sess := Lookup(c.Value)
	if sess == nil {
		return nil, errors.New("session not found")
	}

	return sess, nil
}

// TrySession returns the session and account when present, nils otherwise
func TrySession(r *http.Request) (*Session, *Account) {
	sess, err := GetSession(r)
	if err != nil {
		return nil, nil
	}
	return sess, sess.Account
}

// RequireSession returns the session and account or an error when absent
func RequireSession(r *http.Request) (*Session, *Account, error) {
	sess, err := GetSession(r)
	if err != nil {
		return nil, nil, err
	}
	return sess, sess.Account, nil
}

// RequireAdmin returns the session and account, failing for non-admins
func RequireAdmin(r *http.Request) (*Session, *Account, error) {
	sess, acc, err := RequireSession(r)
	if err != nil {
		return nil, nil, err
	}
	if !acc.Admin {
		return nil, nil, errors.New("admin access required")
	}
	return sess, acc, nil
}

// SetCookie attaches the session token to the response
func SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// ClearCookie removes the session cookie
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   "session",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
