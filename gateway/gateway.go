package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"hub/app"
	"hub/auth"
)

// Message is a contact message as served by the remote API.
type Message struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
}

// httpClient is the shared HTTP client. No explicit timeout; the remote
// call either completes or the caller's control stays pending.
var httpClient = &http.Client{}

// Client calls the remote contact/auth service. It holds no state beyond
// the base URL; every method is a single request/response pair with no
// retries.
type Client struct {
	BaseURL string
}

// New returns a client for the API at HUB_API_URL
// (default http://localhost:5000).
func New() *Client {
	base := os.Getenv("HUB_API_URL")
	if base == "" {
		base = "http://localhost:5000"
	}
	return &Client{BaseURL: base}
}

// do performs one request and returns the status code and response body.
// The call is recorded in the API log either way.
func (c *Client) do(service, method, path string, payload interface{}) (int, []byte, error) {
	apiURL := c.BaseURL + path

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, apiURL, reqBody)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		app.RecordAPICall(service, method, apiURL, 0, time.Since(start), err)
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		app.RecordAPICall(service, method, apiURL, resp.StatusCode, time.Since(start), err)
		return resp.StatusCode, nil, err
	}

	var callErr error
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		callErr = fmt.Errorf("%s returned status %d", service, resp.StatusCode)
	}
	app.RecordAPICall(service, method, apiURL, resp.StatusCode, time.Since(start), callErr)

	return resp.StatusCode, body, nil
}

// Authenticate logs in with the remote service and returns the identity.
func (c *Client) Authenticate(email, password string) (*auth.Account, error) {
	status, body, err := c.do("contact_api", "POST", "/api/users/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, &AuthError{Message: "Login failed"}
	}
	if status < 200 || status >= 300 {
		return nil, &AuthError{Message: serverMessage(body, "Login failed")}
	}

	var acc auth.Account
	if err := json.Unmarshal(body, &acc); err != nil {
		return nil, &AuthError{Message: "Login failed"}
	}

	return &acc, nil
}

// Register creates a new account with the remote service.
func (c *Client) Register(name, email, password string) error {
	status, body, err := c.do("contact_api", "POST", "/api/users/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return &RegistrationError{Message: "Registration failed"}
	}
	if status < 200 || status >= 300 {
		return &RegistrationError{Message: serverMessage(body, "Registration failed")}
	}

	return nil
}

// ListMessages retrieves the full contact message set. No pagination
// parameters exist; the server always returns everything.
func (c *Client) ListMessages() ([]Message, error) {
	status, body, err := c.do("contact_api", "GET", "/api/contact/", nil)
	if err != nil {
		return nil, &FetchError{Message: "Failed to fetch messages"}
	}
	if status < 200 || status >= 300 {
		return nil, &FetchError{Message: serverMessage(body, "Failed to fetch messages")}
	}

	var msgs []Message
	if err := json.Unmarshal(body, &msgs); err != nil {
		return nil, &FetchError{Message: "Failed to fetch messages"}
	}

	return msgs, nil
}

// SubmitMessage sends a contact message and returns the server confirmation.
func (c *Client) SubmitMessage(subject, phoneNumber, message, senderName, senderEmail string) (string, error) {
	status, body, err := c.do("contact_api", "POST", "/api/contact/", map[string]string{
		"subject":     subject,
		"phoneNumber": phoneNumber,
		"message":     message,
		"name":        senderName,
		"email":       senderEmail,
	})
	if err != nil {
		return "", &SubmitError{Message: "Failed to send message"}
	}
	if status < 200 || status >= 300 {
		return "", &SubmitError{Message: serverMessage(body, "Failed to send message")}
	}

	return serverMessage(body, "Message sent!"), nil
}

// ToggleRead flips a message's read flag server-side.
func (c *Client) ToggleRead(id string) error {
	status, body, err := c.do("contact_api", "PATCH", "/api/contact/"+id, nil)
	if err != nil {
		return &ToggleError{Message: "Failed to update message"}
	}
	if status < 200 || status >= 300 {
		return &ToggleError{Message: serverMessage(body, "Failed to update message")}
	}

	return nil
}

// DeleteMessage removes a message server-side.
func (c *Client) DeleteMessage(id string) error {
	status, body, err := c.do("contact_api", "DELETE", "/api/contact/"+id, nil)
	if err != nil {
		return &DeleteError{Message: "Failed to delete message"}
	}
	if status < 200 || status >= 300 {
		return &DeleteError{Message: serverMessage(body, "Failed to delete message")}
	}

	return nil
}
