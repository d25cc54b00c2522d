package contact

import (
	"fmt"
	"html"
	"net/http"

	sanitize "github.com/mrz1836/go-sanitize"

	"hub/app"
	"hub/auth"
	"hub/gateway"
)

var client *gateway.Client

// Load initialises the contact form's API client
func Load() {
	client = gateway.New()
}

// Handler serves the contact form at /dashboard for signed-in users.
func Handler(w http.ResponseWriter, r *http.Request) {
	_, acc := auth.TrySession(r)
	if acc == nil {
		http.Redirect(w, r, "/", 302)
		return
	}

	if r.Method == "POST" {
		handleSubmit(w, r, acc)
		return
	}

	content := renderForm("", "", "")
	page := app.RenderHTMLForRequest("Dashboard", "Send us a message", content, w, r)
	w.Write([]byte(page))
}

// handleSubmit sends one contact message. The sender's name and email come
// from the session, never from the form.
func handleSubmit(w http.ResponseWriter, r *http.Request, acc *auth.Account) {
	if err := r.ParseForm(); err != nil {
		app.BadRequest(w, r, "Failed to parse form")
		return
	}

	subject := sanitize.XSS(r.FormValue("subject"))
	phone := sanitize.SingleLine(r.FormValue("phoneNumber"))
	message := sanitize.XSS(r.FormValue("message"))

	confirmation, err := client.SubmitMessage(subject, phone, message, acc.Name, acc.Email)
	if err != nil {
		// Keep what the user typed so a transient failure loses nothing.
		content := app.Banner("error", err.Error()) + renderForm(subject, phone, message)
		page := app.RenderHTMLForRequest("Dashboard", "Send us a message", content, w, r)
		w.Write([]byte(page))
		return
	}

	// Success clears the fields.
	app.Flash(w, "success", confirmation)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func renderForm(subject, phone, message string) string {
	return fmt.Sprintf(`<h2>Send Us a Message</h2>
<form method="POST" action="/dashboard">
<label>Subject</label>
<input type="text" name="subject" value="%s" required placeholder="Subject of your message" class="form-input">
<label>Phone Number</label>
<input type="text" name="phoneNumber" value="%s" required placeholder="+123456789" class="form-input">
<label>Message</label>
<textarea name="message" rows="5" required placeholder="Write your message here..." class="form-input">%s</textarea>
<button type="submit">Send Message</button>
</form>`,
		html.EscapeString(subject),
		html.EscapeString(phone),
		html.EscapeString(message))
}
