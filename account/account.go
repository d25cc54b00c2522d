package account

import (
	"fmt"
	"html"
	"net/http"

	"hub/app"
	"hub/auth"
	"hub/gateway"
)

var client *gateway.Client

// Load initialises the account handlers' API client
func Load() {
	client = gateway.New()
}

// Login serves the login page at / and handles login submissions.
// Signed-in visitors are sent to their dashboard.
func Login(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if r.Method == "POST" {
		handleLogin(w, r)
		return
	}

	if _, acc := auth.TrySession(r); acc != nil {
		http.Redirect(w, r, "/dashboard", 302)
		return
	}

	content := renderLoginForm("")
	page := app.RenderHTMLForRequest("Login", "Sign in to continue", content, w, r)
	w.Write([]byte(page))
}

func handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.BadRequest(w, r, "Failed to parse form")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	acc, err := client.Authenticate(email, password)
	if err != nil {
		// Surface the server message verbatim; the session stays anonymous.
		content := app.Banner("error", err.Error()) + renderLoginForm(email)
		page := app.RenderHTMLForRequest("Login", "Sign in to continue", content, w, r)
		w.Write([]byte(page))
		return
	}

	token := auth.Create(acc)
	auth.SetCookie(w, token)

	// Brief interstitial before landing on the dashboard.
	redirectAfterDelay(w, r, "Login", "Login successful! Redirecting...", "/dashboard")
}

// Signup serves the signup page and handles registration submissions.
func Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == "POST" {
		handleSignup(w, r)
		return
	}

	content := renderSignupForm("", "")
	page := app.RenderHTMLForRequest("Signup", "Create your account", content, w, r)
	w.Write([]byte(page))
}

func handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.BadRequest(w, r, "Failed to parse form")
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")

	// The only local validation: password confirmation. No network call
	// is made when it fails.
	if password != confirm {
		content := app.Banner("error", "Passwords do not match!") + renderSignupForm(name, email)
		page := app.RenderHTMLForRequest("Signup", "Create your account", content, w, r)
		w.Write([]byte(page))
		return
	}

	if err := client.Register(name, email, password); err != nil {
		content := app.Banner("error", err.Error()) + renderSignupForm(name, email)
		page := app.RenderHTMLForRequest("Signup", "Create your account", content, w, r)
		w.Write([]byte(page))
		return
	}

	redirectAfterDelay(w, r, "Signup", "Registration successful! Redirecting...", "/")
}

// Logout clears the session and returns to the login page.
func Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie("session"); err == nil && c != nil {
		auth.Destroy(c.Value)
	}
	auth.ClearCookie(w)
	http.Redirect(w, r, "/", 302)
}

// redirectAfterDelay renders an interstitial that forwards after a fixed
// delay, so the notification is seen before the next page.
func redirectAfterDelay(w http.ResponseWriter, r *http.Request, title, msg, target string) {
	content := fmt.Sprintf(`<meta http-equiv="refresh" content="2;url=%s">
%s
<p>Redirecting... <a href="%s">continue</a></p>`, target, app.Banner("success", msg), target)
	page := app.RenderHTMLForRequest(title, "Redirecting", content, w, r)
	w.Write([]byte(page))
}

func renderLoginForm(email string) string {
	return fmt.Sprintf(`<h2>Welcome Back</h2>
<p class="text-muted">Sign in to continue your journey</p>
<form method="POST" action="/">
<label>Email Address</label>
<input type="email" name="email" value="%s" required placeholder="you@example.com" class="form-input">
<label>Password</label>
<input type="password" name="password" required class="form-input">
<button type="submit">Sign In</button>
</form>
<p class="text-muted">Don't have an account? <a href="/signup">Sign up now</a></p>`,
		html.EscapeString(email))
}

func renderSignupForm(name, email string) string {
	return fmt.Sprintf(`<h2>Join Our Community</h2>
<p class="text-muted">Start your journey with us today</p>
<form method="POST" action="/signup">
<label>Full Name</label>
<input type="text" name="name" value="%s" required placeholder="John Doe" class="form-input">
<label>Email Address</label>
<input type="email" name="email" value="%s" required placeholder="you@example.com" class="form-input">
<label>Password</label>
<input type="password" name="password" required minlength="6" class="form-input">
<label>Confirm Password</label>
<input type="password" name="confirmPassword" required class="form-input">
<button type="submit">Sign Up Now</button>
</form>
<p class="text-muted">Already have an account? <a href="/">Log in instead</a></p>`,
		html.EscapeString(name), html.EscapeString(email))
}
