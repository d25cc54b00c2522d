package main

import (
	"flag"
	"fmt"
	"net/http"
	"strings"

	"github.com/joho/godotenv"

	"hub/account"
	"hub/admin"
	"hub/app"
	"hub/auth"
	"hub/contact"
	"hub/inbox"
)

var EnvFlag = flag.String("env", "dev", "Set the environment")
var ServeFlag = flag.Bool("serve", false, "Run the server")
var AddressFlag = flag.String("address", ":8080", "Address for server")

var aboutMarkdown = `# About Hub

Hub is the front door to our contact service. Sign up, log in and send us
a message from your dashboard; our team reads every submission.

## How it works

- Messages are stored by the contact service, not by this app.
- Admins review submissions in the inbox and mark them read.
- Read messages can be deleted once they have been handled.
`

func main() {
	_ = godotenv.Load()
	flag.Parse()

	if !*ServeFlag {
		fmt.Println("--serve not set")
		return
	}

	// render the about markdown
	aboutDoc := app.Render([]byte(aboutMarkdown))
	aboutHTML := app.RenderHTML("About", "About this service", string(aboutDoc))

	// rehydrate persisted sessions
	auth.Load()

	// wire up the remote API clients
	account.Load()
	contact.Load()
	inbox.Load()

	authenticated := map[string]bool{
		"/dashboard": true,
		"/logout":    true,
		"/inbox":     true,
		"/admin":     true,
		"/about":     false,
		"/signup":    false,
	}

	// Static assets should not require authentication
	staticPaths := []string{
		".css", ".js", ".png", ".ico", ".webmanifest", ".json",
	}

	// auth
	http.HandleFunc("/signup", account.Signup)
	http.HandleFunc("/logout", account.Logout)

	// contact form
	http.HandleFunc("/dashboard", contact.Handler)

	// admin inbox
	http.HandleFunc("/inbox", inbox.Handler)

	// admin pages
	http.HandleFunc("/admin", admin.AdminHandler)
	http.HandleFunc("/admin/apilog", admin.APILogHandler)
	http.HandleFunc("/admin/syslog", admin.SysLogHandler)
	http.HandleFunc("/admin/env", admin.EnvHandler)

	// serve the about doc
	http.Handle("/about", app.ServeHTML(aboutHTML))

	// static assets
	http.Handle("/hub.css", app.Serve())
	http.Handle("/hub.js", app.Serve())

	// login is the root
	http.HandleFunc("/", account.Login)

	fmt.Println("Starting server on", *AddressFlag)

	if err := http.ListenAndServe(*AddressFlag, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if *EnvFlag == "dev" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
		}

		if v := len(r.URL.Path); v > 1 && strings.HasSuffix(r.URL.Path, "/") {
			r.URL.Path = r.URL.Path[:v-1]
		}

		var token string

		// set via session
		if c, err := r.Cookie("session"); err == nil && c != nil {
			token = c.Value
		}

		// Check if static asset - skip authentication entirely
		isStaticAsset := false
		for _, ext := range staticPaths {
			if strings.HasSuffix(r.URL.Path, ext) {
				isStaticAsset = true
				break
			}
		}

		if !isStaticAsset {
			var isAuthed bool

			// Check if path requires authentication
			for url, authed := range authenticated {
				if strings.HasPrefix(r.URL.Path, url) {
					isAuthed = authed
					break
				}
			}

			// deny access if invalid
			if isAuthed {
				if err := auth.ValidateToken(token); err != nil {
					http.Redirect(w, r, "/", 302)
					return
				}
			}
		}

		http.DefaultServeMux.ServeHTTP(w, r)
	})); err != nil {
		fmt.Printf("Server error: %v\n", err)
		return
	}
}
