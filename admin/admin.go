package admin

import (
	"net/http"

	"hub/app"
	"hub/auth"
)

// AdminHandler shows the admin index page
func AdminHandler(w http.ResponseWriter, r *http.Request) {
	_, _, err := auth.RequireAdmin(r)
	if err != nil {
		app.Forbidden(w, r, "Admin access required")
		return
	}

	content := `<h2>Admin</h2>
<ul>
<li><a href="/inbox">Contact Message Inbox</a></li>
<li><a href="/admin/apilog">External API Call Log</a></li>
<li><a href="/admin/syslog">System Log</a></li>
<li><a href="/admin/env">Environment Variables</a></li>
</ul>`

	html := app.RenderHTMLForRequest("Admin", "Administration", content, w, r)
	w.Write([]byte(html))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
