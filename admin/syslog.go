package admin

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"hub/app"
	"hub/auth"
	"hub/data"
)

// SysLogHandler shows the persisted system log page.
func SysLogHandler(w http.ResponseWriter, r *http.Request) {
	_, _, err := auth.RequireAdmin(r)
	if err != nil {
		app.Forbidden(w, r, "Admin access required")
		return
	}

	entries, err := data.ListSysLog(200)
	if err != nil {
		// Fall back to the in-memory log when the database is unavailable.
		app.Log("admin", "Failed to load system log: %v", err)
		for _, e := range app.GetSysLog() {
			entries = append(entries, &data.SysLogLine{
				Time:    e.Time,
				Package: e.Package,
				Message: e.Message,
			})
		}
	}

	var content strings.Builder

	content.WriteString(`<div class="card">`)
	content.WriteString(fmt.Sprintf(`<h3>System Log <span class="count">%d</span></h3>`, len(entries)))

	if len(entries) == 0 {
		content.WriteString(`<p class="text-muted">No log entries yet.</p>`)
	} else {
		content.WriteString(`<table class="admin-table">`)
		content.WriteString(`<tr><th>Time</th><th>Package</th><th>Message</th></tr>`)

		for _, e := range entries {
			content.WriteString(fmt.Sprintf(`<tr>
				<td>%s</td>
				<td>%s</td>
				<td>%s</td>
			</tr>`,
				e.Time.Format("Jan 2 15:04:05"),
				e.Package,
				html.EscapeString(e.Message),
			))
		}

		content.WriteString(`</table>`)
	}

	content.WriteString(`</div>`)
	content.WriteString(`<p><a href="/admin">← Back to Admin</a></p>`)

	page := app.RenderHTMLForRequest("System Log", "System Log", content.String(), w, r)
	w.Write([]byte(page))
}
