package admin

import (
	"fmt"
	"net/http"
	"strings"

	"hub/app"
	"hub/auth"
	"hub/data"
)

// APILogHandler shows the outbound API call log page.
func APILogHandler(w http.ResponseWriter, r *http.Request) {
	_, _, err := auth.RequireAdmin(r)
	if err != nil {
		app.Forbidden(w, r, "Admin access required")
		return
	}

	entries, err := data.ListAPICalls(100)
	if err != nil {
		// Fall back to the in-memory log when the database is unavailable.
		app.Log("admin", "Failed to load api call log: %v", err)
		for _, e := range app.GetAPILog() {
			entries = append(entries, &data.APICall{
				Time:     e.Time,
				Service:  e.Service,
				Method:   e.Method,
				URL:      e.URL,
				Status:   e.Status,
				Duration: e.Duration,
				Error:    e.Error,
			})
		}
	}

	var content strings.Builder

	content.WriteString(`<div class="card">`)
	content.WriteString(fmt.Sprintf(`<h3>External API Calls <span class="count">%d</span></h3>`, len(entries)))

	if len(entries) == 0 {
		content.WriteString(`<p class="text-muted">No API calls recorded yet.</p>`)
	} else {
		content.WriteString(`<table class="admin-table">`)
		content.WriteString(`<tr><th>Time</th><th>Service</th><th>Method</th><th>URL</th><th>Status</th><th>Duration</th><th>Error</th></tr>`)

		for _, e := range entries {
			statusLabel := fmt.Sprintf("%d", e.Status)
			if e.Status == 0 {
				statusLabel = "err"
			}

			errStr := ""
			if e.Error != "" {
				errStr = truncate(e.Error, 60)
			}

			content.WriteString(fmt.Sprintf(`<tr>
				<td>%s</td>
				<td>%s</td>
				<td>%s</td>
				<td title="%s">%s</td>
				<td>%s</td>
				<td>%dms</td>
				<td title="%s">%s</td>
			</tr>`,
				e.Time.Format("Jan 2 15:04:05"),
				e.Service,
				e.Method,
				e.URL, truncate(e.URL, 50),
				statusLabel,
				e.Duration.Milliseconds(),
				e.Error, errStr,
			))
		}

		content.WriteString(`</table>`)
	}

	content.WriteString(`</div>`)
	content.WriteString(`<p><a href="/admin">← Back to Admin</a></p>`)

	html := app.RenderHTMLForRequest("API Log", "External API Log", content.String(), w, r)
	w.Write([]byte(html))
}
