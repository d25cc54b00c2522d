package admin

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"hub/app"
	"hub/auth"
)

// knownEnvVars lists the environment variables the application may use.
// Values are never shown; only whether each variable is set.
var knownEnvVars = []string{
	"HUB_API_URL",
	"DATA_DIR",
}

// EnvHandler shows which environment variables are configured (without leaking values).
func EnvHandler(w http.ResponseWriter, r *http.Request) {
	_, _, err := auth.RequireAdmin(r)
	if err != nil {
		app.Forbidden(w, r, "Admin access required")
		return
	}

	var content strings.Builder
	content.WriteString(`<div class="card">`)
	content.WriteString(`<h3>Environment Variables</h3>`)
	content.WriteString(`<p class="text-muted">Shows whether each variable is set. Values are never displayed.</p>`)
	content.WriteString(`<table class="admin-table">`)
	content.WriteString(`<thead><tr><th>Variable</th><th>Status</th></tr></thead><tbody>`)

	for _, name := range knownEnvVars {
		val := os.Getenv(name)
		status := `<span style="color:#c0392b;">✗ not set</span>`
		if val != "" {
			status = fmt.Sprintf(`<span style="color:#27ae60;">✓ set (%d chars)</span>`, len(val))
		}
		content.WriteString(fmt.Sprintf(`<tr><td><code>%s</code></td><td>%s</td></tr>`, name, status))
	}

	content.WriteString(`</tbody></table>`)
	content.WriteString(`</div>`)
	content.WriteString(`<p><a href="/admin">← Back to Admin</a></p>`)

	pageHTML := app.RenderHTMLForRequest("Env Vars", "Environment Variables", content.String(), w, r)
	w.Write([]byte(pageHTML))
}
