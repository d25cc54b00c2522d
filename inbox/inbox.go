package inbox

import (
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"hub/app"
	"hub/auth"
	"hub/gateway"
)

var client *gateway.Client

// Load initialises the inbox's API client
func Load() {
	client = gateway.New()
}

// Handler serves the admin inbox at /inbox.
// Only admins proceed: anonymous visitors go to the login page, signed-in
// non-admins to their dashboard.
func Handler(w http.ResponseWriter, r *http.Request) {
	_, acc := auth.TrySession(r)
	if acc == nil {
		http.Redirect(w, r, "/", 302)
		return
	}
	if !acc.Admin {
		http.Redirect(w, r, "/dashboard", 302)
		return
	}

	if r.Method == "POST" {
		handleAction(w, r)
		return
	}

	state := NewState()

	msgs, err := client.ListMessages()
	if err != nil {
		// Known gap: the initial fetch failure is only logged, leaving the
		// admin looking at an empty inbox.
		app.Log("inbox", "Error fetching messages: %v", err)
	} else {
		state.SetMessages(msgs)
	}

	state.SwitchView(View(r.URL.Query().Get("view")))
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		state.SetPage(p)
	}
	if id := r.URL.Query().Get("id"); id != "" {
		state.Select(id)
	}

	content := renderInbox(state)
	page := app.RenderHTMLForRequest("Inbox", "Manage contact messages and inquiries", content, w, r)
	w.Write([]byte(page))
}

// handleAction processes toggle-read and delete form posts, then redirects
// back to the inbox so the next render re-fetches the whole set.
func handleAction(w http.ResponseWriter, r *http.Request) {
	action := r.FormValue("action")
	id := r.FormValue("id")
	view := r.FormValue("view")
	page := r.FormValue("page")
	open := r.FormValue("open")

	if id == "" {
		app.BadRequest(w, r, "Message ID required")
		return
	}

	switch action {
	case "toggle":
		if err := client.ToggleRead(id); err != nil {
			// The detail view stays open on failure.
			app.Log("inbox", "Error toggling read status: %v", err)
			http.Redirect(w, r, inboxURL(view, page, open), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, inboxURL(view, page, ""), http.StatusSeeOther)

	case "delete":
		// The UI never offers delete for unread messages; reject crafted
		// posts too so the read-then-delete workflow holds.
		msgs, err := client.ListMessages()
		if err != nil {
			app.Log("inbox", "Error fetching messages: %v", err)
			http.Redirect(w, r, inboxURL(view, page, open), http.StatusSeeOther)
			return
		}
		var target *gateway.Message
		for i := range msgs {
			if msgs[i].ID == id {
				target = &msgs[i]
				break
			}
		}
		if target == nil {
			http.Redirect(w, r, inboxURL(view, page, open), http.StatusSeeOther)
			return
		}
		if !CanDelete(target) {
			app.Flash(w, "error", "Unread messages must be read before they can be deleted")
			http.Redirect(w, r, inboxURL(view, page, open), http.StatusSeeOther)
			return
		}

		if err := client.DeleteMessage(id); err != nil {
			app.Log("inbox", "Error deleting message: %v", err)
			http.Redirect(w, r, inboxURL(view, page, open), http.StatusSeeOther)
			return
		}

		// Close the detail view when the deleted message was the one open.
		if open == id {
			open = ""
		}
		http.Redirect(w, r, inboxURL(view, page, open), http.StatusSeeOther)

	default:
		app.BadRequest(w, r, "Invalid action")
	}
}

// inboxURL builds an inbox address preserving view, page and open detail.
func inboxURL(view, page, id string) string {
	q := url.Values{}
	if view != "" {
		q.Set("view", view)
	}
	if page != "" {
		q.Set("page", page)
	}
	if id != "" {
		q.Set("id", id)
	}
	if len(q) == 0 {
		return "/inbox"
	}
	return "/inbox?" + q.Encode()
}

func renderInbox(s *State) string {
	var b strings.Builder

	b.WriteString(`<h2>Contact Messages</h2>`)
	b.WriteString(`<p class="text-muted">View and manage all contact form submissions`)
	b.WriteString(app.Badge("Unread", s.UnreadCount()))
	b.WriteString(app.Badge("Read", s.ReadCount()))
	b.WriteString(`</p>`)

	b.WriteString(renderTabs(s))

	msgs := s.PageMessages()
	if len(msgs) == 0 {
		if s.View() == ViewRead {
			b.WriteString(app.Empty("No read messages"))
		} else {
			b.WriteString(app.Empty("No unread messages"))
		}
	} else {
		b.WriteString(renderTable(s, msgs))
	}

	if s.ShowPagination() {
		b.WriteString(renderPagination(s))
	}

	if m := s.Selected(); m != nil {
		b.WriteString(renderDetail(s, m))
	}

	return b.String()
}

func renderTabs(s *State) string {
	unreadClass, readClass := "active", ""
	if s.View() == ViewRead {
		unreadClass, readClass = "", "active"
	}

	// Tab links carry no page parameter: switching views lands on page 1.
	return fmt.Sprintf(`<div class="tabs">
<a href="/inbox?view=unread" class="%s">Unread Messages</a>
<a href="/inbox?view=read" class="%s">Read Messages</a>
</div>`, unreadClass, readClass)
}

func renderTable(s *State, msgs []gateway.Message) string {
	var b strings.Builder

	b.WriteString(`<table class="data-table">`)
	b.WriteString(`<thead><tr><th>Name</th><th>Email</th><th>Subject</th><th>Date</th><th>Actions</th></tr></thead>`)
	b.WriteString(`<tbody>`)

	view := string(s.View())
	page := strconv.Itoa(s.Page())

	for _, m := range msgs {
		viewLink := fmt.Sprintf(`<a href="%s">view</a>`, inboxURL(view, page, m.ID))

		deleteForm := ""
		if CanDelete(&m) {
			deleteForm = fmt.Sprintf(`<form method="POST" action="/inbox" onsubmit="return confirm('Delete this message?');">
<input type="hidden" name="action" value="delete">
<input type="hidden" name="id" value="%s">
<input type="hidden" name="view" value="%s">
<input type="hidden" name="page" value="%s">
<button type="submit" class="btn-delete">Delete</button>
</form>`, m.ID, view, page)
		}

		b.WriteString(fmt.Sprintf(`<tr>
<td>%s</td>
<td>%s</td>
<td>%s</td>
<td class="card-meta">%s</td>
<td class="actions">%s %s</td>
</tr>`,
			html.EscapeString(m.Name),
			html.EscapeString(m.Email),
			html.EscapeString(truncateSubject(m.Subject)),
			m.CreatedAt.Format("Jan 2, 2006"),
			viewLink,
			deleteForm))
	}

	b.WriteString(`</tbody></table>`)
	return b.String()
}

func renderPagination(s *State) string {
	var b strings.Builder

	view := string(s.View())
	page := s.Page()
	total := s.TotalPages()

	b.WriteString(`<div class="pagination">`)

	if page > 1 {
		b.WriteString(fmt.Sprintf(`<a href="%s">Previous</a>`, inboxURL(view, strconv.Itoa(page-1), "")))
	} else {
		b.WriteString(`<span class="disabled">Previous</span>`)
	}

	for i := 1; i <= total; i++ {
		if i == page {
			b.WriteString(fmt.Sprintf(`<span class="current">%d</span>`, i))
		} else {
			b.WriteString(fmt.Sprintf(`<a href="%s">%d</a>`, inboxURL(view, strconv.Itoa(i), ""), i))
		}
	}

	if page < total {
		b.WriteString(fmt.Sprintf(`<a href="%s">Next</a>`, inboxURL(view, strconv.Itoa(page+1), "")))
	} else {
		b.WriteString(`<span class="disabled">Next</span>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}

func renderDetail(s *State, m *gateway.Message) string {
	var b strings.Builder

	view := string(s.View())
	page := strconv.Itoa(s.Page())
	closeURL := inboxURL(view, page, "")

	status := "Unread"
	toggleLabel := "Mark as Read"
	if m.IsRead {
		status = "Read"
		toggleLabel = "Mark as Unread"
	}

	phone := ""
	if m.PhoneNumber != "" {
		phone = fmt.Sprintf(` · %s`, html.EscapeString(m.PhoneNumber))
	}

	received := "Unknown"
	if !m.CreatedAt.IsZero() {
		received = m.CreatedAt.Format("Jan 2, 2006, 3:04 PM")
	}

	b.WriteString(`<div class="modal-overlay"></div>`)
	b.WriteString(`<div class="modal">`)
	b.WriteString(fmt.Sprintf(`<span class="badge">%s</span>`, status))
	b.WriteString(fmt.Sprintf(`<h3>%s</h3>`, html.EscapeString(m.Subject)))

	b.WriteString(app.CardDiv(fmt.Sprintf(`<strong>%s</strong><br>
<a href="mailto:%s">%s</a>%s
%s`,
		html.EscapeString(m.Name),
		html.EscapeString(m.Email), html.EscapeString(m.Email), phone,
		app.Meta("Received: "+received))))

	b.WriteString(fmt.Sprintf(`<div class="message-body">%s</div>`, html.EscapeString(m.Message)))

	b.WriteString(`<div class="actions" style="margin-top:16px;">`)
	b.WriteString(fmt.Sprintf(`<form method="POST" action="/inbox">
<input type="hidden" name="action" value="toggle">
<input type="hidden" name="id" value="%s">
<input type="hidden" name="view" value="%s">
<input type="hidden" name="page" value="%s">
<input type="hidden" name="open" value="%s">
<button type="submit">%s</button>
</form>`, m.ID, view, page, m.ID, toggleLabel))

	if CanDelete(m) {
		b.WriteString(fmt.Sprintf(` <form method="POST" action="/inbox" onsubmit="return confirm('Delete this message?');">
<input type="hidden" name="action" value="delete">
<input type="hidden" name="id" value="%s">
<input type="hidden" name="view" value="%s">
<input type="hidden" name="page" value="%s">
<input type="hidden" name="open" value="%s">
<button type="submit" class="btn-delete">Delete Message</button>
</form>`, m.ID, view, page, m.ID))
	}

	b.WriteString(fmt.Sprintf(` <a href="%s" class="btn btn-outline">Close</a>`, closeURL))
	b.WriteString(`</div></div>`)

	return b.String()
}

func truncateSubject(s string) string {
	if len(s) > 60 {
		return s[:60] + "..."
	}
	return s
}
