package app

import (
	"html"
	"strconv"
)

// UI layout helpers for consistent rendering.
// Use these wrappers + hub.css classes.

// Empty renders an empty state message
func Empty(message string) string {
	return `<p class="empty">` + html.EscapeString(message) + `</p>`
}

// CardDiv wraps content in a card container
func CardDiv(content string) string {
	return `<div class="card">` + content + `</div>`
}

// Meta renders metadata text
func Meta(content string) string {
	return `<div class="card-meta">` + content + `</div>`
}

// Badge renders a count badge with a label
func Badge(label string, count int) string {
	return `<span class="badge">` + html.EscapeString(label) + ` <span class="count">` + strconv.Itoa(count) + `</span></span>`
}
