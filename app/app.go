package app

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"hub/auth"
)

//go:embed html/*
var htmlFiles embed.FS

var Template = `
<html>
  <head>
    <title>%s | Hub</title>
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <meta name="description" content="%s">
    <meta name="referrer" content="no-referrer"/>
    <link rel="stylesheet" href="/hub.css">
    <script src="/hub.js"></script>
  </head>
  <body>
    <div id="head">
      <div id="brand">
        <a href="/">Hub</a>
      </div>
      <div id="nav">%s</div>
    </div>
    <div id="container">
      <div id="content">%s</div>
    </div>
  </body>
</html>
`

// Render a markdown document as html
func Render(md []byte) []byte {
	// create markdown parser with extensions
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(md)

	// create HTML renderer with extensions
	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return markdown.Render(doc, renderer)
}

// RenderHTML renders the given html in the page template with the anonymous nav
func RenderHTML(title, desc, content string) string {
	return fmt.Sprintf(Template, title, desc, Nav(nil), content)
}

// RenderHTMLForRequest renders html with a nav derived from the request's
// session and any pending flash notification prepended to the content.
func RenderHTMLForRequest(title, desc, content string, w http.ResponseWriter, r *http.Request) string {
	_, acc := auth.TrySession(r)

	if flash := TakeFlash(w, r); flash != "" {
		content = flash + content
	}

	return fmt.Sprintf(Template, title, desc, Nav(acc), content)
}

// Nav builds the role-aware navigation links
func Nav(acc *auth.Account) string {
	links := `<a href="/">Home</a><a href="/about">About</a>`

	if acc == nil {
		return links + `<a href="/signup">Signup</a>`
	}

	links += `<a href="/dashboard">Dashboard</a>`

	if acc.Admin {
		links += `<a href="/inbox">Inbox</a><a href="/admin">Admin</a>`
	}

	return links + `<a href="/logout">Logout</a>`
}

// RenderString renders a markdown string as html
func RenderString(v string) string {
	return string(Render([]byte(v)))
}

func ServeHTML(html string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(html))
	})
}

// Serve serves the static content in app/html
func Serve() http.Handler {
	var staticFS = fs.FS(htmlFiles)
	htmlContent, err := fs.Sub(staticFS, "html")
	if err != nil {
		log.Fatal(err)
	}

	return http.FileServer(http.FS(htmlContent))
}
