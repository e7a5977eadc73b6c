// Package view renders the HTML pages. Templates and static assets are
// embedded in the binary.
//
// Every page template defines a "content" block and is parsed into its own
// clone of the layout, so pages never see each other's blocks. Pages are
// parsed once at startup; a broken template fails New rather than the first
// request that uses it.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/explorekerinci/web/internal/adapters/http/dto"
	"github.com/explorekerinci/web/internal/adapters/http/middleware"
	"github.com/explorekerinci/web/internal/platform/logging"
	"github.com/explorekerinci/web/internal/platform/session"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Compile-time interface check.
var _ middleware.ErrorRenderer = (*Renderer)(nil)

// layoutFiles are parsed into every page.
var layoutFiles = []string{
	"templates/layout.html",
	"templates/partials/*.html",
}

// SiteName is appended to every page title.
const SiteName = "Explore Kerinci"

// FlashSource pops the one-shot notice queued for the visitor.
type FlashSource interface {
	PopFlash(w http.ResponseWriter, r *http.Request) *session.Flash
}

// Page is the data every template receives. Data holds the page's own view
// model.
type Page struct {
	Title   string
	Path    string
	Session *session.Session
	Flash   *session.Flash
	Data    any
}

// FullTitle is the document title.
func (p *Page) FullTitle() string {
	if p.Title == "" {
		return SiteName
	}
	return p.Title + " · " + SiteName
}

// Renderer renders named page templates.
type Renderer struct {
	pages map[string]*template.Template
	flash FlashSource
}

// New parses the layout and every page template. flash may be nil.
func New(flash FlashSource) (*Renderer, error) {
	base, err := template.New("").Funcs(Funcs()).ParseFS(templatesFS, layoutFiles...)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	err = fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") || isLayout(path) {
			return nil
		}
		tmpl, err := base.Clone()
		if err != nil {
			return fmt.Errorf("cloning layout for %s: %w", path, err)
		}
		if _, err := tmpl.ParseFS(templatesFS, path); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		pages[strings.TrimPrefix(path, "templates/")] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Renderer{pages: pages, flash: flash}, nil
}

func isLayout(path string) bool {
	return path == "templates/layout.html" || strings.HasPrefix(path, "templates/partials/")
}

// Has reports whether a page template exists.
func (rd *Renderer) Has(name string) bool {
	_, ok := rd.pages[name]
	return ok
}

// Render executes the page template into a buffer and writes it with the
// status. A template failure is logged and answered with a plain 500, since
// nothing has been written yet.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	tmpl, ok := rd.pages[name]
	if !ok {
		rd.fail(w, r, name, fmt.Errorf("unknown template %q", name))
		return
	}

	page := &Page{
		Title:   title,
		Path:    r.URL.Path,
		Session: session.FromContext(r.Context()),
		Data:    data,
	}
	if rd.flash != nil {
		page.Flash = rd.flash.PopFlash(w, r)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		rd.fail(w, r, name, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// RenderError renders the error page matching err's kind.
func (rd *Renderer) RenderError(w http.ResponseWriter, r *http.Request, err error) {
	page := dto.NewErrorPage(err)
	rd.Render(w, r, page.Status, "error.html", page.Title, page)
}

func (rd *Renderer) fail(w http.ResponseWriter, r *http.Request, name string, err error) {
	logging.FromContext(r.Context()).ErrorContext(r.Context(), "template render failed",
		slog.String("template", name),
		slog.Any("error", err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Static serves the embedded assets. Mount it under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	files := http.FileServer(http.FS(sub))
	return http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") || r.URL.Path == "" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	}))
}
