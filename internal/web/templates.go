package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/justestif/go-mood-playlists/internal/db"
	"github.com/justestif/go-mood-playlists/internal/detect"
	"github.com/justestif/go-mood-playlists/internal/mood"
)

// Templates manages HTML template rendering.
type Templates struct {
	templates map[string]*template.Template
	partials  map[string]*template.Template
	funcs     template.FuncMap
}

// NewTemplates creates a new template manager by loading templates from the given filesystem.
func NewTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{
		templates: make(map[string]*template.Template),
		partials:  make(map[string]*template.Template),
		funcs:     defaultFuncs(),
	}

	if err := t.load(templatesFS); err != nil {
		return nil, err
	}

	return t, nil
}

// Render renders a page template with the given data.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.templates[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}

	// Execute the "base" template which includes the page content
	return tmpl.ExecuteTemplate(w, "base", data)
}

// RenderPartial renders a partial template (without base layout) with the given data.
func (t *Templates) RenderPartial(w io.Writer, partial string, data any) error {
	tmpl, ok := t.partials[partial]
	if !ok {
		return fmt.Errorf("partial %q not found", partial)
	}
	return tmpl.Execute(w, data)
}

// load parses all templates from the filesystem.
func (t *Templates) load(templatesFS fs.FS) error {
	layoutPattern := "layouts/*.html"
	layouts, err := fs.Glob(templatesFS, layoutPattern)
	if err != nil {
		return fmt.Errorf("finding layouts: %w", err)
	}

	partialPattern := "partials/*.html"
	partials, err := fs.Glob(templatesFS, partialPattern)
	if err != nil {
		return fmt.Errorf("finding partials: %w", err)
	}

	pagePattern := "pages/*.html"
	pages, err := fs.Glob(templatesFS, pagePattern)
	if err != nil {
		return fmt.Errorf("finding pages: %w", err)
	}

	// Common files to include with every page
	commonFiles := append(layouts, partials...)

	for _, page := range pages {
		name := filepath.Base(page)
		name = name[:len(name)-len(".html")] // Remove .html extension

		files := append([]string{page}, commonFiles...)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		t.templates[name] = tmpl
	}

	// Partials also render standalone as HTMX fragments
	for _, partial := range partials {
		name := filepath.Base(partial)
		name = name[:len(name)-len(".html")] // Remove .html extension

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, partial)
		if err != nil {
			return fmt.Errorf("parsing partial %s: %w", name, err)
		}
		t.partials[name] = tmpl
	}

	return nil
}

// emotionEmojis decorates raw emotions and mood buckets in results.
var emotionEmojis = map[string]string{
	"happy":     "😊",
	"joy":       "😊",
	"sad":       "😢",
	"angry":     "😠",
	"fear":      "😨",
	"surprise":  "😲",
	"neutral":   "😐",
	"disgust":   "🤢",
	"love":      "😍",
	"excited":   "🤩",
	"calm":      "😌",
	"energetic": "⚡",
	"chill":     "😎",
	"dark":      "🖤",
	"romantic":  "💕",
}

// defaultFuncs returns the default template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		// title capitalizes labels; a Caser is not safe to share.
		"title": func(s string) string {
			return cases.Title(language.English).String(s)
		},

		// emoji prefers the raw emotion, then the mood, then a note.
		"emoji": func(emotion string, bucket mood.Bucket) string {
			if e, ok := emotionEmojis[emotion]; ok {
				return e
			}
			if e, ok := emotionEmojis[string(bucket)]; ok {
				return e
			}
			return "🎵"
		},

		"describe": mood.Description,

		// formatTime formats a time as "Jan 2, 15:04"
		"formatTime": func(t time.Time) string {
			return t.Format("Jan 2, 15:04")
		},

		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}
}

// PageData contains common data passed to all page templates.
type PageData struct {
	Title       string
	CurrentPath string
}

// HomePageData contains data for the home page template.
type HomePageData struct {
	PageData
	FacialEnabled bool
	LivePlaylists bool
	Recent        []db.Detection
}

// ResultData is rendered by the result partial. Exactly one of Result and
// Error is set.
type ResultData struct {
	Result *detect.Result
	Error  string
}
