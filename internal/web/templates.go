package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/justestif/moodjukebox/internal/mood"
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
	layouts, err := fs.Glob(templatesFS, "layouts/*.html")
	if err != nil {
		return fmt.Errorf("finding layouts: %w", err)
	}

	partials, err := fs.Glob(templatesFS, "partials/*.html")
	if err != nil {
		return fmt.Errorf("finding partials: %w", err)
	}

	pages, err := fs.Glob(templatesFS, "pages/*.html")
	if err != nil {
		return fmt.Errorf("finding pages: %w", err)
	}

	// Common files to include with every page
	commonFiles := append(layouts, partials...)

	for _, page := range pages {
		name := trimExt(page)
		files := append([]string{page}, commonFiles...)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}
		t.templates[name] = tmpl
	}

	// Partials are named after their file so Execute runs the file's content.
	for _, partial := range partials {
		tmpl, err := template.New(filepath.Base(partial)).Funcs(t.funcs).ParseFS(templatesFS, partial)
		if err != nil {
			return fmt.Errorf("parsing partial %s: %w", trimExt(partial), err)
		}
		t.partials[trimExt(partial)] = tmpl
	}

	return nil
}

func trimExt(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".html")
}

// defaultFuncs returns the default template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		// gradientClass returns the utility classes of a mood's gradient.
		"gradientClass": func(m mood.Mood) string {
			return mood.Gradient(m).Class()
		},
	}
}

// PageData contains common data passed to all page templates.
type PageData struct {
	Title      string
	Background BackgroundData
}

// HomePageData contains data for the home page template.
type HomePageData struct {
	PageData
	Current mood.Mood
	Moods   []MoodLink
}

// MoodLink is one entry in the mood picker.
type MoodLink struct {
	Key    string
	Label  string
	Active bool
	Swatch template.CSS
}

// BackgroundData is the data for the background partial.
type BackgroundData struct {
	Scenes []SceneData
}

// SceneData is one mounted scene, entering or leaving.
type SceneData struct {
	Key           string
	Mood          string
	Class         string
	Entering      bool
	Exiting       bool
	FadeStyle     template.CSS
	GradientStyle template.CSS
	Stylesheet    template.CSS
	Groups        []GroupData
}

// GroupData is one particle group of a scene.
type GroupData struct {
	Name      string
	Glyph     string
	Particles []template.CSS
}
