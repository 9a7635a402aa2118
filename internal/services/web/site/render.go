package site

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/state"
)

//go:embed templates
var templateFS embed.FS

// hxRequestHeader marks requests initiated by htmx; those get the page
// fragment instead of the full document.
const hxRequestHeader = "HX-Request"

func isHXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(hxRequestHeader), "true")
}

type renderer struct {
	pages  map[string]*template.Template
	logger *zap.Logger
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"markdown":          mustMarkdown,
		"sliceOf":           func(values ...string) []string { return values },
		"serviceCategories": catalog.ServiceCategories,
		"productCategories": catalog.ProductCategories,
	}
}

// navigationEffectsHeader carries the post-swap browser effects to htmx.
const navigationEffectsHeader = "HX-Trigger-After-Swap"

// writeNavigationEffects asks the browser to close the mobile menu and
// reset scroll once the new page content lands.
func writeNavigationEffects(w http.ResponseWriter, fx state.Effects) {
	payload, err := json.Marshal(map[string]state.Effects{"boyal:navigate": fx})
	if err != nil {
		return
	}
	w.Header().Set(navigationEffectsHeader, string(payload))
}

// newRenderer parses the layout, shared partials, and every page template.
// Each page gets its own set so pages can define "content" independently.
func newRenderer(logger *zap.Logger) (*renderer, error) {
	base := template.New("layout").Funcs(templateFuncs())
	base, err := base.ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout templates: %w", err)
	}

	pageFiles, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("list page templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		name := strings.TrimSuffix(path.Base(file), ".html")
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		set, err = set.ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = set
	}
	return &renderer{pages: pages, logger: logger}, nil
}

// renderPage writes the full document, or only the page content for htmx
// requests, with the given HTTP status.
func (rd *renderer) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	set, ok := rd.pages[page]
	if !ok {
		rd.logger.Error("unknown page template", zap.String("page", page))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	root := "layout"
	if isHXRequest(r) {
		root = "content"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := set.ExecuteTemplate(w, root, data); err != nil {
		rd.logger.Error("render page", zap.String("page", page), zap.Error(err))
	}
}

// renderPartial writes one named partial, used for htmx swaps of the chat
// widget and form sections.
func (rd *renderer) renderPartial(w http.ResponseWriter, page, partial string, data any) {
	set, ok := rd.pages[page]
	if !ok {
		rd.logger.Error("unknown page template", zap.String("page", page))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := set.ExecuteTemplate(w, partial, data); err != nil {
		rd.logger.Error("render partial", zap.String("partial", partial), zap.Error(err))
	}
}
