package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"

	browserquery "github.com/tair/property-browser/internal/browser/usecase/query"
	selectorquery "github.com/tair/property-browser/internal/selector/usecase/query"
)

// Layout wraps every page; pages are injected with {{embed}}
const Layout = "layouts/main"

//go:embed templates
var templateFS embed.FS

// Page is the binding shared by every template
type Page struct {
	Lang       string
	Title      string
	View       *selectorquery.SelectorView
	Listing    *browserquery.Listing
	StatusCode int
	Message    string
}

// New creates the html engine over the embedded templates.
// Template names are paths below templates/ without the extension, e.g. "login".
func New() *html.Engine {
	engine := html.NewFileSystem(http.FS(templateFS), ".html")
	engine.Directory = "/templates"
	return engine
}
