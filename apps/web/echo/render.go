package echoweb

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/Khadar01822/pms-dashboard/core"
)

//go:embed templates/*.html
var templateFS embed.FS

type renderer struct {
	templates *template.Template
}

func newRenderer() *renderer {
	return &renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Page carries what every template needs besides its own data.
type Page struct {
	Title   string
	AppName string
	Theme   string
	Flashes []core.Notification
}

func (s *server) newPage(title string) Page {
	return Page{
		Title:   title,
		AppName: core.Conf.GetString("appName"),
		Theme:   s.opts.Prefs.Theme(),
		Flashes: s.opts.Flashes.Drain(),
	}
}
