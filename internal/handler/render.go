package handler

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"snip/internal/domain"
)

const indexTemplate = "index.html"

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

var _ echo.Renderer = Renderer{}

// Renderer is the echo.Renderer for the html templates under templates/.
type Renderer struct{}

func (Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return templates.ExecuteTemplate(w, name, data)
}

// renderIndex writes the index view as JSON when the client asks for it and
// as HTML otherwise. The status code is the same for both.
func renderIndex(c echo.Context, status int, view domain.IndexView) error {
	if wantsJSON(c) {
		return c.JSON(status, view)
	}
	return c.Render(status, indexTemplate, view)
}

func wantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	if accept == "" {
		return false
	}
	jsonAt := strings.Index(accept, echo.MIMEApplicationJSON)
	htmlAt := strings.Index(accept, echo.MIMETextHTML)
	return jsonAt >= 0 && (htmlAt < 0 || jsonAt < htmlAt)
}

