package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/massalabs/attest/framework"
)

const defaultTitle = "attest"

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("results.html.tmpl").Funcs(templateFuncs()).ParseFS(templateFS, "templates/results.html.tmpl"),
)

// Page is the data rendered into the HTML report: a header, one entry per
// executed test and a footer with the summary.
type Page struct {
	Title     string
	RunID     string
	Timestamp time.Time
	Results   framework.Results
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"statusClass": func(passed bool) string {
			if passed {
				return "attest-passed"
			}
			return "attest-failed"
		},
		"statusText": func(passed bool) string {
			if passed {
				return "Passed!"
			}
			return "Failed!"
		},
	}
}

// WriteHTML renders page as a standalone HTML document.
func WriteHTML(w io.Writer, page Page) error {
	if page.Title == "" {
		page.Title = defaultTitle
	}
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}
