package html

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/Eboreg/klaatu-go/core/urlutil"
)

//go:embed templates/*.html templates/widgets/*.html
var templatesFS embed.FS

type Template struct {
	Templates *template.Template
	// pristine is never executed; html/template refuses to Clone an
	// executed set, and block overrides need a clean clone per render.
	pristine *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewTemplate parses the embedded template set with the shared FuncMap.
func NewTemplate() *Template {
	parsed := template.Must(
		template.New("").Funcs(TemplateFuncs()).ParseFS(templatesFS, "templates/*.html", "templates/widgets/*.html"),
	)
	return &Template{
		Templates: parsed,
		pristine:  template.Must(parsed.Clone()),
	}
}

// MapToContext resolves a parameter name against the render context. A
// missing or nil entry yields "", never an error.
func MapToContext(name string, ctx map[string]interface{}) string {
	v, ok := ctx[name]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// TemplateFuncs returns the FuncMap shared by all templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"mapToContext": MapToContext,
		"joinParams":   urlutil.JoinList,
		"urljoin":      urlutil.Join,
		"joinQueryParams": func(path string, query url.Values, pairs ...string) string {
			overrides := make(map[string]string, len(pairs)/2)
			for i := 0; i+1 < len(pairs); i += 2 {
				overrides[pairs[i]] = pairs[i+1]
			}
			return urlutil.JoinQueryParams(path, query, overrides)
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"until": func(count int) []int {
			s := make([]int, count)
			for i := 0; i < count; i++ {
				s[i] = i
			}
			return s
		},
	}
}
