package html

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Modal describes one dialog: its identity, declared parameters and
// presentation flags. Descriptors are built per render pass by the view
// logic and have no life beyond it; the client-side loader later fills any
// data attributes still missing from the query string before showing the
// dialog.
type Modal struct {
	ID             string   `mapstructure:"id"`
	Classes        []string `mapstructure:"classes"`
	Title          string   `mapstructure:"title"`
	RequiredParams []string `mapstructure:"required_params"`
	OptionalParams []string `mapstructure:"optional_params"`
	Footer         bool     `mapstructure:"footer"`
	Scrollable     bool     `mapstructure:"scrollable"`
	Large          bool     `mapstructure:"large"`
	Center         bool     `mapstructure:"center"`
}

// ModalFromMap decodes a loosely-typed descriptor (view config, fixtures)
// into a Modal.
func ModalFromMap(m map[string]interface{}) (*Modal, error) {
	var modal Modal
	if err := mapstructure.Decode(m, &modal); err != nil {
		return nil, err
	}
	return &modal, nil
}

// AllParams returns the union of required and optional parameter names,
// order-preserving and duplicate-free.
func (m *Modal) AllParams() []string {
	seen := make(map[string]bool, len(m.RequiredParams)+len(m.OptionalParams))
	var all []string
	for _, name := range m.RequiredParams {
		if !seen[name] {
			seen[name] = true
			all = append(all, name)
		}
	}
	for _, name := range m.OptionalParams {
		if !seen[name] {
			seen[name] = true
			all = append(all, name)
		}
	}
	return all
}

// ClassList returns the descriptor's extra classes as one token string.
func (m *Modal) ClassList() string {
	return strings.Join(m.Classes, " ")
}

// DialogClass returns the dialog-box class list with the modifier classes
// toggled by the presentation flags.
func (m *Modal) DialogClass() string {
	classes := []string{"modal-dialog"}
	if m.Scrollable {
		classes = append(classes, "modal-dialog-scrollable")
	}
	if m.Large {
		classes = append(classes, "modal-lg")
	}
	if m.Center {
		classes = append(classes, "modal-dialog-centered")
	}
	return strings.Join(classes, " ")
}

var dataAttrName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// DataAttrs emits the declared-parameter surface of the modal element:
// data-required-params and data-optional-params carry the raw sequences
// (comma-joined, declared order), and each declared parameter gets a
// data-<name> attribute resolved against ctx. Every attribute is present
// even when its value is empty.
func (m *Modal) DataAttrs(ctx map[string]interface{}) template.HTMLAttr {
	var b strings.Builder
	writeAttr := func(name, value string) {
		b.WriteString(fmt.Sprintf(`data-%s="%s" `, name, template.HTMLEscapeString(value)))
	}
	writeAttr("required-params", strings.Join(m.RequiredParams, ","))
	writeAttr("optional-params", strings.Join(m.OptionalParams, ","))
	for _, name := range m.AllParams() {
		if !dataAttrName.MatchString(name) {
			log.Printf("Modal %q: skipping parameter %q (not a valid attribute name)", m.ID, name)
			continue
		}
		writeAttr(name, MapToContext(name, ctx))
	}
	return template.HTMLAttr(strings.TrimRight(b.String(), " "))
}

// Override points a consuming template may redefine on the modal skeleton.
var modalBlocks = map[string]bool{
	"classes": true,
	"outer":   true,
	"content": true,
	"header":  true,
	"title":   true,
	"alerts":  true,
	"body":    true,
	"footer":  true,
}

// RenderModal renders the modal skeleton against ctx. overrides maps block
// names to template source replacing that block. Unknown block names are an
// error; unresolved params degrade to "" rather than failing the render.
func (t *Template) RenderModal(m *Modal, ctx map[string]interface{}, overrides map[string]string) (template.HTML, error) {
	tmpl := t.Templates
	if len(overrides) > 0 {
		base := t.pristine
		if base == nil {
			base = t.Templates
		}
		clone, err := base.Clone()
		if err != nil {
			return "", err
		}
		for block, src := range overrides {
			if !modalBlocks[block] {
				return "", fmt.Errorf("unknown modal block %q", block)
			}
			if _, err := clone.Parse(fmt.Sprintf(`{{define %q}}%s{{end}}`, block, src)); err != nil {
				return "", fmt.Errorf("parse override for block %q: %w", block, err)
			}
		}
		tmpl = clone
	}
	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "modal", map[string]interface{}{
		"Modal":   m,
		"Context": ctx,
	})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
