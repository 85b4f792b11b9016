package html

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"
)

// CheckboxWidget renders a single checkbox using the custom control layout.
// The label is set on the widget rather than on its field.
type CheckboxWidget struct {
	Name    string
	ID      string
	Label   string
	Checked bool
	Class   string
}

// InputClass always includes custom-control-input, plus any extra classes.
func (w *CheckboxWidget) InputClass() string {
	if w.Class == "" {
		return "custom-control-input"
	}
	return w.Class + " custom-control-input"
}

// CheckboxOption is one choice of a CheckboxSelectWidget.
type CheckboxOption struct {
	Value   string
	Label   string
	Checked bool
}

// CheckboxSelectWidget renders a multiple checkbox select.
//
// FieldWrapperClass is for a <div> wrapping the entire widget.
// OptionWrapperClass is for <div>s wrapping each individual checkbox.
//
// Responsive layout example:
//
//	CheckboxSelectWidget{
//		FieldWrapperClass:  "row",
//		OptionWrapperClass: "col-12 col-lg-6",
//	}
type CheckboxSelectWidget struct {
	Name               string
	Options            []CheckboxOption
	FieldWrapperClass  string
	OptionWrapperClass string
	Class              string
}

func (w *CheckboxSelectWidget) InputClass() string {
	if w.Class == "" {
		return "custom-control-input"
	}
	return w.Class + " custom-control-input"
}

// OptionID builds a stable element ID for an option.
func (w *CheckboxSelectWidget) OptionID(index int) string {
	return "id_" + w.Name + "_" + strconv.Itoa(index)
}

// RenderCheckbox renders a CheckboxWidget to markup.
func (t *Template) RenderCheckbox(w *CheckboxWidget) (template.HTML, error) {
	return t.renderFragment("widgets/custom_checkbox", w)
}

// RenderCheckboxSelect renders a CheckboxSelectWidget to markup.
func (t *Template) RenderCheckboxSelect(w *CheckboxSelectWidget) (template.HTML, error) {
	return t.renderFragment("widgets/custom_checkbox_select", w)
}

func (t *Template) renderFragment(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}
