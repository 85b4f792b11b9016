package html

import (
	"strings"
	"testing"
)

func TestRenderCheckbox(t *testing.T) {
	tmpl := NewTemplate()
	out, err := tmpl.RenderCheckbox(&CheckboxWidget{
		Name:    "accept",
		ID:      "id_accept",
		Label:   "Accept the terms",
		Checked: true,
	})
	if err != nil {
		t.Fatalf("RenderCheckbox: %v", err)
	}
	s := string(out)
	for _, want := range []string{
		`name="accept"`,
		`id="id_accept"`,
		`class="custom-control-input"`,
		` checked`,
		`for="id_accept"`,
		`Accept the terms`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("rendered checkbox missing %q:\n%s", want, s)
		}
	}
}

func TestCheckboxWidget_InputClassAppends(t *testing.T) {
	w := &CheckboxWidget{Class: "my-class"}
	if got := w.InputClass(); got != "my-class custom-control-input" {
		t.Errorf("InputClass = %q", got)
	}
}

func TestRenderCheckboxSelect(t *testing.T) {
	tmpl := NewTemplate()
	out, err := tmpl.RenderCheckboxSelect(&CheckboxSelectWidget{
		Name: "colors",
		Options: []CheckboxOption{
			{Value: "red", Label: "Red"},
			{Value: "green", Label: "Green", Checked: true},
		},
		FieldWrapperClass:  "row",
		OptionWrapperClass: "col-12 col-lg-6",
	})
	if err != nil {
		t.Fatalf("RenderCheckboxSelect: %v", err)
	}
	s := string(out)
	for _, want := range []string{
		`class="row"`,
		`class="col-12 col-lg-6"`,
		`name="colors"`,
		`id="id_colors_0"`,
		`id="id_colors_1"`,
		`value="red"`,
		`value="green"`,
		`custom-control-input`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("rendered select missing %q:\n%s", want, s)
		}
	}
	if strings.Count(s, " checked") != 1 {
		t.Errorf("want exactly one checked option:\n%s", s)
	}
}
