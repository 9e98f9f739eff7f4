// Package templates holds the embedded text templates used by the generators.
package templates

import (
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Header renders a C header with a single static byte array.
const Header = "header.h.tmpl"

// Get returns the raw content of the named template.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Parse loads the named template and parses it with funcs installed.
// A nil funcs is treated as empty.
func Parse(name string, funcs template.FuncMap) (*template.Template, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	if funcs == nil {
		funcs = template.FuncMap{}
	}
	t, err := template.New(name).Funcs(funcs).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return t, nil
}
