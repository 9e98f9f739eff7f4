package generator

import (
	"fmt"
	"io"
	"os"

	"github.com/xll-gen/bintools/internal/templates"
)

// executeTemplate loads tmplName with the header funcs installed and executes it into w.
func executeTemplate(w io.Writer, tmplName string, data interface{}) error {
	t, err := templates.Parse(tmplName, GetHeaderFuncMap())
	if err != nil {
		return err
	}
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", tmplName, err)
	}
	return nil
}

// writeOutput creates or truncates path and writes content to it.
// A failed close is reported since the content may not have reached disk.
func writeOutput(path string, content []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
