// Package output provides context-aware output for ghu.
// Stdout is used for primary data output (tables, JSON, YAML).
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type ctxKey struct{}

// Format selects how structured data is written.
type Format int

const (
	// FormatTable is the default human-readable output.
	FormatTable Format = iota
	// FormatJSON writes indented JSON.
	FormatJSON
	// FormatYAML writes YAML.
	FormatYAML
)

// FormatFromFlags maps the --json/--yaml flag pair to a Format.
func FormatFromFlags(jsonOut, yamlOut bool) (Format, error) {
	switch {
	case jsonOut && yamlOut:
		return FormatTable, fmt.Errorf("--json and --yaml are mutually exclusive")
	case jsonOut:
		return FormatJSON, nil
	case yamlOut:
		return FormatYAML, nil
	}
	return FormatTable, nil
}

// Printer writes primary output (data, tables, JSON, YAML) to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{w: w})
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// JSON writes v as indented JSON followed by a newline.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func (p *Printer) YAML(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Encode writes v in the structured format f. FormatTable is rejected since
// tables need command-specific rendering.
func (p *Printer) Encode(f Format, v any) error {
	switch f {
	case FormatJSON:
		return p.JSON(v)
	case FormatYAML:
		return p.YAML(v)
	}
	return fmt.Errorf("format %d is not a structured format", f)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
