package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format selects how command results are written.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// Structured writes values as indented JSON or YAML.
type Structured struct {
	Format Format
	Out    io.Writer
}

func (s *Structured) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return color.Output
}

func (s *Structured) Print(v any) error {
	switch s.Format {
	case FormatYAML:
		enc := yaml.NewEncoder(s.out())
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("printers: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(s.out())
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("printers: encode json: %w", err)
		}
		return nil
	}
}
