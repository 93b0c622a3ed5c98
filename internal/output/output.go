// Package output renders CLI results in the configured format.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Format defines the output format for CLI commands.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// globalFormat is set by the root command's --output flag.
var globalFormat = FormatText

// SetFormat sets the global output format.
func SetFormat(format string) {
	switch format {
	case "json":
		globalFormat = FormatJSON
	case "yaml":
		globalFormat = FormatYAML
	default:
		globalFormat = FormatText
	}
}

// GetFormat returns the current global output format.
func GetFormat() Format {
	return globalFormat
}

// IsStructured reports whether results render as JSON/YAML. Commands use it
// to suppress human-friendly messages in structured mode.
func IsStructured() bool {
	return globalFormat == FormatJSON || globalFormat == FormatYAML
}

// Render writes data to stdout in the configured format.
func Render(data any) error {
	return RenderTo(os.Stdout, globalFormat, data)
}

// RenderTo writes data to the given writer in the specified format.
func RenderTo(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
