package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/flowers-cli/internal/application"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

func ParseFormat(raw string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(raw))); format {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (want json or yaml)", ErrUnsupportedFormat, raw)
	}
}

// Write encodes env to w, indented for humans.
func Write(w io.Writer, env application.Envelope, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(env)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(env); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}
