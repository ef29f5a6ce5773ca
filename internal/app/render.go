package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wirescreen/wirescreen-go/internal/config"
)

// render formats v as indented JSON or YAML.
func render(format string, v any) (string, error) {
	switch format {
	case config.OutputYAML:
		out, err := yaml.Marshal(plainNumbers(v))
		if err != nil {
			return "", fmt.Errorf("marshal yaml: %w", err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	case config.OutputJSON, "":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

// plainNumbers replaces json.Number values so YAML emits them unquoted.
func plainNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = plainNumbers(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plainNumbers(item)
		}
		return out
	default:
		return v
	}
}
