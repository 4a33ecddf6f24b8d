package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// WriteOutput writes v as indented JSON.
func WriteOutput(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(out io.Writer, v any) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// resolveFormat applies --json over a command's --format flag.
func resolveFormat(format string) (string, error) {
	if IsJSONOutput() {
		return formatJSON, nil
	}
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", formatTable:
		return formatTable, nil
	case formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}
