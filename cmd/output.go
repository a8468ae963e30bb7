package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/templar-breakpoints/internal/errors"
)

// encode renders v as JSON or YAML.
func encode(format string, v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "json":
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(v); err != nil {
			return nil, err
		}
	case "yaml":
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return nil, err
		}
		if err := encoder.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return buf.Bytes(), nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapIO(err, errors.ErrCodeInvalidPath, "failed to create output directory").WithFile(dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapIO(err, errors.ErrCodeInvalidPath, "failed to write output").WithFile(path)
	}
	return nil
}
