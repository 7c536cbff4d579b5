package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"nowgo/internal/report"
)

// WriteYAML dumps the payload as YAML. The dump is a faithful snapshot of
// the assembled report, suitable for re-rendering with `nowgo export`.
func WriteYAML(p report.Payload, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	return enc.Close()
}

// SavePayload writes the YAML snapshot to path, creating the directory
// if needed.
func SavePayload(p report.Payload, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteYAML(p, f); err != nil {
		return err
	}
	return f.Close()
}

// LoadPayload reads a YAML snapshot produced by SavePayload.
func LoadPayload(path string) (report.Payload, error) {
	var p report.Payload
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("decode payload: %w", err)
	}
	return p, nil
}
