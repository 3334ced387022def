// Package export renders store snapshots for backup and migration, and reads
// them back.
package export

import (
	"alcyxob/wellness-app/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Write encodes snap to w.
func Write(w io.Writer, snap domain.Snapshot, format Format) error {
	snap.Normalize()
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// Read decodes a snapshot written by Write. Absent fields keep their defaults.
func Read(r io.Reader, format Format) (domain.Snapshot, error) {
	var snap domain.Snapshot
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&snap); err != nil {
			return domain.Snapshot{}, fmt.Errorf("decode json snapshot: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&snap); err != nil && err != io.EOF {
			return domain.Snapshot{}, fmt.Errorf("decode yaml snapshot: %w", err)
		}
	default:
		return domain.Snapshot{}, fmt.Errorf("unsupported export format %q", format)
	}
	snap.Normalize()
	return snap, nil
}
