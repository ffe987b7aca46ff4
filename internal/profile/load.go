package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/password-guesser/internal/schemas"
	"github.com/jonathan/password-guesser/internal/types"
	embedded "github.com/jonathan/password-guesser/schemas"
)

// Format is the encoding of a profile file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported profile extension %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Load reads and validates the profile at path.
func Load(path string) (*types.Profile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "unknown format", Cause: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	p, err := Parse(data, format)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}
	return p, nil
}

// Parse decodes and validates profile content. JSON is checked against the embedded
// schema first; YAML rejects unknown fields while decoding.
func Parse(data []byte, format Format) (*types.Profile, error) {
	var p types.Profile

	switch format {
	case FormatJSON:
		if err := schemas.ValidateBytes(embedded.Profile, data); err != nil {
			return nil, &LoadError{Message: "schema validation failed", Cause: err}
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, &LoadError{Message: "failed to parse JSON", Cause: err}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
		}
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported format %q", format)}
	}

	if err := p.Validate(); err != nil {
		return nil, &LoadError{Message: "invalid profile", Cause: err}
	}
	return &p, nil
}
