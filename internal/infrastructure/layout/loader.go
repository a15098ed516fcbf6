// Package layout loads screen layouts from TOML or JSON files and watches them for edits.
package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/spatialnav/internal/domain/entity"
)

var (
	// ErrEmptyLayout is returned for a layout without elements.
	ErrEmptyLayout = errors.New("layout has no elements")
	// ErrDuplicateElementID is returned when two elements share an id.
	ErrDuplicateElementID = errors.New("duplicate element id")
	// ErrUnsupportedLayoutFormat is returned for file extensions other than .toml and .json.
	ErrUnsupportedLayoutFormat = errors.New("unsupported layout format")
)

// Format is a layout file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLayoutFormat, filepath.Ext(path))
	}
}

// Load reads, decodes and validates the layout at path.
func Load(path string) (*entity.Layout, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	l, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return l, nil
}

// Parse decodes and validates a layout. Unknown fields are rejected.
func Parse(data []byte, format Format) (*entity.Layout, error) {
	l := &entity.Layout{}
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(l); err != nil {
			return nil, fmt.Errorf("failed to decode toml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(l); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLayoutFormat, format)
	}

	if err := Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks a decoded layout. Every problem found is reported.
func Validate(l *entity.Layout) error {
	if l == nil || len(l.Elements) == 0 {
		return ErrEmptyLayout
	}

	var errs []error
	seen := make(map[string]int, len(l.Elements))
	for i, e := range l.Elements {
		if strings.TrimSpace(e.ID) == "" {
			errs = append(errs, fmt.Errorf("elements[%d]: id is required", i))
			continue
		}
		if first, ok := seen[e.ID]; ok {
			errs = append(errs, fmt.Errorf("%w: %q at elements[%d] and elements[%d]", ErrDuplicateElementID, e.ID, first, i))
			continue
		}
		seen[e.ID] = i
		if e.Width < 0 || e.Height < 0 {
			errs = append(errs, fmt.Errorf("elements[%d] %q: width and height must be non-negative", i, e.ID))
		}
	}
	if l.Width < 0 || l.Height < 0 {
		errs = append(errs, errors.New("layout width and height must be non-negative"))
	}
	return errors.Join(errs...)
}

// Schema returns the JSON schema of a layout file.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{FieldNameTag: "toml"}
	schema := r.Reflect(&entity.Layout{})
	schema.ID = "https://github.com/bnema/spatialnav/layout.schema.json"
	schema.Title = "spatialnav layout"
	schema.Description = "A screen of focusable elements positioned by their top-left corner"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// Bounds returns the layout canvas size, growing it to fit every element
// when the file leaves width or height unset.
func Bounds(l *entity.Layout) entity.Size {
	size := entity.Size{Width: l.Width, Height: l.Height}
	for _, e := range l.Elements {
		size.Width = max(size.Width, e.X+e.Width)
		size.Height = max(size.Height, e.Y+e.Height)
	}
	return size
}
