// SPDX-License-Identifier: MIT
// File: format.go
// Role: document formats, options, and the marshal/unmarshal switch.

package layout

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/partgraph/core"
)

var (
	// ErrFormat indicates an unknown format name or file extension.
	ErrFormat = errors.New("layout: unknown format")
	// ErrDecode indicates a document that is not well-formed for its format.
	ErrDecode = errors.New("layout: malformed document")
)

// Format selects the document syntax.
type Format int

const (
	// FormatYAML is the default.
	FormatYAML Format = iota
	// FormatJSON emits indented JSON.
	FormatJSON
)

// DefaultFormat is used when no WithFormat option is given.
const DefaultFormat = FormatYAML

const jsonIndent = "  "

// String returns "yaml" or "json".
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat is the inverse of String; "yml" is accepted as well.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrFormat)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("FormatFromPath(%q): no extension: %w", path, ErrFormat)
	}

	return ParseFormat(ext)
}

// Option configures encoding and decoding.
type Option func(*config)

type config struct {
	format Format
	graph  []core.GraphOption
}

// WithFormat selects the document syntax.
func WithFormat(f Format) Option {
	if f != FormatYAML && f != FormatJSON {
		panic(fmt.Sprintf("layout: WithFormat(%d)", int(f)))
	}

	return func(c *config) { c.format = f }
}

// WithGraphOptions passes options to the graph built while decoding. They
// are applied after the storage named by the document, so an explicit
// core.WithStorage wins.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *config) { c.graph = append(c.graph, opts...) }
}

func newConfig(opts []Option) config {
	cfg := config{format: DefaultFormat}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

func (c config) marshal(v any) ([]byte, error) {
	if c.format == FormatJSON {
		return json.MarshalIndent(v, "", jsonIndent)
	}

	return yaml.Marshal(v)
}

func (c config) unmarshal(data []byte, v any) error {
	var err error
	if c.format == FormatJSON {
		err = json.Unmarshal(data, v)
	} else {
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("%s: %v: %w", c.format, err, ErrDecode)
	}

	return nil
}
