// SPDX-License-Identifier: MIT
// File: app.go
// Role: shared CLI state: logger, document input and output.

package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/partgraph/core"
	"github.com/katalvlaran/partgraph/layout"
)

// stdio names standard input or output in place of a path.
const stdio = "-"

// docGraph is the CLI's view of any graph document: numeric edge weights,
// free-form node weights and meta-data.
type docGraph = core.Graph[float64, any, any]

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger

	logLevel  string
	logFormat string
	inFormat  string
	outFormat string
	output    string
}

// newLogger builds the command logger; unknown levels fall back to info.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// read loads a document and resolves its format: --in-format, then the
// file extension, then YAML.
func (a *app) read(path string) ([]byte, layout.Format, error) {
	var (
		data []byte
		err  error
	)
	if path == stdio {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	format, err := a.inputFormat(path)
	if err != nil {
		return nil, 0, err
	}
	a.log.Debug("document loaded", "path", path, "bytes", len(data), "format", format)

	return data, format, nil
}

func (a *app) inputFormat(path string) (layout.Format, error) {
	if a.inFormat != "" {
		return layout.ParseFormat(a.inFormat)
	}
	if path == stdio {
		return layout.DefaultFormat, nil
	}
	if f, err := layout.FormatFromPath(path); err == nil {
		return f, nil
	}

	return layout.DefaultFormat, nil
}

// outputFormat resolves --out-format, then the -o extension, then fallback.
func (a *app) outputFormat(fallback layout.Format) (layout.Format, error) {
	if a.outFormat != "" {
		return layout.ParseFormat(a.outFormat)
	}
	if a.output != "" && a.output != stdio {
		if f, err := layout.FormatFromPath(a.output); err == nil {
			return f, nil
		}
	}

	return fallback, nil
}

// write sends data to -o or standard output.
func (a *app) write(data []byte) error {
	if a.output == "" || a.output == stdio {
		_, err := io.Copy(a.out, bytes.NewReader(data))
		return err
	}
	if err := os.WriteFile(a.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", a.output, err)
	}
	a.log.Info("document written", "path", a.output, "bytes", len(data))

	return nil
}

func (a *app) readGraph(path string) (*docGraph, layout.Format, error) {
	data, format, err := a.read(path)
	if err != nil {
		return nil, 0, err
	}
	g, err := layout.DecodeGraph[float64, any, any](data, layout.WithFormat(format))
	if err != nil {
		return nil, 0, err
	}

	return g, format, nil
}

func (a *app) writeGraph(g *docGraph, fallback layout.Format) error {
	format, err := a.outputFormat(fallback)
	if err != nil {
		return err
	}
	data, err := layout.EncodeGraph(g, layout.WithFormat(format))
	if err != nil {
		return err
	}

	return a.write(data)
}
