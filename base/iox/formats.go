// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a named encoding format.
type Format struct {
	Name    string
	Decoder DecoderFunc
	Encoder EncoderFunc
}

var (
	// TOML is the TOML format, which is the default for files with
	// no recognized extension.
	TOML = &Format{
		Name:    "toml",
		Decoder: NewDecoderFunc(toml.NewDecoder),
		Encoder: func(w io.Writer) Encoder { return toml.NewEncoder(w).SetIndentTables(true) },
	}

	// YAML is the YAML format.
	YAML = &Format{
		Name:    "yaml",
		Decoder: NewDecoderFunc(yaml.NewDecoder),
		Encoder: NewEncoderFunc(yaml.NewEncoder),
	}

	// JSON is the JSON format, written with indentation.
	JSON = &Format{
		Name:    "json",
		Decoder: NewDecoderFunc(json.NewDecoder),
		Encoder: func(w io.Writer) Encoder {
			e := json.NewEncoder(w)
			e.SetIndent("", "\t")
			return e
		},
	}
)

// FormatFor returns the format for the given filename,
// based on its extension.
func FormatFor(filename string) *Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	case ".json":
		return JSON
	}
	return TOML
}

// OpenFile reads the given object from the given file,
// in the format determined by its extension.
func OpenFile(v any, filename string) error {
	f := FormatFor(filename)
	if err := Open(v, filename, f.Decoder); err != nil {
		return fmt.Errorf("iox: opening %s as %s: %w", filename, f.Name, err)
	}
	return nil
}

// SaveFile writes the given object to the given file,
// in the format determined by its extension.
func SaveFile(v any, filename string) error {
	f := FormatFor(filename)
	if err := Save(v, filename, f.Encoder); err != nil {
		return fmt.Errorf("iox: saving %s as %s: %w", filename, f.Name, err)
	}
	return nil
}
