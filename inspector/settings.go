// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"strings"
	"time"

	"github.com/muesli/termenv"

	"cogentcore.org/inspector/base/iox"
)

// Settings are the user settings of an [Inspector].
type Settings struct {

	// SentenceCase is whether member names are shown as "Sentence case" labels.
	SentenceCase bool

	// ShowMethods is whether declared methods are shown as buttons.
	ShowMethods bool

	// ShowProperties is whether declared properties are shown.
	ShowProperties bool

	// Deferred is whether edits are staged until the inspector is applied
	// or rebuilt, instead of being committed after every change.
	Deferred bool

	// TickInterval is the interval between resolver ticks
	// for hosts that do not have their own frame loop.
	TickInterval Duration

	// Theme is the color profile used for rendering: auto, ascii,
	// ansi, ansi256, or truecolor.
	Theme string
}

// Duration is a [time.Duration] that is encoded as text, such as "100ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// DefaultSettings returns new default settings.
func DefaultSettings() *Settings {
	return &Settings{
		SentenceCase:   true,
		ShowMethods:    true,
		ShowProperties: true,
		TickInterval:   Duration(100 * time.Millisecond),
		Theme:          "auto",
	}
}

// OpenSettings returns the default settings updated from the given
// TOML, YAML, or JSON file.
func OpenSettings(filename string) (*Settings, error) {
	s := DefaultSettings()
	if err := iox.OpenFile(s, filename); err != nil {
		return nil, err
	}
	return s, nil
}

// Save saves the settings to the given TOML, YAML, or JSON file.
func (s *Settings) Save(filename string) error {
	return iox.SaveFile(s, filename)
}

// Profile returns the terminal color profile for the theme.
func (s *Settings) Profile() termenv.Profile {
	switch strings.ToLower(s.Theme) {
	case "ascii":
		return termenv.Ascii
	case "ansi":
		return termenv.ANSI
	case "ansi256":
		return termenv.ANSI256
	case "truecolor":
		return termenv.TrueColor
	}
	return termenv.EnvColorProfile()
}

// Interval returns the tick interval, with a minimum of one millisecond.
func (s *Settings) Interval() time.Duration {
	return max(time.Duration(s.TickInterval), time.Millisecond)
}
