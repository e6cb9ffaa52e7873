// Package config holds runtime settings shared by every hummify command.
package config

import (
	"errors"
	"fmt"
)

// OutputFileName is the name of the cleaned list written next to the input CSV.
const OutputFileName = "hummify-list-cleaned.json"

// RecentlyPlayedSize is how many picked songs are remembered to avoid repeats.
const RecentlyPlayedSize = 50

// ColorMode controls coloured log output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // colours when stdout is a terminal
	ColorAlways ColorMode = "always" // force colours on
	ColorNever  ColorMode = "never"  // no colours
)

// Config holds the global flags.
type Config struct {
	ColorMode ColorMode
	Verbose   bool
	LogFile   string // optional log file path

	// Spinner shows a spinner while converting when stdout is a terminal.
	Spinner bool
}

// DefaultConfig returns the settings used when no flag is given.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
		Spinner:   true,
	}
}

// Validate checks enum fields.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		return errors.New("color mode must not be empty")
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	return nil
}
