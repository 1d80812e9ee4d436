// Package config holds runtime configuration: defaults, CLI flag parsing,
// the target-format enumeration, and the TOML config-file format override.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// TargetFormat is the output image format. The set is closed: user input is
// turned into a TargetFormat by [ParseFormat] before any conversion starts,
// so the encode dispatch never sees an unknown format.
type TargetFormat string

const (
	FormatPNG  TargetFormat = "png"  // Native path (default); the decoded raster is serialized directly.
	FormatJPEG TargetFormat = "jpeg" // No alpha support; the alpha plane is dropped before encoding.
	FormatBMP  TargetFormat = "bmp"  // Alpha preserved.
	FormatWEBP TargetFormat = "webp" // Lossless, alpha preserved.
)

// ParseFormat canonicalizes a user-supplied format name. It is
// case-insensitive and accepts "jpg" as an alias of jpeg. Unknown names fail
// with [UnsupportedFormatError] before any per-entry work begins.
func ParseFormat(name string) (TargetFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "webp":
		return FormatWEBP, nil
	default:
		return "", &UnsupportedFormatError{Name: name}
	}
}

// Extension returns the canonical lowercase file extension, without the dot.
// JPEG yields "jpg", not "jpeg".
func (f TargetFormat) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// UnsupportedFormatError reports a format name outside the supported set.
type UnsupportedFormatError struct {
	Name string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q (use png, jpeg, bmp or webp)", e.Name)
}

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from positional args). OutputPath is a file for single-index
	// runs and a directory for list/range/all runs.
	InputPath  string
	OutputPath string

	// Selection (at most one of these may be supplied; default is index 0).
	Index    int    // --index value; meaningful when IndexSet.
	IndexSet bool   // True when --index was given explicitly.
	ListRaw  string // --list value, comma-separated.
	RangeRaw string // --range value, "start-end".
	AllSet   bool   // --all.

	// Output format. ConfigFile, when set, overrides Format for the run.
	Format     TargetFormat // Default: "png".
	ConfigFile string       // Optional TOML config path.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Format:    FormatPNG,
		ColorMode: ColorAuto,
	}
}

// MultiEntry reports whether the selection addresses potentially many
// entries, in which case OutputPath is treated as a directory and per-entry
// file names are generated.
func (c *Config) MultiEntry() bool {
	return c.ListRaw != "" || c.RangeRaw != "" || c.AllSet
}

// Validate checks that at most one selection flag was supplied and that both
// positional paths are present. Selection mutual exclusion is a precondition
// of the resolver and is enforced here, at the interface level.
func (c *Config) Validate() error {
	supplied := 0
	if c.IndexSet {
		supplied++
	}
	if c.ListRaw != "" {
		supplied++
	}
	if c.RangeRaw != "" {
		supplied++
	}
	if c.AllSet {
		supplied++
	}
	if supplied > 1 {
		return errors.New("use at most one of --index, --list, --range, --all")
	}

	if c.InputPath == "" || c.OutputPath == "" {
		return errors.New("need exactly ico_file and output path")
	}
	return nil
}
