package config

// This file implements the config-file format override. The file is TOML and
// carries the output format under [ico2img]; when a config file is supplied,
// its format wins over the --format flag for the whole run.

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrFormatNotSpecified is returned when a config file was supplied but its
// ico2img.format key is absent. A supplied config file must declare the
// format; there is no silent fallback to the CLI flag.
var ErrFormatNotSpecified = errors.New("output format type isn't specified in the config file")

// tomlDocument mirrors the consumed file shape:
//
//	[ico2img]
//	format = "bmp"
type tomlDocument struct {
	Ico2img struct {
		Format string `toml:"format"`
	} `toml:"ico2img"`
}

// LoadFormatOverride reads the TOML file at path and returns the declared
// target format. It fails on unreadable or malformed files, on a missing
// ico2img.format key, and on unsupported format names; all of these are
// resolved before any image decoding starts.
func LoadFormatOverride(path string) (TargetFormat, error) {
	var doc tomlDocument
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return "", fmt.Errorf("cannot read config file %s: %w", path, err)
	}
	if !md.IsDefined("ico2img", "format") {
		return "", ErrFormatNotSpecified
	}
	return ParseFormat(doc.Ico2img.Format)
}
