package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFormatOverride(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    TargetFormat
	}{
		{"bmp", "[ico2img]\nformat = \"bmp\"\n", FormatBMP},
		{"jpg alias", "[ico2img]\nformat = \"jpg\"\n", FormatJPEG},
		{"uppercase", "[ico2img]\nformat = \"WEBP\"\n", FormatWEBP},
		{"extra keys ignored", "[ico2img]\nformat = \"png\"\nquality = 9\n\n[other]\nx = 1\n", FormatPNG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFormatOverride(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("LoadFormatOverride: %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadFormatOverride() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadFormatOverride_MissingKey(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"table without format", "[ico2img]\nquality = 9\n"},
		{"format in wrong table", "[tool]\nformat = \"bmp\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFormatOverride(writeConfig(t, tt.content))
			if !errors.Is(err, ErrFormatNotSpecified) {
				t.Errorf("error = %v, want ErrFormatNotSpecified", err)
			}
		})
	}
}

func TestLoadFormatOverride_UnsupportedName(t *testing.T) {
	_, err := LoadFormatOverride(writeConfig(t, "[ico2img]\nformat = \"gif\"\n"))
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("want UnsupportedFormatError, got %v", err)
	}
	if ufe.Name != "gif" {
		t.Errorf("UnsupportedFormatError.Name = %q, want %q", ufe.Name, "gif")
	}
}

func TestLoadFormatOverride_MalformedFile(t *testing.T) {
	if _, err := LoadFormatOverride(writeConfig(t, "[ico2img\nformat =")); err == nil {
		t.Error("LoadFormatOverride should fail on malformed TOML")
	}
}

func TestLoadFormatOverride_MissingFile(t *testing.T) {
	if _, err := LoadFormatOverride(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFormatOverride should fail when the file does not exist")
	}
}
