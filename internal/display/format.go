// Package display holds small formatting helpers for user-facing output.
package display

import (
	"fmt"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// EntryLabel returns a one-line description of an icon entry for verbose
// listings (e.g. "48x48 - 32 bits per pixel, 9.2 KiB").
func EntryLabel(width, height, bitsPerPixel int, size int64) string {
	return fmt.Sprintf("%dx%d - %d bits per pixel, %s", width, height, bitsPerPixel, FormatBytes(size))
}
