// Package naming builds output file paths for converted images.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Stem returns the input file's base name without its extension, used as the
// prefix for generated per-index output names.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath builds the generated file path for one converted entry.
// ext is the canonical extension without dot (e.g. "jpg", "webp").
//
//	<outputDir>/<stem>_<index>.<ext>
func OutputPath(outputDir, stem string, index int, ext string) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s_%d.%s", stem, index, ext))
}
