// Package pipeline orchestrates one conversion run: read the ICO file,
// resolve the target format and the selected entry indices, then convert
// and write each entry sequentially, stopping at the first failure.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/ico2img/internal/config"
	"github.com/backmassage/ico2img/internal/convert"
	"github.com/backmassage/ico2img/internal/display"
	"github.com/backmassage/ico2img/internal/icodir"
	"github.com/backmassage/ico2img/internal/logging"
	"github.com/backmassage/ico2img/internal/naming"
	"github.com/backmassage/ico2img/internal/selection"
)

// Run executes one conversion run. All validation errors (format, selection)
// surface before any entry is decoded; decode/encode/write failures abort
// the run at the failing entry, leaving files already written in place.
func Run(cfg *config.Config, log *logging.Logger) error {
	raw, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", cfg.InputPath, err)
	}

	dir, err := icodir.Parse(raw)
	if err != nil {
		return fmt.Errorf("cannot parse %s: %w", cfg.InputPath, err)
	}

	// The config file's format wins over the --format flag for the whole run.
	format := cfg.Format
	if cfg.ConfigFile != "" {
		format, err = config.LoadFormatOverride(cfg.ConfigFile)
		if err != nil {
			return err
		}
		log.Debug(cfg.Verbose, "Format from config file: %s", format)
	}

	logEntries(cfg, log, dir)

	req, err := buildRequest(cfg)
	if err != nil {
		return err
	}
	indices, err := selection.Resolve(req, dir.Len())
	if err != nil {
		return err
	}

	entries := dir.Entries()
	stem := naming.Stem(cfg.InputPath)
	for _, i := range indices {
		outPath := cfg.OutputPath
		if cfg.MultiEntry() {
			outPath = naming.OutputPath(cfg.OutputPath, stem, i, format.Extension())
		}

		data, err := convert.Convert(entries[i], format)
		if err != nil {
			return fmt.Errorf("image %d: %w", i, err)
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("image %d: cannot write %s: %w", i, outPath, err)
		}
		log.Success("%s (image %d, %s)", outPath, i, display.FormatBytes(int64(len(data))))
	}
	return nil
}

// buildRequest maps the mutually exclusive selection flags onto a resolver
// request. No flag at all means index 0.
func buildRequest(cfg *config.Config) (selection.Request, error) {
	switch {
	case cfg.AllSet:
		return selection.All(), nil
	case cfg.RangeRaw != "":
		return selection.Range(cfg.RangeRaw), nil
	case cfg.ListRaw != "":
		indices, err := selection.ParseList(cfg.ListRaw)
		if err != nil {
			return selection.Request{}, err
		}
		return selection.List(indices), nil
	case cfg.IndexSet:
		return selection.Single(cfg.Index), nil
	default:
		return selection.Single(0), nil
	}
}

// logEntries prints the entry count and per-entry header metadata when
// verbose. Metadata comes from the directory alone; nothing is decoded here.
func logEntries(cfg *config.Config, log *logging.Logger, dir *icodir.Container) {
	if !cfg.Verbose {
		return
	}
	log.Info("Number of entries in ICO file: %d", dir.Len())
	for i, e := range dir.Entries() {
		log.Info("  [%d] %s", i, display.EntryLabel(e.Width(), e.Height(), e.BitsPerPixel(), int64(e.Size())))
	}
}
