// Command ico2img converts Windows ICO icon containers into standalone
// raster images (PNG, JPEG, BMP, WEBP), selecting one, several, a range,
// or all embedded entries.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/ico2img/internal/config"
	"github.com/backmassage/ico2img/internal/logging"
	"github.com/backmassage/ico2img/internal/pipeline"
)

func main() {
	// 1. Load config from defaults and CLI flags; exit on parse or validation error.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ico2img: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ico2img: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ico2img: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	// 2. Run the conversion pipeline; a single descriptive error on failure.
	if err := pipeline.Run(&cfg, log); err != nil {
		log.Error("%v", err)
		log.Close()
		os.Exit(1)
	}
}
