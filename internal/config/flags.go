package config

// This file implements CLI flag parsing and help text.
// Selection flags are mutually exclusive; that is checked in Validate, not here,
// so the error message is the same regardless of how the config was built.

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// version is shown in --version and help; override at build time with -ldflags "-X ...config.version=...".
var version = "1.0.0-dev"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, bad index, missing positional args).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("ico2img", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	// --index is captured as text so an explicitly passed "0" is
	// distinguishable from the default; applied to cfg after Parse.
	var indexRaw string
	var utility utilityFlags

	defineSelectionFlags(fs, cfg, &indexRaw)
	defineFormatFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &utility)
	defineUtilityFlags(fs, &utility)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if utility.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if utility.showVersion {
		fmt.Fprintln(os.Stdout, "ico2img v"+version)
		os.Exit(0)
	}
	if utility.noColor {
		cfg.ColorMode = ColorNever
	} else if utility.forceColor {
		cfg.ColorMode = ColorAlways
	}

	if indexRaw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(indexRaw))
		if err != nil || n < 0 {
			return fmt.Errorf("index must be a non-negative whole number (got %q)", indexRaw)
		}
		cfg.Index = n
		cfg.IndexSet = true
	}

	return parsePositionalArgs(fs, cfg)
}

// utilityFlags holds flags that trigger exit (help, version) or post-parse
// color overrides.
type utilityFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineSelectionFlags registers -i/--index, --list, -r/--range, -a/--all.
func defineSelectionFlags(fs *flag.FlagSet, cfg *Config, indexRaw *string) {
	fs.StringVar(indexRaw, "index", "", "Index of the image to convert (default: 0)")
	fs.StringVar(indexRaw, "i", "", "Same as --index")
	fs.StringVar(&cfg.ListRaw, "list", "", "Comma-separated indices to convert (e.g. 0,2,5)")
	fs.StringVar(&cfg.RangeRaw, "range", "", "Inclusive index range to convert (e.g. 0-3)")
	fs.StringVar(&cfg.RangeRaw, "r", "", "Same as --range")
	fs.BoolVar(&cfg.AllSet, "all", false, "Convert every image in the file")
	fs.BoolVar(&cfg.AllSet, "a", false, "Same as --all")
}

// defineFormatFlags registers -f/--format and -c/--config.
func defineFormatFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&formatValue{&cfg.Format}, "format", "Output format: png | jpeg | bmp | webp")
	fs.Var(&formatValue{&cfg.Format}, "f", "Same as --format")
	fs.StringVar(&cfg.ConfigFile, "config", "", "TOML config file (its format overrides --format)")
	fs.StringVar(&cfg.ConfigFile, "c", "", "Same as --config")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.BoolVar(&u.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&u.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (entry count and per-image details)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, u *utilityFlags) {
	fs.BoolVar(&u.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&u.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&u.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&u.showHelp, "h", false, "Same as --help")
}

// parsePositionalArgs sets InputPath and OutputPath from the two positional args.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if len(args) != 2 {
		return fmt.Errorf("need exactly ico_file and output path")
	}
	cfg.InputPath = args[0]
	cfg.OutputPath = args[1]
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "ico2img v" + version + " — convert ICO icons to standalone images"},
		{"", ""},
		{"  ico2img [OPTIONS] <ico_file> <output>", ""},
		{"", ""},
		{"  <output> is a file path when converting one image (default: index 0)", ""},
		{"  and a directory when using --list, --range or --all; generated names", ""},
		{"  follow <stem>_<index>.<ext>.", ""},
		{"", ""},
		{"Selection (at most one)", ""},
		{"  -i, --index <n>", "Index of the image to convert (default: 0)"},
		{"  --list <n,n,...>", "Comma-separated indices, converted in given order"},
		{"  -r, --range <a-b>", "Inclusive index range (e.g. 0-3)"},
		{"  -a, --all", "Convert every image in the file"},
		{"", ""},
		{"Format", ""},
		{"  -f, --format <name>", "Output format: png | jpeg | bmp | webp (default: png)"},
		{"  -c, --config <path>", "TOML config; its ico2img.format overrides --format"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapter so the TargetFormat enum works with flag.Var.

type formatValue struct{ p *TargetFormat }

func (f *formatValue) String() string {
	if f.p == nil {
		return ""
	}
	return string(*f.p)
}

func (f *formatValue) Set(s string) error {
	format, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f.p = format
	return nil
}
