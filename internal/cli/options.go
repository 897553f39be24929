// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"fasta/internal/cliutil"
	"fasta/internal/config"
	"fasta/internal/logging"
	"fasta/internal/version"
	"fasta/internal/writers"
)

// Subcommands.
const (
	CmdValidate = "validate"
)

// Options holds the flags and arguments of `fasta validate`.
type Options struct {
	Files      []string
	ConfigPath string

	Output    string
	LogLevel  string
	KeepGoing bool
	Header    bool // true unless --no-header
	Quiet     bool

	set map[string]bool // flags given on the command line
}

// Usage prints the top-level help.
func Usage(w io.Writer, name string) {
	fmt.Fprintf(w, `%s: FASTA description and IUPAC nucleotide validation

Version: %s

Usage:
  %s validate [flags] FILE... ('-' reads STDIN, gzip is detected)
  %s -v | --version

`, name, version.Version, name, name)
}

// ValidateUsage prints help for the validate subcommand.
func ValidateUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage of validate:\n")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// NewValidateFlagSet registers the validate flags on a fresh FlagSet.
func NewValidateFlagSet(opt *Options) *flag.FlagSet {
	fs := NewFlagSet(CmdValidate)
	fs.SetOutput(io.Discard)
	def := config.Default()

	fs.StringVar(&opt.ConfigPath, "config", "", "TOML or YAML config file (default $"+config.EnvConfigPath+")")
	fs.StringVar(&opt.ConfigPath, "c", "", "alias of --config")
	fs.StringVar(&opt.Output, "output", def.Output, "report format: "+strings.Join(writers.Formats(), " | ")+" ["+def.Output+"]")
	fs.StringVar(&opt.Output, "o", def.Output, "alias of --output")
	fs.StringVar(&opt.LogLevel, "log-level", def.LogLevel, "log level: trace | debug | info | warn | error | off ["+def.LogLevel+"]")
	fs.BoolVar(&opt.KeepGoing, "keep-going", false, "validate remaining files after an invalid one [false]")
	fs.BoolVar(&opt.KeepGoing, "k", false, "alias of --keep-going")
	fs.Bool("no-header", false, "suppress header line in text output [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.Bool("h", false, "show this help message")
	fs.Bool("help", false, "show this help message")
	return fs
}

var aliases = map[string]string{"c": "config", "o": "output", "k": "keep-going", "q": "quiet"}

// ParseValidate parses `validate` arguments. Flags and files may interleave.
// It returns flag.ErrHelp when help was requested.
func ParseValidate(fs *flag.FlagSet, opt *Options, argv []string) error {
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return err
	}
	opt.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := aliases[name]; ok {
			name = long
		}
		opt.set[name] = true
	})
	if opt.set["h"] || opt.set["help"] {
		return flag.ErrHelp
	}
	opt.Header = !flagBool(fs, "no-header")

	files, err := cliutil.ExpandPositionals(append(posArgs, fs.Args()...))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("at least one FASTA file is required ('-' for STDIN)")
	}
	opt.Files = files
	return opt.check()
}

// Given reports whether flag name (long form) was set on the command line.
func (o *Options) Given(name string) bool { return o.set[name] }

// ApplyConfig fills every option not given on the command line from cfg.
func (o *Options) ApplyConfig(cfg config.Config) error {
	if !o.set["output"] {
		o.Output = cfg.Output
	}
	if !o.set["log-level"] {
		o.LogLevel = cfg.LogLevel
	}
	if !o.set["keep-going"] {
		o.KeepGoing = cfg.KeepGoing
	}
	if !o.set["no-header"] {
		o.Header = !cfg.NoHeader
	}
	return o.check()
}

func (o *Options) check() error {
	if !writers.Known(o.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", o.Output, strings.Join(writers.Formats(), ", "))
	}
	if _, ok := logging.ParseLevel(o.LogLevel); !ok {
		return fmt.Errorf("invalid --log-level %q", o.LogLevel)
	}
	return nil
}

func flagBool(fs *flag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Value.String() == "true"
}
