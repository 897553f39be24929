// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"fasta/internal/cli"
	"fasta/internal/config"
	"fasta/internal/logging"
	"fasta/internal/validate"
	"fasta/internal/version"
	"fasta/internal/writers"
)

const name = "fasta"

// Exit codes.
const (
	ExitOK          = 0
	ExitInvalid     = 1
	ExitUsage       = 2
	ExitOutput      = 3
	ExitInterrupted = 130
)

// RunContext dispatches argv[0] as a subcommand and returns the exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		cli.Usage(stderr, name)
		return ExitUsage
	}
	switch argv[0] {
	case "-h", "--help", "help":
		cli.Usage(stdout, name)
		return ExitOK
	case "-v", "--version", "version":
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", name, version.Version)
		return ExitOK
	case cli.CmdValidate:
		return runValidate(ctx, argv[1:], stdout, stderr)
	}
	_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n", argv[0])
	cli.Usage(stderr, name)
	return ExitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func runValidate(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts cli.Options
	fs := cli.NewValidateFlagSet(&opts)
	if err := cli.ParseValidate(fs, &opts, argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.ValidateUsage(stdout, fs)
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.ValidateUsage(stderr, fs)
		return ExitUsage
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	if err := opts.ApplyConfig(cfg); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	log := newLogger(cfg, opts, stderr)
	reports := validateAll(ctx, log, opts)

	outw := bufio.NewWriter(stdout)
	werr := writers.Write(opts.Output, outw, reports, writers.Options{Header: opts.Header})
	if werr == nil {
		werr = outw.Flush()
	}
	if werr != nil && !writers.IsBrokenPipe(werr) {
		log.Error().Err(werr).Msg("write report")
		return ExitOutput
	}

	if ctx.Err() != nil {
		return ExitInterrupted
	}
	for _, r := range reports {
		if !r.Valid() {
			return ExitInvalid
		}
	}
	return ExitOK
}

func newLogger(cfg config.Config, opts cli.Options, stderr io.Writer) zerolog.Logger {
	lc := logging.DefaultConfig(logging.ProfileRuntime)
	lc.Timestamp = cfg.LogTimestamp
	lc.NoColor = cfg.NoColor
	// precedence: flags, then FASTA_LOG_*, then the config file.
	// opts.LogLevel already passed Options.check.
	if lvl, ok := logging.ParseLevel(opts.LogLevel); ok {
		lc.Level = lvl
	}
	logging.ApplyEnv(&lc)
	if lvl, ok := logging.ParseLevel(opts.LogLevel); ok && opts.Given("log-level") {
		lc.Level = lvl
	}
	if opts.Quiet && lc.Level < zerolog.ErrorLevel {
		lc.Level = zerolog.ErrorLevel
	}
	return logging.New(name, lc, stderr)
}

// validateAll checks each file in order. Without KeepGoing it stops after the
// first invalid one.
func validateAll(ctx context.Context, log zerolog.Logger, opts cli.Options) []validate.Report {
	reports := make([]validate.Report, 0, len(opts.Files))
	for _, path := range opts.Files {
		log.Debug().Str("source", path).Msg("validating")
		rep := validate.File(ctx, path)
		reports = append(reports, rep)

		if ctx.Err() != nil {
			log.Warn().Str("source", path).Msg("interrupted")
			break
		}
		if rep.Valid() {
			log.Info().Str("source", path).
				Int("records", rep.Records).
				Int("residues", rep.Residues).
				Msg("valid")
			continue
		}
		log.Error().Str("source", path).Err(rep.Err).Msg("invalid")
		if !opts.KeepGoing {
			break
		}
	}
	return reports
}
