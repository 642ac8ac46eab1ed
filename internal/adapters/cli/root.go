// Package cli defines the dailyquote command line.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/dailyquote/internal/adapters/console"
	"github.com/jsamuelsen/dailyquote/internal/platform/config"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

// Flags holds the command line overrides. They take precedence over every
// config source, environment variables included.
type Flags struct {
	ConfigDir string
	Profile   string
	Style     string
	Seed      uint64
	Serve     bool
}

// RunFunc runs the program once flags are parsed.
type RunFunc func(cmd *cobra.Command, flags *Flags) error

// Options configures NewRootCommand.
type Options struct {
	// Version is printed by --version.
	Version string

	// Run is required.
	Run RunFunc
}

// NewRootCommand creates the dailyquote root command. Positional arguments
// and unknown flags are accepted and ignored.
func NewRootCommand(opts Options) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:   "dailyquote",
		Short: "Print a motivational quote for today",
		Long: "dailyquote prints today's date and one motivational quote picked at random.\n" +
			"With --serve (or app.mode=server) it serves the same report over HTTP.",
		Version: opts.Version,
		Args:    cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Run == nil {
				return fmt.Errorf("dailyquote: no run function configured")
			}

			return opts.Run(cmd, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVar(&flags.ConfigDir, "config-dir", config.DefaultConfigDir, "directory holding base.yaml and profile files")
	f.StringVar(&flags.Profile, "profile", "", "config profile (default $APP_ENVIRONMENT or local)")
	f.StringVar(&flags.Style, "style", "", "output style (emoji|plain)")
	f.Uint64Var(&flags.Seed, "seed", 0, "fixed random seed for reproducible output")
	f.BoolVar(&flags.Serve, "serve", false, "serve reports over HTTP instead of printing once")

	return cmd
}

// Execute runs the root command with args, writing to stdout and stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, opts Options) error {
	cmd := NewRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd.ExecuteContext(ctx)
}

// Apply copies the flags the user actually set onto cfg.
func (f *Flags) Apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()

	if fs.Changed("style") {
		cfg.Output.Style = f.Style
	}

	if fs.Changed("seed") {
		cfg.Quote.Seed = f.Seed
	}

	if f.Serve {
		cfg.App.Mode = config.ModeServer
	}
}

// ResolveProfile returns the --profile flag, then env, then "local".
func (f *Flags) ResolveProfile(env string) string {
	switch {
	case f.Profile != "":
		return f.Profile
	case env != "":
		return env
	default:
		return "local"
	}
}

// PrintReport is the one-shot CLI use case: select today's quote and write
// the six-line report to w.
func PrintReport(ctx context.Context, svc ports.QuoteService, presenter *console.Presenter, w io.Writer) error {
	report, err := svc.DailyReport(ctx)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	if err := presenter.Write(w, report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
