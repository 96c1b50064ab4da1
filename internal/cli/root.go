package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhuruvah-apps/ndastro-core/internal/config"
)

// RootOptions holds global flags and the state shared by all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	Config config.Config
	Logger *slog.Logger

	// Now supplies the instant used when --date is omitted.
	Now func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the ndastro CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Now: time.Now})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ndastro",
		Short: "Sidereal astrology calculations",
		Long:  "Computes the ayanamsa for sixteen reference systems, the precession term behind it, and sunrise/sunset times.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default <data dir>/ndastro/config.yaml)")

	cmd.AddCommand(NewAyanamsaCommand(opts))
	cmd.AddCommand(NewSystemsCommand(opts))
	cmd.AddCommand(NewB6Command(opts))
	cmd.AddCommand(NewSunCommand(opts))

	return cmd
}

// setup wires the logger and loads the configuration. Flags given on the
// command line win over the configuration file.
func (opts *RootOptions) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path := opts.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			opts.Logger.Debug("no config directory, using defaults", "err", err)
			opts.Config = config.Default()
		}
		path = p
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "loading config", err)
		}
		opts.Logger.Debug("config loaded", "path", path, "system", cfg.DefaultSystem)
		opts.Config = cfg
	}

	if !cmd.Flags().Changed("format") {
		opts.Format = opts.Config.Format
	}
	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	return nil
}

func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
