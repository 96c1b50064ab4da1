package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	ndastro "github.com/dhuruvah-apps/ndastro-core"
)

// AyanamsaOptions holds flags for the ayanamsa command.
type AyanamsaOptions struct {
	*RootOptions
	Date   string
	System string
}

// AyanamsaOutput is one system evaluated at one instant.
type AyanamsaOutput struct {
	System  string    `json:"system"`
	Slug    string    `json:"slug"`
	Time    time.Time `json:"time"`
	Degrees float64   `json:"degrees"`
	DMS     string    `json:"dms"`
}

func newAyanamsaOutput(s ndastro.System, at time.Time, deg float64) AyanamsaOutput {
	return AyanamsaOutput{
		System:  s.String(),
		Slug:    s.Slug(),
		Time:    at,
		Degrees: deg,
		DMS:     ndastro.ToDMS(deg).Colon(),
	}
}

// NewAyanamsaCommand creates the ayanamsa command.
func NewAyanamsaCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AyanamsaOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "ayanamsa [system]",
		Short: "Print the ayanamsa of one system",
		Long: `Print the ayanamsa, in degrees, of one reference system at the given instant.

The system is taken from --system or the positional argument and defaults to
default_system from the config file (Lahiri).`,
		Example: `  ndastro ayanamsa --system raman --date 2026-01-09
  ndastro ayanamsa kp-new -d 1990-06-15T04:30:00Z`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := opts.Config.DefaultSystem
			switch {
			case len(args) == 1 && cmd.Flags().Changed("system"):
				return NewExitError(ExitCommandError, "give the system either as argument or with --system, not both")
			case len(args) == 1:
				name = args[0]
			case cmd.Flags().Changed("system"):
				name = opts.System
			}
			return runAyanamsa(opts, name, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "instant, YYYY-MM-DD or RFC3339 (default now)")
	cmd.Flags().StringVarP(&opts.System, "system", "s", "", "reference system name or alias (default from config)")

	return cmd
}

func runAyanamsa(opts *AyanamsaOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	system, err := ndastro.ParseSystem(name)
	if err != nil {
		return formatter.Fail(errorCode(err), err)
	}
	at, err := parseWhen(opts.Date, opts.Now)
	if err != nil {
		return formatter.Fail(errorCode(err), err)
	}
	opts.Logger.Debug("evaluating ayanamsa", "system", system.Slug(), "time", at)

	deg, err := ndastro.Ayanamsa(system, at)
	if err != nil {
		return formatter.Fail(errorCode(err), err)
	}

	out := newAyanamsaOutput(system, at, deg)
	return formatter.Success(out, func(w io.Writer) {
		fmt.Fprintf(w, "%s ayanamsa at %s: %.6f° (%s)\n", out.System, at.Format(time.RFC3339), out.Degrees, out.DMS)
	})
}
