package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	ndastro "github.com/dhuruvah-apps/ndastro-core"
)

// NewSystemsCommand creates the systems command.
func NewSystemsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AyanamsaOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "systems",
		Short: "Print the ayanamsa of every system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSystems(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "instant, YYYY-MM-DD or RFC3339 (default now)")

	return cmd
}

func runSystems(opts *AyanamsaOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	at, err := parseWhen(opts.Date, opts.Now)
	if err != nil {
		return formatter.Fail(errorCode(err), err)
	}
	results, err := ndastro.AyanamsaAll(at)
	if err != nil {
		return formatter.Fail(errorCode(err), err)
	}
	opts.Logger.Debug("evaluated all systems", "count", len(results), "time", at)

	out := make([]AyanamsaOutput, len(results))
	for i, r := range results {
		out[i] = newAyanamsaOutput(r.System, at, r.Degrees)
	}
	return formatter.Success(out, func(w io.Writer) {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SYSTEM\tSLUG\tDEGREES\tDMS")
		for _, o := range out {
			fmt.Fprintf(tw, "%s\t%s\t%.6f\t%s\n", o.System, o.Slug, o.Degrees, o.DMS)
		}
		tw.Flush()
	})
}
