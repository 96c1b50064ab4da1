package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	ndastro "github.com/dhuruvah-apps/ndastro-core"
	"github.com/dhuruvah-apps/ndastro-core/julian"
)

// B6Output reports the precession term for one date.
type B6Output struct {
	Date       string    `json:"date"`
	JulianDate float64   `json:"julian_date"`
	Instant    time.Time `json:"instant"`
	Centuries  float64   `json:"centuries"`
	B6         float64   `json:"b6"`
	Degrees    float64   `json:"degrees"`
}

// NewB6Command creates the b6 command.
func NewB6Command(rootOpts *RootOptions) *cobra.Command {
	opts := &AyanamsaOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "b6",
		Short: "Print the secular precession term for a date",
		Long: `Print the secular precession term (B6) at 00:00 UTC of the given date,
with the Julian centuries since J2000.0 and the accumulated precession in degrees.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runB6(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "date, YYYY-MM-DD (default today)")

	return cmd
}

func runB6(opts *AyanamsaOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	at, err := parseWhen(opts.Date, opts.Now)
	if err != nil {
		return formatter.Fail(errorCode(err), err)
	}
	date := ndastro.DateOf(at)
	b6, err := ndastro.B6(date)
	if err != nil {
		return formatter.Fail(errorCode(err), err)
	}

	centuries := julian.CenturiesAtMidnight(date.Year, date.Month, date.Day)
	jd := float64(julian.DayNumber(date.Year, date.Month, date.Day)) - 0.5
	out := B6Output{
		Date:       date.String(),
		JulianDate: jd,
		Instant:    julian.ToTime(jd),
		Centuries:  centuries,
		B6:         b6,
		Degrees:    ndastro.B6Degrees(b6),
	}
	opts.Logger.Debug("precession evaluated", "date", out.Date, "jd", jd, "centuries", centuries)
	return formatter.Success(out, func(w io.Writer) {
		fmt.Fprintf(w, "B6(%s) = %.6f (%.6f° of precession since J2000.0)\n", out.Date, out.B6, out.Degrees)
		fmt.Fprintf(w, "JD %.1f, %s\n", out.JulianDate, out.Instant.Format(time.RFC3339))
	})
}
