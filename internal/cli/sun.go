package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhuruvah-apps/ndastro-core/almanac"
)

// SunOptions holds flags for the sun command.
type SunOptions struct {
	*RootOptions
	Date      string
	Latitude  float64
	Longitude float64
	Elevation float64
	Zone      string
}

// SunOutput reports sunrise, sunset and solar noon for one observer and day.
type SunOutput struct {
	Observer  almanac.Observer `json:"observer"`
	Sunrise   time.Time        `json:"sunrise"`
	Sunset    time.Time        `json:"sunset"`
	SolarNoon time.Time        `json:"solar_noon"`
	DayLength string           `json:"day_length"`
}

// NewSunCommand creates the sun command.
func NewSunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sun",
		Short: "Print sunrise, sunset and day length",
		Long: `Print the sunrise, sunset, solar noon and day length of the UTC day of --date for an observer.

Coordinates not given as flags come from the location block of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSun(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "day, YYYY-MM-DD (default today)")
	cmd.Flags().Float64Var(&opts.Latitude, "lat", 0, "latitude in degrees, north positive")
	cmd.Flags().Float64Var(&opts.Longitude, "lon", 0, "longitude in degrees, east positive")
	cmd.Flags().Float64Var(&opts.Elevation, "elevation", almanac.DefaultElevation, "elevation in metres")
	cmd.Flags().StringVar(&opts.Zone, "tz", "UTC", "IANA time zone for text output")

	return cmd
}

func runSun(opts *SunOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	obs := opts.Config.Location
	if cmd.Flags().Changed("lat") {
		obs.Latitude = opts.Latitude
	}
	if cmd.Flags().Changed("lon") {
		obs.Longitude = opts.Longitude
	}
	if cmd.Flags().Changed("elevation") {
		obs.Elevation = opts.Elevation
	}

	loc, err := time.LoadLocation(opts.Zone)
	if err != nil {
		return formatter.Fail(ErrCodeInvalidInput, err)
	}
	day, err := parseWhen(opts.Date, opts.Now)
	if err != nil {
		return formatter.Fail(errorCode(err), err)
	}
	opts.Logger.Debug("computing sunrise", "lat", obs.Latitude, "lon", obs.Longitude, "day", day.Format("2006-01-02"))

	rise, set, err := almanac.SunriseSunset(obs, day)
	if err != nil {
		return formatter.Fail(errorCode(err), err)
	}

	noon, err := almanac.SolarNoon(obs, day)
	if err != nil {
		return formatter.Fail(errorCode(err), err)
	}
	length, err := almanac.DayLength(obs, day)
	if err != nil {
		return formatter.Fail(errorCode(err), err)
	}

	out := SunOutput{
		Observer:  obs,
		Sunrise:   rise,
		Sunset:    set,
		SolarNoon: noon,
		DayLength: length.Round(time.Second).String(),
	}
	return formatter.Success(out, func(w io.Writer) {
		fmt.Fprintf(w, "Sunrise:    %s\n", rise.In(loc).Format(time.RFC3339))
		fmt.Fprintf(w, "Solar noon: %s\n", noon.In(loc).Format(time.RFC3339))
		fmt.Fprintf(w, "Sunset:     %s\n", set.In(loc).Format(time.RFC3339))
		fmt.Fprintf(w, "Day length: %s\n", out.DayLength)
	})
}
