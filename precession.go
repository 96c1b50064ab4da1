package ndastro

import "github.com/dhuruvah-apps/ndastro-core/julian"

// Secular precession series in longitude, arcseconds.
const (
	// GeneralPrecession is the linear rate in arcseconds per Julian century.
	GeneralPrecession = 5039.67298

	// PrecessionAcceleration is the quadratic term in arcseconds per Julian century squared.
	PrecessionAcceleration = 0.32702

	b6Quadratic     = PrecessionAcceleration / GeneralPrecession
	arcsecPerDegree = 3600.0
)

// EvaluateB6 returns the secular precession correction for T Julian centuries
// since J2000.0, expressed in units of the linear precession term. B6 is zero
// at the epoch, has the sign of T, and is strictly increasing for
// T > -1/(2*b6Quadratic), roughly 770,000 years before the epoch.
func EvaluateB6(T float64) float64 {
	return T + b6Quadratic*T*T
}

// B6Degrees converts a B6 value into degrees of accumulated precession.
func B6Degrees(b6 float64) float64 {
	return b6 * GeneralPrecession / arcsecPerDegree
}

// B6 evaluates the correction at 00:00 UTC of the given date.
func B6(d Date) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return EvaluateB6(julian.CenturiesAtMidnight(d.Year, d.Month, d.Day)), nil
}
