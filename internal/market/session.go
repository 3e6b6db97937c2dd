// Package market knows the exchange session calendar. It exposes a single
// time-dependent scalar: how much of the regular trading session has elapsed
// at a given instant. Callers always pass the instant explicitly so the
// computation stays deterministic under test.
package market

import "time"

// Regular session bounds, minutes from midnight exchange-local time.
const (
	sessionOpenMin  = 9*60 + 30
	sessionCloseMin = 16 * 60

	// minFraction guards the near-zero denominator right at the open.
	minFraction = 0.05
)

var exchangeTZ = loadExchangeTZ()

func loadExchangeTZ() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		// Without tzdata fall back to fixed EST; DST drift is acceptable
		// for a volume projection.
		return time.FixedZone("EST", -5*3600)
	}
	return loc
}

// DayFraction returns the elapsed fraction of the 09:30-16:00 regular
// session at the given instant, clamped to a 0.05 floor. Outside the
// session, including weekends, it returns 1.0 so the raw full-day volume is
// used as-is.
func DayFraction(now time.Time) float64 {
	local := now.In(exchangeTZ)
	if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return 1.0
	}
	minutes := local.Hour()*60 + local.Minute()
	if minutes < sessionOpenMin || minutes >= sessionCloseMin {
		return 1.0
	}
	fraction := float64(minutes-sessionOpenMin) / float64(sessionCloseMin-sessionOpenMin)
	if fraction < minFraction {
		fraction = minFraction
	}
	return fraction
}
