package synth

import (
	"math"
	"time"

	"beautydash/domain/core"
)

// SeasonalMultiplier maps a calendar day to a relative demand multiplier.
// One-year sinusoid: trough near the start of January (~0.75x), peak at
// midsummer (~1.25x). Pure function of the date.
func SeasonalMultiplier(day core.Day) float64 {
	dayOfYear := float64(day.YearDay())
	return 1 + 0.25*math.Sin(2*math.Pi*(dayOfYear/365)-math.Pi/2)
}

// weekdayMultiplier boosts the two designated high-traffic weekdays.
// Friday and Saturday carry the retail peak; every other day is discounted.
func weekdayMultiplier(day core.Day) float64 {
	switch day.Weekday() {
	case time.Friday, time.Saturday:
		return 1.1
	default:
		return 0.9
	}
}
