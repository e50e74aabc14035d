package utils

import (
	"math"
	"time"
)

// SynodicMonth is the mean length of a lunar cycle in days.
const SynodicMonth = 29.530588853

// Reference new moon: 2025-07-25 19:02 UTC.
var newMoonEpoch = time.Date(2025, time.July, 25, 19, 2, 0, 0, time.UTC)

// Moon phase names in cycle order.
const (
	PhaseNew            = "New Moon"
	PhaseWaxingCrescent = "Waxing Crescent"
	PhaseFirstQuarter   = "First Quarter"
	PhaseWaxingGibbous  = "Waxing Gibbous"
	PhaseFull           = "Full Moon"
	PhaseWaningGibbous  = "Waning Gibbous"
	PhaseThirdQuarter   = "Third Quarter"
	PhaseWaningCrescent = "Waning Crescent"
)

// MoonPhaseFraction returns the position of t within the lunar cycle as a
// fraction in [0, 1), 0 being a new moon. Dates before the reference epoch
// are normalized into range.
func MoonPhaseFraction(t time.Time) float64 {
	days := t.Sub(newMoonEpoch).Hours() / 24
	frac := math.Mod(days, SynodicMonth) / SynodicMonth
	if frac < 0 {
		frac++
	}
	return frac
}

// MoonPhase names the lunar phase on the given date.
func MoonPhase(t time.Time) string {
	frac := MoonPhaseFraction(t)
	switch {
	case frac < 0.03 || frac >= 0.97:
		return PhaseNew
	case frac < 0.22:
		return PhaseWaxingCrescent
	case frac < 0.28:
		return PhaseFirstQuarter
	case frac < 0.47:
		return PhaseWaxingGibbous
	case frac < 0.53:
		return PhaseFull
	case frac < 0.72:
		return PhaseWaningGibbous
	case frac < 0.78:
		return PhaseThirdQuarter
	default:
		return PhaseWaningCrescent
	}
}
