package utils

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, time.July, 25, 19, 2, 0, 0, time.UTC)

func days(d float64) time.Duration {
	return time.Duration(d * 24 * float64(time.Hour))
}

func TestMoonPhase(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"epoch is a new moon", epoch, PhaseNew},
		{"half cycle is full", epoch.Add(days(14.76)), PhaseFull},
		{"quarter cycle", epoch.Add(days(7.4)), PhaseFirstQuarter},
		{"three-quarter cycle", epoch.Add(days(22.1)), PhaseThirdQuarter},
		{"late cycle wraps to new", epoch.Add(days(29.0)), PhaseNew},
		{"one full cycle later", epoch.Add(days(SynodicMonth)), PhaseNew},
		{"before the epoch normalizes", epoch.Add(-days(SynodicMonth)), PhaseNew},
		{"before the epoch, half cycle", epoch.Add(-days(14.76)), PhaseFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoonPhase(tt.at); got != tt.want {
				t.Errorf("MoonPhase(%v) = %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}

func TestMoonPhaseFractionRange(t *testing.T) {
	for _, at := range []time.Time{
		epoch.Add(-days(100)),
		epoch,
		epoch.Add(days(1000)),
	} {
		frac := MoonPhaseFraction(at)
		if frac < 0 || frac >= 1 {
			t.Errorf("MoonPhaseFraction(%v) = %f, want [0,1)", at, frac)
		}
	}
}
