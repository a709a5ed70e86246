package simulation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	RegulationPeriodMinutes  = 12.0
	OvertimePeriodMinutes    = 5.0
	DefaultRegulationPeriods = 4
)

// GameStatus is the coarse state of a pro game.
type GameStatus int

const (
	StatusScheduled GameStatus = iota
	StatusInProgress
	StatusFinal
)

func (s GameStatus) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusInProgress:
		return "in_progress"
	case StatusFinal:
		return "final"
	default:
		return "unknown"
	}
}

// ParseGameStatus maps a stored status string back to a GameStatus.
func ParseGameStatus(s string) GameStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in_progress", "in", "live":
		return StatusInProgress
	case "final", "post", "completed":
		return StatusFinal
	default:
		return StatusScheduled
	}
}

// EstimateFraction returns how much of a game has been played, in [0,1].
//
// Overtime minutes count toward elapsed time but not toward the regulation
// total, so late overtime clamps to 1. A missing or unreadable clock during
// play counts the current period as half elapsed.
func EstimateFraction(status GameStatus, period int, clock string, regulationPeriods int) float64 {
	switch status {
	case StatusFinal:
		return 1
	case StatusInProgress:
	default:
		return 0
	}

	if period <= 0 {
		return 0
	}
	if regulationPeriods <= 0 {
		regulationPeriods = DefaultRegulationPeriods
	}

	periodLength := RegulationPeriodMinutes
	prior := float64(period-1) * RegulationPeriodMinutes
	if period > regulationPeriods {
		periodLength = OvertimePeriodMinutes
		prior = float64(regulationPeriods)*RegulationPeriodMinutes +
			float64(period-1-regulationPeriods)*OvertimePeriodMinutes
	}

	elapsed := periodLength / 2
	if remaining, err := ParseClock(clock); err == nil && remaining <= periodLength {
		elapsed = periodLength - remaining
	}

	return clamp01((prior + elapsed) / (float64(regulationPeriods) * RegulationPeriodMinutes))
}

// ParseClock reads a game clock as minutes remaining. Accepts "M:SS",
// "M:SS.s" and the bare seconds form ("42.3") feeds use under a minute.
func ParseClock(clock string) (float64, error) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return 0, fmt.Errorf("%w: empty clock", ErrMalformedLiveFeed)
	}

	minutesPart, secondsPart := "0", clock
	if idx := strings.Index(clock, ":"); idx >= 0 {
		minutesPart, secondsPart = clock[:idx], clock[idx+1:]
	}

	minutes, err := strconv.Atoi(minutesPart)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("%w: clock %q", ErrMalformedLiveFeed, clock)
	}
	seconds, err := strconv.ParseFloat(secondsPart, 64)
	if err != nil || math.IsNaN(seconds) || seconds < 0 || seconds >= 60 {
		return 0, fmt.Errorf("%w: clock %q", ErrMalformedLiveFeed, clock)
	}

	return float64(minutes) + seconds/60, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
