package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type TimeUnit string

const (
	TimeUnitSecond TimeUnit = "s"
	TimeUnitMinute TimeUnit = "m"
	TimeUnitHour   TimeUnit = "h"
	TimeUnitDay    TimeUnit = "d"
	TimeUnitWeek   TimeUnit = "w"
	TimeUnitMonth  TimeUnit = "mo"
	TimeUnitYear   TimeUnit = "y"
)

var timeUnitSeconds = map[TimeUnit]int64{
	TimeUnitSecond: 1,
	TimeUnitMinute: 60,
	TimeUnitHour:   3_600,
	TimeUnitDay:    86_400,
	TimeUnitWeek:   604_800,
	TimeUnitMonth:  2_592_000,
	TimeUnitYear:   31_536_000,
}

var orderedTimeUnits = []TimeUnit{
	TimeUnitSecond,
	TimeUnitMinute,
	TimeUnitHour,
	TimeUnitDay,
	TimeUnitWeek,
	TimeUnitMonth,
	TimeUnitYear,
}

// SecondsFor returns the number of seconds in one unit of code.
func SecondsFor(code string) (int64, error) {
	seconds, ok := timeUnitSeconds[TimeUnit(code)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, code)
	}

	return seconds, nil
}

// TimeUnits returns the defined unit codes from shortest to longest.
func TimeUnits() []TimeUnit {
	units := make([]TimeUnit, len(orderedTimeUnits))
	copy(units, orderedTimeUnits)
	return units
}

// ParseDuration converts a literal such as "3d" or "12mo" to seconds.
func ParseDuration(expr string) (int64, error) {
	trimmed := strings.TrimSpace(expr)

	split := strings.IndexFunc(trimmed, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if split < 0 {
		split = len(trimmed)
	}
	if split == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, expr)
	}

	amount, err := strconv.ParseInt(trimmed[:split], 10, 64)
	if err != nil || amount <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, expr)
	}

	seconds, err := SecondsFor(trimmed[split:])
	if err != nil {
		return 0, err
	}

	if amount > math.MaxInt64/seconds {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidDuration, expr)
	}

	return amount * seconds, nil
}
