package solvetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedClock = errors.New("malformed clock")

// ParseClock is the inverse of CentisecondsToClock for user input. It also
// accepts "DNF" and "DNS", and maps an empty string to a skipped attempt.
// The centiseconds part is optional ("1:05" is 6500).
func ParseClock(s string) (int64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "":
		return SkippedValue, nil
	case "DNF":
		return DNFValue, nil
	case "DNS":
		return DNSValue, nil
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	var centis int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		n, err := parseDigits(frac)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
		}
		centis = n
	}

	groups := strings.Split(whole, ":")
	if len(groups) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
	}
	var seconds int64
	for i, g := range groups {
		n, err := parseDigits(g)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
		}
		// Inner groups are base 60.
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
		}
		// Each step stays below MaxCentiseconds/100, so nothing overflows.
		if n > MaxCentiseconds/100 {
			return 0, fmt.Errorf("%w: %q exceeds %s", ErrMalformedClock, s, CentisecondsToClock(MaxCentiseconds))
		}
		seconds = seconds*60 + n
		if seconds > MaxCentiseconds/100 {
			return 0, fmt.Errorf("%w: %q exceeds %s", ErrMalformedClock, s, CentisecondsToClock(MaxCentiseconds))
		}
	}

	cs := seconds*100 + centis
	if cs > MaxCentiseconds {
		return 0, fmt.Errorf("%w: %q exceeds %s", ErrMalformedClock, s, CentisecondsToClock(MaxCentiseconds))
	}
	return cs, nil
}

func parseDigits(s string) (int64, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, errors.New("not a number")
	}
	return strconv.ParseInt(s, 10, 64)
}
