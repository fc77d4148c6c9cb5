package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidRange marks a malformed date range or period token. It is
// surfaced before any network call is made.
var ErrInvalidRange = errors.New("invalid date range")

const dateLayout = "2006-01-02"

// DateRange selects the analysis window: either an absolute Start/End pair
// or a relative Period token such as "30d", "26w", "6mo", "2y" or "max".
// Exactly one of the two forms is set.
type DateRange struct {
	Start  time.Time
	End    time.Time
	Period string
}

// ParseDateRange builds a DateRange from raw config input. start and end use
// YYYY-MM-DD; an empty end defaults to today. A period token excludes the
// absolute form.
func ParseDateRange(start, end, period string) (DateRange, error) {
	period = strings.ToLower(strings.TrimSpace(period))
	if period != "" {
		if start != "" || end != "" {
			return DateRange{}, fmt.Errorf("%w: period %q and start/end are mutually exclusive", ErrInvalidRange, period)
		}
		if _, _, err := splitPeriod(period); err != nil {
			return DateRange{}, err
		}
		return DateRange{Period: period}, nil
	}

	if start == "" {
		return DateRange{}, fmt.Errorf("%w: no start date or period given", ErrInvalidRange)
	}
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: bad start date %q", ErrInvalidRange, start)
	}
	e := time.Now().UTC().Truncate(24 * time.Hour)
	if end != "" {
		e, err = time.Parse(dateLayout, end)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: bad end date %q", ErrInvalidRange, end)
		}
	}
	if e.Before(s) {
		return DateRange{}, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, start, e.Format(dateLayout))
	}
	return DateRange{Start: s, End: e}, nil
}

// Relative reports whether the range is a period token.
func (r DateRange) Relative() bool { return r.Period != "" }

// Label returns a short human-readable form used in chart titles and logs.
func (r DateRange) Label() string {
	if r.Relative() {
		return r.Period
	}
	return r.Start.Format(dateLayout) + ".." + r.End.Format(dateLayout)
}

// TargetDays returns the approximate calendar-day span a relative period asks
// for, used to trim provider responses that cover a wider window. Zero means
// no trimming ("max" or an absolute range).
func (r DateRange) TargetDays() int {
	if !r.Relative() || r.Period == "max" {
		return 0
	}
	n, unit, err := splitPeriod(r.Period)
	if err != nil {
		return 0
	}
	switch unit {
	case "d":
		return n
	case "w":
		return n * 7
	case "mo":
		return n * 30
	default: // "y"
		return n * 365
	}
}

// splitPeriod decomposes a period token into count and unit.
func splitPeriod(period string) (int, string, error) {
	if period == "max" {
		return 0, "max", nil
	}
	for _, unit := range []string{"mo", "d", "w", "y"} {
		if !strings.HasSuffix(period, unit) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(period, unit))
		if err != nil || n <= 0 {
			break
		}
		return n, unit, nil
	}
	return 0, "", fmt.Errorf("%w: unrecognized period %q (use forms like 30d, 26w, 6mo, 2y, max)", ErrInvalidRange, period)
}
