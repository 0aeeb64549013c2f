// Package duration parses short human durations such as "2h", "7d" or
// "4w", the form "docsite log --since" accepts.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var pattern = regexp.MustCompile(`^(\d+)([hdwm])$`)

const day = 24 * time.Hour

// Parse parses Nh (hours), Nd (days), Nw (weeks) or Nm (months of 30
// days).
func Parse(s string) (time.Duration, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid duration %q (use 2h, 7d, 4w or 3m)", s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	unit := map[string]time.Duration{"h": time.Hour, "d": day, "w": 7 * day, "m": 30 * day}[m[2]]
	return time.Duration(n) * unit, nil
}
