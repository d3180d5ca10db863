package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FormatClock renders minutes as HH:MM. Hours are not wrapped at 24,
// so 1500 minutes renders as "25:00".
func FormatClock(minutes int) string {
	sign := ""
	abs := uint64(minutes)
	if minutes < 0 {
		sign = "-"
		abs = -abs
	}
	return fmt.Sprintf("%s%02d:%02d", sign, abs/60, abs%60)
}

// ParseClock accepts "HH:MM" or a bare minute count and returns minutes.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("parse clock: value must not be empty")
	}

	hh, mm, hasColon := strings.Cut(s, ":")
	if !hasColon {
		m, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("parse clock: %q is neither HH:MM nor minutes: %w", s, err)
		}
		if m < 0 {
			return 0, fmt.Errorf("parse clock: %q must not be negative", s)
		}
		return m, nil
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 {
		return 0, fmt.Errorf("parse clock: invalid hours in %q", s)
	}
	if len(mm) != 2 {
		return 0, fmt.Errorf("parse clock: minutes in %q must have two digits", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock: invalid minutes in %q", s)
	}

	return h*60 + m, nil
}
