// Package util holds small formatting helpers shared by the front-ends.
package util

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// FormatAge formats how long ago something happened (e.g., "45s", "5m10s",
// "1h30m", "2d3h"). Future and sub-second ages read "ahora".
func FormatAge(age time.Duration) string {
	age = age.Round(time.Second)

	switch {
	case age < time.Second:
		return "ahora"
	case age < time.Minute:
		return fmt.Sprintf("%ds", int(age.Seconds()))
	case age < time.Hour:
		m := int(age.Minutes())
		s := int(age.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	case age < day:
		h := int(age.Hours())
		m := int(age.Minutes()) % 60

		return fmt.Sprintf("%dh%dm", h, m)
	default:
		d := int(age / day)
		h := int(age.Hours()) % 24

		return fmt.Sprintf("%dd%dh", d, h)
	}
}

// Since returns the age of t at now, or "—" for the zero time.
func Since(now, t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	return FormatAge(now.Sub(t))
}
