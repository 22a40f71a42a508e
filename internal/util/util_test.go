package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		age      time.Duration
		expected string
	}{
		{name: "future", age: -time.Minute, expected: "ahora"},
		{name: "sub-second", age: 400 * time.Millisecond, expected: "ahora"},
		{name: "under one minute", age: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", age: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", age: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", age: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "days and hours", age: 50 * time.Hour, expected: "2d2h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatAge(tt.age))
		})
	}
}

func TestSince(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "5m0s", Since(now, now.Add(-5*time.Minute)))
	assert.Equal(t, "—", Since(now, time.Time{}))
}
