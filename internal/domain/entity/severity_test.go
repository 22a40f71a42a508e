package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		severity string
		want     SeverityBucket
	}{
		{severity: "CRITICAL", want: SeverityHigh},
		{severity: "BLOQUEA_OPERACION", want: SeverityHigh},
		{severity: "BLOQUEA_OPERACIÓN", want: SeverityHigh},
		{severity: "ALTA", want: SeverityHigh},
		{severity: "alta", want: SeverityHigh},
		{severity: "WARNING", want: SeverityMedium},
		{severity: "warn", want: SeverityMedium},
		{severity: "MEDIA", want: SeverityMedium},
		{severity: "INFO", want: SeverityLow},
		{severity: "HIGH", want: SeverityLow},
		{severity: "", want: SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketFor(tt.severity))
		})
	}
}

func TestIsCritical(t *testing.T) {
	assert.True(t, IsCritical("HIGH"))
	assert.True(t, IsCritical("critical"))
	assert.False(t, IsCritical("WARNING"))
	assert.False(t, IsCritical(""))
}

func TestParseSeverityBucket(t *testing.T) {
	b, ok := ParseSeverityBucket("medium")
	assert.True(t, ok)
	assert.Equal(t, SeverityMedium, b)

	_, ok = ParseSeverityBucket("ALL")
	assert.False(t, ok)

	assert.Equal(t, "Alta", SeverityHigh.Label())
	assert.Equal(t, "Baja", SeverityLow.Label())
}
