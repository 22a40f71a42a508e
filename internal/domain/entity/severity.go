package entity

import "strings"

// SeverityBucket is the coarse three-level classification of a free-text severity code.
type SeverityBucket string

const (
	SeverityLow    SeverityBucket = "LOW"
	SeverityMedium SeverityBucket = "MEDIUM"
	SeverityHigh   SeverityBucket = "HIGH"
)

var (
	highSeverities = map[string]struct{}{
		"CRITICAL":          {},
		"BLOQUEA_OPERACION": {},
		"BLOQUEA_OPERACIÓN": {},
		"ALTA":              {},
	}
	mediumSeverities = map[string]struct{}{
		"WARNING": {},
		"WARN":    {},
		"MEDIA":   {},
	}
)

// BucketFor maps a severity code to its bucket. Unknown and empty codes are LOW.
func BucketFor(severity string) SeverityBucket {
	s := strings.ToUpper(strings.TrimSpace(severity))

	if _, ok := highSeverities[s]; ok {
		return SeverityHigh
	}
	if _, ok := mediumSeverities[s]; ok {
		return SeverityMedium
	}

	return SeverityLow
}

// IsCritical reports whether the code is shown as critical on the detail view,
// which additionally treats a literal HIGH as critical.
func IsCritical(severity string) bool {
	s := strings.ToUpper(strings.TrimSpace(severity))

	return s == string(SeverityHigh) || BucketFor(s) == SeverityHigh
}

// ParseSeverityBucket parses a bucket name; ok is false for anything else.
func ParseSeverityBucket(s string) (SeverityBucket, bool) {
	switch b := SeverityBucket(strings.ToUpper(strings.TrimSpace(s))); b {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return b, true
	default:
		return "", false
	}
}

// Label returns the label shown in the history list.
func (b SeverityBucket) Label() string {
	switch b {
	case SeverityHigh:
		return "Alta"
	case SeverityMedium:
		return "Media"
	default:
		return "Baja"
	}
}
