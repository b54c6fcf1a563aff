package model

import (
	"fmt"
	"strings"
)

// Severity is the severity of a single issue reported by the policy engine.
type Severity string

// Known severities, lowest first.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// ParseSeverity normalizes s into a known Severity.
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := severityRank[severity]; !ok {
		return "", fmt.Errorf("unknown severity %q", s)
	}

	return severity, nil
}

// AtLeast reports whether s is equal to or more severe than threshold.
// Unknown severities are never filtered out.
func (s Severity) AtLeast(threshold Severity) bool {
	rank, ok := severityRank[s]
	if !ok {
		return true
	}

	floor, ok := severityRank[threshold]
	if !ok {
		return true
	}

	return rank >= floor
}
