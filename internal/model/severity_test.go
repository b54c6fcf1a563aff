package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	got, err := ParseSeverity(" HIGH ")
	require.NoError(t, err)
	assert.Equal(t, SeverityHigh, got)

	_, err = ParseSeverity("urgent")
	assert.Error(t, err)
}

func TestSeverity_AtLeast(t *testing.T) {
	tests := []struct {
		severity  Severity
		threshold Severity
		want      bool
	}{
		{SeverityLow, SeverityLow, true},
		{SeverityLow, SeverityMedium, false},
		{SeverityCritical, SeverityHigh, true},
		{SeverityMedium, SeverityHigh, false},
		{Severity("unknown"), SeverityCritical, true},
		{SeverityLow, Severity(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity)+">="+string(tt.threshold), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.severity.AtLeast(tt.threshold))
		})
	}
}
