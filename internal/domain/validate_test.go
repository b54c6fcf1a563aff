package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name      string
		opts      m.Options
		pathCount int
		wantErr   error
	}{
		{
			name:      "single path with project name",
			opts:      m.Options{RequestedProjectName: "infra"},
			pathCount: 1,
		},
		{
			name:      "multiple paths with project name",
			opts:      m.Options{RequestedProjectName: "infra"},
			pathCount: 2,
			wantErr:   ErrUnsupportedOptionCombination,
		},
		{
			name:      "valid severity threshold",
			opts:      m.Options{Flags: map[string]string{m.FlagSeverityThreshold: "high"}},
			pathCount: 3,
		},
		{
			name:      "invalid severity threshold",
			opts:      m.Options{Flags: map[string]string{m.FlagSeverityThreshold: "urgent"}},
			pathCount: 1,
			wantErr:   ErrInvalidFlagValue,
		},
		{
			name:      "valid scan mode",
			opts:      m.Options{Flags: map[string]string{m.FlagScan: "resource-changes"}},
			pathCount: 1,
		},
		{
			name:      "invalid scan mode",
			opts:      m.Options{Flags: map[string]string{m.FlagScan: "everything"}},
			pathCount: 1,
			wantErr:   ErrInvalidFlagValue,
		},
		{
			name:      "unknown passthrough flags are not validated",
			opts:      m.Options{Flags: map[string]string{"experimental": ""}},
			pathCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptions(tt.opts, tt.pathCount)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateOptions_Message(t *testing.T) {
	err := ValidateOptions(m.Options{Flags: map[string]string{m.FlagSeverityThreshold: "urgent"}}, 1)

	assert.EqualError(t, err, `Unsupported value "urgent" for flag --severity-threshold. Supported values are: low, medium, high, critical`)
}
