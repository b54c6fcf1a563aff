package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Clone(t *testing.T) {
	original := Options{
		RequestedProjectName: "proj",
		ProjectNames:         []string{"a", "b"},
		Flags:                map[string]string{FlagSeverityThreshold: "high"},
	}

	clone := original.Clone()
	clone.Path = "p1"
	clone.ProjectNames[0] = "changed"
	clone.SetFlag(FlagSeverityThreshold, "low")
	clone.SetFlag(FlagScan, "planned-values")

	assert.Empty(t, original.Path)
	assert.Equal(t, []string{"a", "b"}, original.ProjectNames)
	assert.Equal(t, map[string]string{FlagSeverityThreshold: "high"}, original.Flags)
}

func TestOptions_CloneNilCollections(t *testing.T) {
	clone := Options{}.Clone()

	assert.Nil(t, clone.ProjectNames)
	assert.Nil(t, clone.Flags)

	clone.SetFlag(FlagVarFile, "vars.tf")

	value, ok := clone.Flag(FlagVarFile)
	require.True(t, ok)
	assert.Equal(t, "vars.tf", value)
}

func TestOptions_EngineArgs(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]string
		want  []string
	}{
		{"no flags", nil, nil},
		{"sorted", map[string]string{"scan": "resource-changes", "experimental": "", "var-file": "x.tfvars"}, []string{
			"--experimental",
			"--scan=resource-changes",
			"--var-file=x.tfvars",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Options{Flags: tt.flags}.EngineArgs())
		})
	}
}
