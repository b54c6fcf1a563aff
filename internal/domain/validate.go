package domain

import (
	"slices"

	m "iacscan.dev/pkg/iacscan/internal/model"
)

var (
	allowedSeverityThresholds = []string{"low", "medium", "high", "critical"}
	allowedScanModes          = []string{"planned-values", "resource-changes"}
)

// ValidateOptions checks option combinations and passthrough flag values for
// one path of a scan over pathCount paths.
func ValidateOptions(opts m.Options, pathCount int) error {
	if pathCount > 1 && opts.RequestedProjectName != "" {
		return newUnsupportedOptionCombinationError("multiple paths", "project-name")
	}

	if value, ok := opts.Flag(m.FlagSeverityThreshold); ok && !slices.Contains(allowedSeverityThresholds, value) {
		return newInvalidFlagValueError(m.FlagSeverityThreshold, value, allowedSeverityThresholds)
	}

	if value, ok := opts.Flag(m.FlagScan); ok && !slices.Contains(allowedScanModes, value) {
		return newInvalidFlagValueError(m.FlagScan, value, allowedScanModes)
	}

	return nil
}
