package model

import (
	"maps"
	"slices"
	"sort"
)

// Options is the per-scan configuration bag. Recognized options have their own
// fields; anything else the engine understands travels in Flags untouched.
type Options struct {
	// Path is the scan target this copy of the options belongs to.
	Path Path `json:"path,omitempty" yaml:"path,omitempty"`
	// RequestedProjectName is the raw value of the `project-name` option.
	RequestedProjectName string `json:"project-name,omitempty" yaml:"project-name,omitempty"`
	// ProjectName is the display/project-name hint derived for a single path.
	ProjectName string `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	// ProjectNames lists sub-project names when one engine invocation fans out.
	ProjectNames []string `json:"projectNames,omitempty" yaml:"projectNames,omitempty"`
	// File is the scanned file when the path names a single file rather than a directory.
	File          string            `json:"file,omitempty" yaml:"file,omitempty"`
	RemoteRepoURL string            `json:"remote-repo-url,omitempty" yaml:"remote-repo-url,omitempty"`
	Flags         map[string]string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Well-known engine passthrough flags.
const (
	FlagSeverityThreshold = "severity-threshold"
	FlagVarFile           = "var-file"
	FlagScan              = "scan"
	FlagTargetName        = "target-name"
)

// Clone returns a deep copy that shares no mutable state with o.
func (o Options) Clone() Options {
	clone := o
	clone.ProjectNames = slices.Clone(o.ProjectNames)
	clone.Flags = maps.Clone(o.Flags)

	return clone
}

// Flag returns a passthrough flag value.
func (o Options) Flag(name string) (string, bool) {
	if o.Flags == nil {
		return "", false
	}

	value, ok := o.Flags[name]

	return value, ok
}

// SetFlag stores a passthrough flag value, allocating the map on first use.
func (o *Options) SetFlag(name, value string) {
	if o.Flags == nil {
		o.Flags = map[string]string{}
	}

	o.Flags[name] = value
}

// EngineArgs renders passthrough flags as `--name=value` in a stable order.
func (o Options) EngineArgs() []string {
	if len(o.Flags) == 0 {
		return nil
	}

	names := make([]string, 0, len(o.Flags))
	for name := range o.Flags {
		names = append(names, name)
	}

	sort.Strings(names)

	args := make([]string, 0, len(names))
	for _, name := range names {
		value := o.Flags[name]
		if value == "" {
			args = append(args, "--"+name)
			continue
		}

		args = append(args, "--"+name+"="+value)
	}

	return args
}
