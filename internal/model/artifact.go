package model

import "fmt"

// ArtifactKind identifies an externally versioned artifact kept in the local cache.
type ArtifactKind string

const (
	// ArtifactPolicyEngine is the policy engine executable.
	ArtifactPolicyEngine ArtifactKind = "policy-engine"
	// ArtifactRulesBundle is the rule bundle consumed by the engine.
	ArtifactRulesBundle ArtifactKind = "rules-bundle"
)

// Artifact describes one artifact to resolve. Resolved is the usable local
// path and stays empty until resolution succeeds.
type Artifact struct {
	Kind     ArtifactKind
	Version  string
	CacheDir Path
	Override Path
	Resolved Path
}

// FileName returns the deterministic cache file name for the artifact.
func (a Artifact) FileName(goos, goarch string) string {
	switch a.Kind {
	case ArtifactPolicyEngine:
		name := fmt.Sprintf("%s_v%s_%s_%s", a.Kind, a.Version, goos, goarch)
		if goos == "windows" {
			name += ".exe"
		}

		return name
	case ArtifactRulesBundle:
		return fmt.Sprintf("%s_v%s.tar.gz", a.Kind, a.Version)
	default:
		return fmt.Sprintf("%s_v%s", a.Kind, a.Version)
	}
}

// LocalArtifacts are the resolved paths a scan runs with.
type LocalArtifacts struct {
	PolicyEngine Path
	RulesBundle  Path
}

// Set records the resolved path of a by its kind. Unresolved artifacts and
// unknown kinds are ignored.
func (l *LocalArtifacts) Set(a Artifact) {
	if a.Resolved == "" {
		return
	}

	switch a.Kind {
	case ArtifactPolicyEngine:
		l.PolicyEngine = a.Resolved
	case ArtifactRulesBundle:
		l.RulesBundle = a.Resolved
	}
}
