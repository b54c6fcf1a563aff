package model

// OrgSettings holds organization-level settings consumed read-only by a scan.
type OrgSettings struct {
	OrgName          string              `json:"orgName" yaml:"org_name" mapstructure:"org_name"`
	Versions         ArtifactVersions    `json:"versions" yaml:"versions" mapstructure:"versions"`
	IgnoreSettings   IgnoreSettings      `json:"ignoreSettings" yaml:"ignore_settings" mapstructure:"ignore_settings"`
	CustomSeverities map[string]Severity `json:"customSeverities,omitempty" yaml:"custom_severities,omitempty" mapstructure:"custom_severities"`
	Entitlements     Entitlements        `json:"entitlements" yaml:"entitlements" mapstructure:"entitlements"`
}

// ArtifactVersions pins the versions of the external artifacts a scan needs.
type ArtifactVersions struct {
	PolicyEngine string `json:"policyEngine,omitempty" yaml:"policy_engine,omitempty" mapstructure:"policy_engine"`
	RulesBundle  string `json:"rulesBundle,omitempty" yaml:"rules_bundle,omitempty" mapstructure:"rules_bundle"`
}

// IgnoreSettings controls how issues the engine marks as ignored are treated.
type IgnoreSettings struct {
	// DisregardIgnores reports ignored issues as regular ones.
	DisregardIgnores bool `json:"disregardIgnores" yaml:"disregard_ignores" mapstructure:"disregard_ignores"`
}

// Entitlements are org feature toggles.
type Entitlements struct {
	CustomRules bool `json:"customRules" yaml:"custom_rules" mapstructure:"custom_rules"`
}
