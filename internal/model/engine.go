package model

// EngineOutput is the JSON document the policy engine writes to stdout.
type EngineOutput struct {
	Results []EngineResult `json:"results"`
	Errors  []EngineError  `json:"errors,omitempty"`
}

// EngineResult is the engine's view of one evaluated project.
type EngineResult struct {
	ProjectName  string  `json:"projectName,omitempty"`
	TargetFile   string  `json:"targetFile,omitempty"`
	OrgName      string  `json:"org,omitempty"`
	GitRemoteURL string  `json:"gitRemoteUrl,omitempty"`
	Issues       []Issue `json:"issues"`
}

// EngineError is a per-file problem the engine reports without failing the run.
type EngineError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}
