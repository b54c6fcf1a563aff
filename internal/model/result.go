package model

// Issue is a single policy violation.
type Issue struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Severity Severity `json:"severity" yaml:"severity"`
	Resource string   `json:"resource,omitempty" yaml:"resource,omitempty"`
	FilePath string   `json:"filePath,omitempty" yaml:"filePath,omitempty"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Ignored  bool     `json:"ignored,omitempty" yaml:"ignored,omitempty"`
}

// ResultError is the failure-shaped payload of a TestResult.
type ResultError struct {
	Code    int    `json:"code" yaml:"code"`
	StrCode string `json:"strCode" yaml:"strCode"`
	Message string `json:"message" yaml:"message"`
}

// TestResult is one entry of a scan report. Exactly one of Issues or Error is
// meaningful: Error is set when the path failed.
type TestResult struct {
	OrgName      string       `json:"org,omitempty" yaml:"org,omitempty"`
	ProjectName  string       `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	TargetFile   string       `json:"targetFile,omitempty" yaml:"targetFile,omitempty"`
	Path         string       `json:"path" yaml:"path"`
	GitRemoteURL string       `json:"gitRemoteUrl,omitempty" yaml:"gitRemoteUrl,omitempty"`
	Issues       []Issue      `json:"issues,omitempty" yaml:"issues,omitempty"`
	Error        *ResultError `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the result represents a failed path.
func (r TestResult) Failed() bool {
	return r.Error != nil
}

// Failure is a path that could not be scanned.
type Failure struct {
	Path          string `json:"path" yaml:"path"`
	FailureReason string `json:"failureReason" yaml:"failureReason"`
}

// TestOutcome is what a results processor produces for one path.
type TestOutcome struct {
	Results     []TestResult
	Failures    []Failure
	IgnoreCount int
}

// OutputMeta identifies where results were reported.
type OutputMeta struct {
	OrgName      string `json:"orgName" yaml:"orgName"`
	ProjectName  string `json:"projectName" yaml:"projectName"`
	GitRemoteURL string `json:"gitRemoteUrl,omitempty" yaml:"gitRemoteUrl,omitempty"`
}

// ScanAggregate accumulates the outcome of every scanned path. Results and
// ResultOptions always have the same length and order.
type ScanAggregate struct {
	OutputMeta         *OutputMeta  `json:"iacOutputMeta,omitempty" yaml:"iacOutputMeta,omitempty"`
	Failures           []Failure    `json:"iacScanFailures" yaml:"iacScanFailures"`
	IgnoredIssuesCount int          `json:"iacIgnoredIssuesCount" yaml:"iacIgnoredIssuesCount"`
	Results            []TestResult `json:"results" yaml:"results"`
	ResultOptions      []Options    `json:"resultOptions" yaml:"resultOptions"`
}

// IssueCount returns the number of issues across successful results.
func (a ScanAggregate) IssueCount() int {
	count := 0
	for _, result := range a.Results {
		count += len(result.Issues)
	}

	return count
}
