package platform

// Status is the result of one deploy step.
type Status string

// Step statuses.
const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// ReasonNotSupported is the skip reason for features a target cannot represent.
const ReasonNotSupported = "Not supported"

// Outcome is the per-feature result of a deploy step.
type Outcome struct {
	Status   Status   `json:"status"`
	Reason   string   `json:"reason,omitempty"`
	Files    []string `json:"files,omitempty"`
	Count    int      `json:"count,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Succeeded returns a success outcome for count items written to files.
func Succeeded(count int, files ...string) Outcome {
	return Outcome{Status: StatusSuccess, Count: count, Files: files}
}

// Skipped returns a skipped outcome.
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason}
}

// Skipped reports whether the step did nothing.
func (o Outcome) Skipped() bool {
	return o.Status == StatusSkipped
}

// Result is the outcome of deploying one Team to one target.
// Success false means Err is set and files from earlier steps may remain.
type Result struct {
	Target   string              `json:"target"`
	Success  bool                `json:"success"`
	Details  map[Feature]Outcome `json:"details"`
	Warnings []string            `json:"warnings,omitempty"`
	Error    string              `json:"error,omitempty"`
	BackupID string              `json:"backupId,omitempty"`

	Err error `json:"-"`
}

// NewResult returns an empty successful result for target.
func NewResult(target string) *Result {
	return &Result{
		Target:  target,
		Success: true,
		Details: make(map[Feature]Outcome),
	}
}

// Fail marks the result failed with err.
func (r *Result) Fail(err error) {
	r.Success = false
	r.Err = err
	if err != nil {
		r.Error = err.Error()
	}
}

// Files returns every file reported by the steps, in deploy order.
func (r *Result) Files() []string {
	var files []string
	for _, f := range DeployOrder() {
		if o, ok := r.Details[f]; ok {
			files = append(files, o.Files...)
		}
	}
	return files
}
