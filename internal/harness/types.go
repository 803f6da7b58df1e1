package harness

import "github.com/roach88/typeshift/internal/store"

// Result is the outcome of running one case.
type Result struct {
	// Pass indicates overall case success.
	// True if every expectation matched.
	Pass bool `json:"pass"`

	// Output is the converted text. Empty when the conversion failed.
	Output string `json:"output"`

	// Stage is the stage the conversion failed in, if it failed.
	Stage string `json:"stage,omitempty"`

	// Message is the conversion error text, if it failed.
	Message string `json:"message,omitempty"`

	// Errors contains check failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Run is the history record written for this conversion.
	Run store.Run `json:"run"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a check failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
