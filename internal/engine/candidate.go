package engine

import "errors"

// Method names the strategy that produced a candidate.
type Method string

const (
	MethodML        Method = "ml"
	MethodTemplate  Method = "template"
	MethodFuzzy     Method = "fuzzy"
	MethodDiagnosis Method = "problem_diagnosis"
	MethodRule      Method = "rule"
	MethodNone      Method = "none"
)

// Terminal outcomes of the cascade.
var (
	// ErrInvalidInput marks an empty or stop-word-only query. No strategy
	// is attempted.
	ErrInvalidInput = errors.New("invalid or empty query")

	// ErrNoResolution marks an exhausted cascade with no usable candidate.
	ErrNoResolution = errors.New("no matching command found; try rephrasing the request")
)

// Candidate is one strategy's proposal. A candidate without a command is
// unusable and must carry zero confidence.
type Candidate struct {
	Method       Method
	Command      string
	Confidence   float64
	Intent       string
	Explanation  string
	MatchedQuery string
	Err          error
}

// Usable reports whether the candidate carries a command at all.
func (c Candidate) Usable() bool { return c.Command != "" }

func failedCandidate(m Method, err error) Candidate {
	return Candidate{Method: m, Err: err}
}
