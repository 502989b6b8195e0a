// Package classify defines the capability contract for the external
// statistical classifier and its label-to-command mapping. The core never
// depends on a concrete model; absence of a classifier simply disables
// that stage of the cascade.
package classify

import (
	"context"

	"github.com/oravec/nlcmd/internal/platform"
)

// Prediction is the classifier's answer for one query.
type Prediction struct {
	Label         string
	Confidence    float64
	Probabilities map[string]float64
}

// Classifier is the black-box predictor contract.
type Classifier interface {
	// Predict labels a normalized query. An error means the strategy
	// faulted; the caller converts it to a failed candidate.
	Predict(ctx context.Context, query string) (Prediction, error)

	// CommandForLabel maps a predicted label to a concrete command for
	// the family. False when the label has no command on that family.
	CommandForLabel(label string, fam platform.Family) (string, bool)
}
