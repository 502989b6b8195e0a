package engine

import (
	"context"
	"sort"
)

// Suggestions returns up to n alternative candidates for a query: the rule
// match first when one exists, then the classifier's top predictions.
func (e *Engine) Suggestions(ctx context.Context, q string, n int) []Candidate {
	if n <= 0 {
		n = 3
	}

	var out []Candidate

	if e.rules != nil {
		if rc := e.tryRule(q); rc.Usable() {
			out = append(out, rc)
		}
	}

	if e.classifier != nil {
		pred, err := e.classifier.Predict(ctx, q)
		if err == nil {
			labels := make([]string, 0, len(pred.Probabilities))
			for label := range pred.Probabilities {
				labels = append(labels, label)
			}
			sort.Slice(labels, func(i, j int) bool {
				pi, pj := pred.Probabilities[labels[i]], pred.Probabilities[labels[j]]
				if pi != pj {
					return pi > pj
				}
				return labels[i] < labels[j]
			})
			for _, label := range labels {
				command, ok := e.classifier.CommandForLabel(label, e.fam)
				if !ok {
					continue
				}
				out = append(out, Candidate{
					Method:     MethodML,
					Command:    command,
					Confidence: clamp01(pred.Probabilities[label]),
					Intent:     label,
				})
			}
		}
	}

	if len(out) > n {
		out = out[:n]
	}
	return out
}
