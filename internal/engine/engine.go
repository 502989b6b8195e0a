// Package engine is the resolution arbitrator: it runs the candidate
// strategies in a fixed priority order with confidence gates, and promotes
// the least-bad backup when nothing clears its threshold.
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/oravec/nlcmd/internal/classify"
	"github.com/oravec/nlcmd/internal/match"
	"github.com/oravec/nlcmd/internal/platform"
	"github.com/oravec/nlcmd/internal/query"
	"github.com/oravec/nlcmd/internal/rules"
	"github.com/oravec/nlcmd/internal/template"
)

// Acceptance gates for each cascade stage. The classifier gate is
// configurable; the others are fixed.
const (
	DefaultMLThreshold = 0.6
	templateThreshold  = 0.90
	fuzzyThreshold     = 0.75
)

// Decision is the arbitrator's structured outcome for one query.
type Decision struct {
	Query     string
	Processed query.Processed
	Candidate Candidate
	Success   bool
	Fallback  bool
	Warning   string
	Rejected  []Candidate
	Err       error
}

// Confidence is the chosen candidate's confidence, 0 when unresolved.
func (d Decision) Confidence() float64 {
	if !d.Success {
		return 0
	}
	return d.Candidate.Confidence
}

// Options restricts which strategies a single resolution may use.
type Options struct {
	// ForceMethod limits the cascade to one strategy family:
	// MethodML, MethodFuzzy or MethodRule. Zero value means no restriction.
	ForceMethod Method
}

// Config wires the engine's collaborators. Nil classifier or matcher
// disables the corresponding stage rather than failing.
type Config struct {
	Family      platform.Family
	Classifier  classify.Classifier
	Matcher     *match.Matcher
	Rules       *rules.Matcher
	Templates   bool
	MLThreshold float64
	Logger      *zap.Logger
}

// Engine holds read-only strategy state. Safe for concurrent use; every
// Decision is request-local.
type Engine struct {
	fam         platform.Family
	classifier  classify.Classifier
	matcher     *match.Matcher
	rules       *rules.Matcher
	templates   bool
	mlThreshold float64
	log         *zap.Logger
}

// New builds an engine from the available collaborators.
func New(cfg Config) *Engine {
	if cfg.MLThreshold <= 0 {
		cfg.MLThreshold = DefaultMLThreshold
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Engine{
		fam:         cfg.Family,
		classifier:  cfg.Classifier,
		matcher:     cfg.Matcher,
		rules:       cfg.Rules,
		templates:   cfg.Templates,
		mlThreshold: cfg.MLThreshold,
		log:         cfg.Logger,
	}
}

// Resolve runs the cascade for one query. Strategy faults never escape:
// they are normalized into failed candidates and the cascade continues.
func (e *Engine) Resolve(ctx context.Context, q string, opts Options) Decision {
	d := Decision{Query: q, Processed: query.Process(q)}
	if !d.Processed.Valid {
		d.Candidate = Candidate{Method: MethodNone}
		d.Err = ErrInvalidInput
		return d
	}

	force := opts.ForceMethod

	var mlBackup, fuzzyBackup *Candidate

	if e.classifier != nil && force != MethodRule && force != MethodFuzzy {
		c := e.tryClassifier(ctx, q)
		if c.Usable() && c.Confidence >= e.mlThreshold {
			return e.accept(d, c)
		}
		e.log.Debug("classifier below threshold",
			zap.Float64("confidence", c.Confidence),
			zap.Error(c.Err))
		mlBackup = &c
		d.Rejected = append(d.Rejected, c)
	}

	if e.templates {
		c := e.tryTemplate(q)
		if c.Usable() && c.Confidence >= templateThreshold {
			return e.accept(d, c)
		}
		// Template rejects are reported but deliberately kept out of the
		// low-confidence fallback pool.
		d.Rejected = append(d.Rejected, c)
	}

	if e.matcher != nil && force != MethodRule && force != MethodML {
		c := e.tryFuzzy(q)
		if c.Usable() && c.Confidence >= fuzzyThreshold {
			return e.accept(d, c)
		}
		fuzzyBackup = &c
		d.Rejected = append(d.Rejected, c)
	}

	if e.rules != nil && force != MethodML && force != MethodFuzzy {
		c := e.tryRule(q)
		if c.Usable() {
			return e.accept(d, c)
		}
		d.Rejected = append(d.Rejected, c)
	}

	if best := bestBackup(mlBackup, fuzzyBackup); best != nil {
		d.Candidate = *best
		d.Success = true
		d.Fallback = true
		d.Warning = fmt.Sprintf("Low confidence (%.0f%%), please verify", best.Confidence*100)
		e.log.Info("promoted low-confidence fallback",
			zap.String("method", string(best.Method)),
			zap.Float64("confidence", best.Confidence))
		return d
	}

	d.Candidate = Candidate{Method: MethodNone}
	d.Err = ErrNoResolution
	return d
}

func (e *Engine) accept(d Decision, c Candidate) Decision {
	d.Candidate = c
	d.Success = true
	e.log.Debug("resolved",
		zap.String("method", string(c.Method)),
		zap.String("command", c.Command),
		zap.Float64("confidence", c.Confidence))
	return d
}

// bestBackup picks the highest-confidence usable candidate from the
// fallback pool (classifier and fuzzy backups only).
func bestBackup(candidates ...*Candidate) *Candidate {
	var best *Candidate
	for _, c := range candidates {
		if c == nil || !c.Usable() {
			continue
		}
		if best == nil || c.Confidence > best.Confidence {
			best = c
		}
	}
	return best
}

func (e *Engine) tryClassifier(ctx context.Context, q string) (c Candidate) {
	defer recoverInto(&c, MethodML)

	pred, err := e.classifier.Predict(ctx, q)
	if err != nil {
		return failedCandidate(MethodML, err)
	}
	command, ok := e.classifier.CommandForLabel(pred.Label, e.fam)
	if !ok {
		return failedCandidate(MethodML, fmt.Errorf("no command for label %q on %s", pred.Label, e.fam))
	}
	return Candidate{
		Method:     MethodML,
		Command:    command,
		Confidence: clamp01(pred.Confidence),
		Intent:     pred.Label,
	}
}

func (e *Engine) tryTemplate(q string) (c Candidate) {
	defer recoverInto(&c, MethodTemplate)

	analysis := template.Analyze(q)
	result, ok := template.Generate(analysis, e.fam)
	if !ok {
		return failedCandidate(MethodTemplate, fmt.Errorf("no template for query"))
	}
	return Candidate{
		Method:     MethodTemplate,
		Command:    result.Command,
		Confidence: result.Confidence,
		Intent:     result.Intent,
	}
}

func (e *Engine) tryFuzzy(q string) (c Candidate) {
	defer recoverInto(&c, MethodFuzzy)

	res := e.matcher.SmartSearch(q, e.fam)
	if res.Best == nil {
		return failedCandidate(MethodFuzzy, fmt.Errorf("no fuzzy matches"))
	}
	method := MethodFuzzy
	if res.Best.Source == match.SourceDiagnosis {
		method = MethodDiagnosis
	}
	return Candidate{
		Method:       method,
		Command:      res.Best.Command,
		Confidence:   clamp01(float64(res.Confidence) / 100),
		Intent:       res.Best.Intent,
		Explanation:  res.Best.Explanation,
		MatchedQuery: res.Best.MatchedQuery,
	}
}

func (e *Engine) tryRule(q string) (c Candidate) {
	defer recoverInto(&c, MethodRule)

	command := e.rules.Handle(q)
	if rules.IsPlaceholder(command) {
		return failedCandidate(MethodRule, fmt.Errorf("no rule matched"))
	}
	return Candidate{Method: MethodRule, Command: command, Confidence: 1.0}
}

// recoverInto converts a strategy panic into a failed candidate so one
// faulty strategy cannot abort the cascade.
func recoverInto(c *Candidate, m Method) {
	if r := recover(); r != nil {
		*c = failedCandidate(m, fmt.Errorf("%s strategy panicked: %v", m, r))
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
