// Package multicmd splits conversational requests that describe several
// actions ("create a folder and then create a file in it") into segments,
// resolves each through the cascade, and chains the results.
package multicmd

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/oravec/nlcmd/internal/engine"
	"github.com/oravec/nlcmd/internal/platform"
)

// actionVerbs are the tokens that count as an action when deciding whether
// a request describes more than one command.
var actionVerbs = map[string]struct{}{
	"create": {}, "make": {}, "delete": {}, "remove": {},
	"copy": {}, "move": {}, "list": {}, "show": {},
	"find": {}, "kill": {}, "stop": {}, "start": {},
	"run": {}, "open": {}, "close": {}, "install": {},
	"update": {}, "rename": {}, "change": {},
}

// conjunctions are checked as whole phrases, longest first so "and then"
// is not mistaken for a bare "and".
var conjunctions = []string{
	"and then", "after that", "then", "and", "also", "next",
}

// separators split a multi-action request into segments. Ordered so the
// longer connectives win before their substrings.
var separators = []*regexp.Regexp{
	regexp.MustCompile(`\s+and\s+then\s+`),
	regexp.MustCompile(`\s+then\s+`),
	regexp.MustCompile(`\s+and\s+`),
	regexp.MustCompile(`\s+also\s+`),
	regexp.MustCompile(`\s+after\s+that\s+`),
	regexp.MustCompile(`\s+next\s+`),
	regexp.MustCompile(`[,;]\s+`),
}

// mkdirRe pulls the folder argument out of an already resolved directory
// creation command so later segments can refer back to it.
var mkdirRe = regexp.MustCompile(`(?:mkdir|md)\s+(?:-p\s+)?([^\s&|;]+)`)

// backRefs rewrite "file named X in it" style references once the folder
// they point at is known. Group 1 is the filename to re-root.
var backRefs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bfile\s+(?:named|called)\s+(\S+)\s+(?:in|inside)\s+(?:it|there|that\s+folder|the\s+folder)\b`),
	regexp.MustCompile(`(?i)\b(\S+\.\w+)\s+(?:in|inside)\s+(?:it|there|that\s+folder)\b`),
}

// Segment is one resolved piece of a multi-action request.
type Segment struct {
	Order    int
	Query    string
	Decision engine.Decision
}

// Chain is the orchestrator's outcome. Chained is only set when every
// segment resolved; Confidence is the weakest segment's confidence.
type Chain struct {
	Query      string
	Multi      bool
	Segments   []Segment
	Chained    string
	Confidence float64
	Success    bool
}

// Processor drives the engine across the segments of one request.
type Processor struct {
	engine *engine.Engine
	fam    platform.Family
	log    *zap.Logger
}

// New builds a processor over an already configured engine.
func New(e *engine.Engine, fam platform.Family, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{engine: e, fam: fam, log: log}
}

// IsMulti reports whether the request describes more than one action: at
// least two action verbs joined by a conjunction.
func (p *Processor) IsMulti(q string) bool {
	lower := strings.ToLower(strings.TrimSpace(q))
	if lower == "" {
		return false
	}

	verbs := 0
	for _, tok := range strings.Fields(lower) {
		if _, ok := actionVerbs[strings.Trim(tok, ".,;!?")]; ok {
			verbs++
		}
	}
	if verbs < 2 {
		return false
	}

	padded := " " + lower + " "
	for _, conj := range conjunctions {
		if strings.Contains(padded, " "+conj+" ") {
			return true
		}
	}
	return false
}

// Split breaks the request into per-action segments. The first connective
// pattern that yields more than one non-empty segment wins; later patterns
// never re-split the parts.
func (p *Processor) Split(q string) []string {
	return splitSegments(strings.TrimSpace(q))
}

func splitSegments(q string) []string {
	for _, sep := range separators {
		parts := sep.Split(q, -1)
		if len(parts) < 2 {
			continue
		}
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		if len(out) > 1 {
			return out
		}
	}
	return []string{q}
}

// Process resolves a request end to end. Single-action requests pass
// straight through the engine; multi-action requests are split, resolved
// segment by segment with cross-segment folder references rewritten, and
// joined with " && ".
func (p *Processor) Process(ctx context.Context, q string, opts engine.Options) Chain {
	ch := Chain{Query: q}

	if !p.IsMulti(q) {
		d := p.engine.Resolve(ctx, q, opts)
		ch.Segments = []Segment{{Order: 1, Query: q, Decision: d}}
		ch.Success = d.Success
		ch.Confidence = d.Confidence()
		if d.Success {
			ch.Chained = d.Candidate.Command
		}
		return ch
	}

	ch.Multi = true
	segments := p.Split(q)
	p.log.Debug("split multi-action request",
		zap.Int("segments", len(segments)))

	ch.Success = true
	ch.Confidence = 1.0
	var commands []string

	for i, seg := range segments {
		resolved := p.resolveReferences(seg, ch.Segments)
		d := p.engine.Resolve(ctx, resolved, opts)
		ch.Segments = append(ch.Segments, Segment{Order: i + 1, Query: resolved, Decision: d})

		if !d.Success {
			ch.Success = false
			p.log.Debug("segment unresolved", zap.String("segment", resolved), zap.Error(d.Err))
			continue
		}
		commands = append(commands, d.Candidate.Command)
		if c := d.Confidence(); c < ch.Confidence {
			ch.Confidence = c
		}
	}

	if !ch.Success {
		ch.Confidence = 0
		return ch
	}
	ch.Chained = strings.Join(commands, " && ")
	return ch
}

// resolveReferences rewrites back-references like "in it" against the most
// recently created folder from earlier segments.
func (p *Processor) resolveReferences(seg string, prior []Segment) string {
	folder := lastCreatedFolder(prior)
	if folder == "" {
		return seg
	}
	sep := p.fam.PathSep()
	for _, re := range backRefs {
		if m := re.FindStringSubmatch(seg); m != nil {
			return re.ReplaceAllString(seg, "file named "+folder+sep+"$1")
		}
	}
	return seg
}

// lastCreatedFolder scans the already resolved segments newest first for a
// directory creation command and returns its argument.
func lastCreatedFolder(prior []Segment) string {
	for i := len(prior) - 1; i >= 0; i-- {
		if !prior[i].Decision.Success {
			continue
		}
		if m := mkdirRe.FindStringSubmatch(prior[i].Decision.Candidate.Command); m != nil {
			return strings.Trim(m[1], `"'`)
		}
	}
	return ""
}
