package output

import (
	"strings"
	"testing"
	"time"

	"github.com/oravec/nlcmd/internal/engine"
	"github.com/oravec/nlcmd/internal/history"
	"github.com/oravec/nlcmd/internal/multicmd"
	"github.com/oravec/nlcmd/internal/safety"
)

func plainDecision() engine.Decision {
	return engine.Decision{
		Query:   "list all files",
		Success: true,
		Candidate: engine.Candidate{
			Method:     engine.MethodRule,
			Command:    "ls -la",
			Confidence: 1.0,
		},
	}
}

func TestDecisionPlain(t *testing.T) {
	f := New(false)
	out := f.Decision(plainDecision())

	for _, want := range []string{"RULE", "ls -la", "100%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestDecisionWarning(t *testing.T) {
	f := New(false)
	d := plainDecision()
	d.Warning = "Low confidence (50%), please verify"
	out := f.Decision(d)
	if !strings.Contains(out, "Low confidence (50%)") {
		t.Errorf("output %q missing warning", out)
	}
}

func TestDecisionFailure(t *testing.T) {
	f := New(false)
	d := engine.Decision{
		Query: "transmogrify",
		Err:   engine.ErrNoResolution,
		Rejected: []engine.Candidate{
			{Method: engine.MethodRule, Err: engine.ErrNoResolution},
		},
	}
	out := f.Decision(d)
	if !strings.Contains(out, "error:") {
		t.Errorf("output %q missing error line", out)
	}
	if !strings.Contains(out, "rule:") {
		t.Errorf("output %q missing rejected strategy detail", out)
	}
}

func TestChainPlain(t *testing.T) {
	f := New(false)
	ch := multicmd.Chain{
		Query: "list files and then check disk space",
		Multi: true,
		Segments: []multicmd.Segment{
			{Order: 1, Query: "list files", Decision: plainDecision()},
			{Order: 2, Query: "check disk space", Decision: engine.Decision{
				Success: true,
				Candidate: engine.Candidate{
					Method: engine.MethodFuzzy, Command: "df -h", Confidence: 0.9,
				},
			}},
		},
		Chained:    "ls -la && df -h",
		Confidence: 0.9,
		Success:    true,
	}

	out := f.Chain(ch)
	for _, want := range []string{"2 actions detected", "CHAIN", "ls -la && df -h", "1.", "2."} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestChainSingleDelegates(t *testing.T) {
	f := New(false)
	ch := multicmd.Chain{
		Segments: []multicmd.Segment{{Order: 1, Decision: plainDecision()}},
		Chained:  "ls -la",
		Success:  true,
	}
	out := f.Chain(ch)
	if strings.Contains(out, "actions detected") {
		t.Errorf("single chain rendered as multi: %q", out)
	}
	if !strings.Contains(out, "ls -la") {
		t.Errorf("output %q missing command", out)
	}
}

func TestRiskPlain(t *testing.T) {
	f := New(false)
	report := safety.AnalyzeRisk("rm -rf /tmp/build")
	out := f.Risk(report)
	for _, want := range []string{"CRITICAL", "rm -rf"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	if out := f.Risk(safety.Report{}); out != "" {
		t.Errorf("safe report rendered %q, want empty", out)
	}
}

func TestSuggestionsPlain(t *testing.T) {
	f := New(false)
	out := f.Suggestions([]engine.Candidate{
		{Method: engine.MethodRule, Command: "ls -la", Confidence: 1.0},
		{Method: engine.MethodML, Command: "df -h", Confidence: 0.4},
	})
	for _, want := range []string{"1. ls -la", "2. df -h", "(ml, 40%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	if out := f.Suggestions(nil); !strings.Contains(out, "no suggestions") {
		t.Errorf("empty suggestions rendered %q", out)
	}
}

func TestHistoryPlain(t *testing.T) {
	f := New(false)
	out := f.History([]history.Entry{
		{
			Query:      "list all files",
			Command:    "ls -la",
			Method:     "rule",
			Confidence: 1.0,
			Executed:   true,
			CreatedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	})
	for _, want := range []string{"list all files", "ls -la", "(rule, 100%)", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	if out := f.History(nil); !strings.Contains(out, "history is empty") {
		t.Errorf("empty history rendered %q", out)
	}
}
