// Package output renders resolutions, chains and risk reports for the
// terminal.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oravec/nlcmd/internal/engine"
	"github.com/oravec/nlcmd/internal/history"
	"github.com/oravec/nlcmd/internal/multicmd"
	"github.com/oravec/nlcmd/internal/safety"
)

var (
	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4")).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5B21B6")).
			Padding(0, 1).
			Bold(true)

	confHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	confLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#525252", Dark: "#A3A3A3"})

	riskBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#EF4444")).
		Padding(0, 1)
)

var severityColors = map[safety.Severity]lipgloss.Color{
	safety.Critical: lipgloss.Color("#EF4444"),
	safety.High:     lipgloss.Color("#F59E0B"),
	safety.Medium:   lipgloss.Color("#D97706"),
	safety.Low:      lipgloss.Color("#3B82F6"),
}

var methodBadges = map[engine.Method]string{
	engine.MethodML:        "ML",
	engine.MethodTemplate:  "TEMPLATE",
	engine.MethodFuzzy:     "FUZZY",
	engine.MethodDiagnosis: "DIAGNOSIS",
	engine.MethodRule:      "RULE",
}

// Formatter renders terminal output. With color disabled every style
// collapses to plain text.
type Formatter struct {
	color bool
}

// New builds a formatter. Pass color=false for pipes and --no-color.
func New(color bool) *Formatter { return &Formatter{color: color} }

func (f *Formatter) render(s lipgloss.Style, text string) string {
	if !f.color {
		return text
	}
	return s.Render(text)
}

// Decision renders one resolved (or failed) request.
func (f *Formatter) Decision(d engine.Decision) string {
	var b strings.Builder

	if !d.Success {
		if d.Err != nil {
			fmt.Fprintf(&b, "%s %v\n", f.render(errStyle, "error:"), d.Err)
		}
		for _, rej := range d.Rejected {
			if rej.Err != nil {
				fmt.Fprintf(&b, "  %s\n", f.render(mutedStyle,
					fmt.Sprintf("%s: %v", rej.Method, rej.Err)))
			}
		}
		return b.String()
	}

	badge := methodBadges[d.Candidate.Method]
	conf := d.Confidence() * 100
	confStyle := confHigh
	if conf < 75 {
		confStyle = confLow
	}

	fmt.Fprintf(&b, "%s %s  %s\n",
		f.render(badgeStyle, badge),
		f.render(commandStyle, d.Candidate.Command),
		f.render(confStyle, fmt.Sprintf("%.0f%%", conf)))

	if d.Candidate.Explanation != "" {
		fmt.Fprintf(&b, "  %s\n", f.render(mutedStyle, d.Candidate.Explanation))
	}
	if d.Candidate.MatchedQuery != "" {
		fmt.Fprintf(&b, "  %s\n", f.render(mutedStyle, "matched: "+d.Candidate.MatchedQuery))
	}
	if d.Warning != "" {
		fmt.Fprintf(&b, "%s %s\n", f.render(warnStyle, "!"), d.Warning)
	}
	return b.String()
}

// Chain renders a multi-segment resolution with the chained command last.
func (f *Formatter) Chain(ch multicmd.Chain) string {
	if !ch.Multi {
		return f.Decision(ch.Segments[0].Decision)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", f.render(mutedStyle,
		fmt.Sprintf("%d actions detected", len(ch.Segments))))
	for _, seg := range ch.Segments {
		fmt.Fprintf(&b, "%d. %s\n", seg.Order, f.render(mutedStyle, seg.Query))
		b.WriteString(indent(f.Decision(seg.Decision), "   "))
	}
	if ch.Success {
		fmt.Fprintf(&b, "%s %s\n",
			f.render(badgeStyle, "CHAIN"),
			f.render(commandStyle, ch.Chained))
	} else {
		fmt.Fprintf(&b, "%s\n", f.render(errStyle, "chain incomplete: one or more actions could not be resolved"))
	}
	return b.String()
}

// Risk renders the safety gate's verdict for a command about to run.
func (f *Formatter) Risk(r safety.Report) string {
	if !r.IsRisky {
		return ""
	}
	var b strings.Builder
	sevStyle := lipgloss.NewStyle().Foreground(severityColors[r.Severity]).Bold(true)
	fmt.Fprintf(&b, "%s risk detected\n", f.render(sevStyle, string(r.Severity)))
	for _, m := range r.Matches {
		fmt.Fprintf(&b, "  %s  %s\n", f.render(sevStyle, m.Keyword), m.Explanation)
		if m.Alternative != "" {
			fmt.Fprintf(&b, "      %s\n", f.render(mutedStyle, "safer: "+m.Alternative))
		}
	}
	if f.color {
		return riskBox.Render(strings.TrimRight(b.String(), "\n")) + "\n"
	}
	return b.String()
}

// Suggestions renders alternative candidates as a numbered list.
func (f *Formatter) Suggestions(cands []engine.Candidate) string {
	if len(cands) == 0 {
		return f.render(mutedStyle, "no suggestions") + "\n"
	}
	var b strings.Builder
	for i, c := range cands {
		fmt.Fprintf(&b, "%d. %s  %s\n", i+1,
			f.render(commandStyle, c.Command),
			f.render(mutedStyle, fmt.Sprintf("(%s, %.0f%%)", c.Method, c.Confidence*100)))
	}
	return b.String()
}

// History renders stored entries newest first.
func (f *Formatter) History(entries []history.Entry) string {
	if len(entries) == 0 {
		return f.render(mutedStyle, "history is empty") + "\n"
	}
	var b strings.Builder
	for _, e := range entries {
		ran := " "
		if e.Executed {
			ran = "*"
		}
		fmt.Fprintf(&b, "%s %s  %s\n", ran,
			f.render(mutedStyle, e.CreatedAt.Local().Format("2006-01-02 15:04")),
			e.Query)
		fmt.Fprintf(&b, "    %s  %s\n",
			f.render(commandStyle, e.Command),
			f.render(mutedStyle, fmt.Sprintf("(%s, %.0f%%)", e.Method, e.Confidence*100)))
	}
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
