// Package template implements parameter-driven command synthesis: it
// detects an intent/action/target triple plus typed parameters in the
// query and fills an OS-specific command template.
package template

import (
	"regexp"
	"strings"
)

// Entity is one named object in a nested operation.
type Entity struct {
	Type string
	Name string
}

// Nested describes a two-entity operation such as
// "create folder X with file Y inside".
type Nested struct {
	Parent Entity
	Child  Entity
}

// Analysis is the structured reading of a query prior to template fill.
type Analysis struct {
	Intent  string
	Action  string
	Targets []string
	Params  map[string]string
	Nested  *Nested
}

// Parameter pattern families, tried in order; first hit per type wins.
var paramPatterns = []struct {
	kind     string
	patterns []*regexp.Regexp
}{
	{"filename", []*regexp.Regexp{
		regexp.MustCompile(`(?i)file\s+["']([^"']+)["']`),
		regexp.MustCompile(`(?i)file\s+named?\s+["']([^"']+)["']`),
		regexp.MustCompile(`(?i)file\s+called\s+["']([^"']+)["']`),
		regexp.MustCompile(`(?i)file\s+named?\s+([\w\-.\\/]+)`),
		regexp.MustCompile(`(?i)file\s+called\s+([\w\-.\\/]+)`),
		regexp.MustCompile(`(?i)([\w-]+\.\w+)\s+file`),
	}},
	{"foldername", []*regexp.Regexp{
		regexp.MustCompile(`(?i)folder\s+["']([^"']+)["']`),
		regexp.MustCompile(`(?i)directory\s+["']([^"']+)["']`),
		regexp.MustCompile(`(?i)folder\s+named?\s+["']([^"']+)["']`),
		regexp.MustCompile(`(?i)folder\s+called\s+["']([^"']+)["']`),
		regexp.MustCompile(`(?i)(?:folder|directory)\s+named?\s+([\w-]+)`),
		regexp.MustCompile(`(?i)(?:folder|directory)\s+called\s+([\w-]+)`),
	}},
	{"process", []*regexp.Regexp{
		regexp.MustCompile(`(?i)process\s+["']([^"']+)["']`),
		regexp.MustCompile(`(?i)program\s+["']([^"']+)["']`),
		regexp.MustCompile(`(?i)application\s+["']([^"']+)["']`),
		regexp.MustCompile(`(?i)(?:kill|stop|close|terminate)\s+(?:process\s+)?["']?(\w+)["']?`),
	}},
	{"path", []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:in|to|at)\s+["']([A-Za-z]:[\\/].+?)["']`),
		regexp.MustCompile(`(?i)(?:in|to|at)\s+["']([/~].+?)["']`),
		regexp.MustCompile(`(?i)(?:in|to|at)\s+([A-Za-z]:[\\/]\S+)`),
		regexp.MustCompile(`(?i)(?:in|to|at)\s+([/~]\S+)`),
	}},
	{"port", []*regexp.Regexp{
		regexp.MustCompile(`(?i)port\s+(\d+)`),
		regexp.MustCompile(`(?i)on\s+port\s+(\d+)`),
		regexp.MustCompile(`:(\d+)`),
	}},
	{"ip", []*regexp.Regexp{
		regexp.MustCompile(`(\d+\.\d+\.\d+\.\d+)`),
	}},
	{"extension", []*regexp.Regexp{
		regexp.MustCompile(`(?i)\.(\w+)\s+files?`),
		regexp.MustCompile(`(?i)files?\s+with\s+\.(\w+)`),
	}},
	{"number", []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s+(?:files?|items?|processes?)`),
		regexp.MustCompile(`(?i)top\s+(\d+)`),
		regexp.MustCompile(`(?i)last\s+(\d+)`),
		regexp.MustCompile(`(?i)first\s+(\d+)`),
	}},
	{"content", []*regexp.Regexp{
		regexp.MustCompile(`(?i)with\s+content\s+["'](.+?)["']`),
		regexp.MustCompile(`(?i)containing\s+["'](.+?)["']`),
		regexp.MustCompile(`(?i)text\s+["'](.+?)["']`),
	}},
}

// Version-control intents, checked before generic intent detection.
// First matching pattern wins and short-circuits the rest.
var vcsIntents = []struct {
	intent   string
	patterns []*regexp.Regexp
}{
	{"git_status", compileAll(`\b(git\s+status|check\s+git\s+status|show\s+git\s+status|see\s+git\s+changes)\b`)},
	{"git_init", compileAll(`\b(git\s+init|initialize\s+git|create\s+git\s+repo|start\s+git)\b`)},
	{"git_add_all", compileAll(`\b(git\s+add\s+all|stage\s+all|add\s+everything\s+to\s+git|git\s+add\s+\.|add\s+all\s+files\s+to\s+git)\b`)},
	{"git_commit", compileAll(`\b(commit\s+(the\s+)?changes|git\s+commit|make\s+a\s+commit|save\s+changes\s+to\s+git|commit\s+all)\b`)},
	{"git_push", compileAll(`\b(git\s+push|push\s+to\s+github|push\s+changes|upload\s+to\s+github|push\s+to\s+remote)\b`)},
	{"git_pull", compileAll(`\b(git\s+pull|pull\s+from\s+github|pull\s+changes|get\s+latest|sync\s+with\s+github)\b`)},
	{"git_clone", compileAll(`\b(git\s+clone|clone\s+repo|download\s+repo|copy\s+repository)\b`)},
	{"git_create_branch", compileAll(`\b(create\s+(a\s+)?(new\s+)?branch|make\s+(a\s+)?(new\s+)?branch|add\s+(a\s+)?branch|new\s+branch)\b`)},
	{"git_checkout", compileAll(`\b(switch\s+branch|change\s+branch|checkout\s+branch|go\s+to\s+branch)\b`)},
	{"git_list_branches", compileAll(`\b(list\s+branches|show\s+(all\s+)?branches|see\s+branches|git\s+branch$)`)},
	{"git_merge", compileAll(`\b(merge\s+branch|git\s+merge|combine\s+branches)\b`)},
	{"git_log", compileAll(`\b(git\s+log|show\s+commit\s+history|view\s+commit\s+log|see\s+git\s+history)\b`)},
	{"git_diff", compileAll(`\b(git\s+diff|show\s+file\s+changes|see\s+differences|what\s+changed)\b`)},
	{"git_stash", compileAll(`\b(git\s+stash|stash\s+changes|save\s+work\s+in\s+progress)\b`)},
	{"git_fetch", compileAll(`\b(git\s+fetch|fetch\s+from\s+remote|get\s+remote\s+changes)\b`)},
	{"git_list_remotes", compileAll(`\b(list\s+remotes|show\s+remote\s+repositories|git\s+remote\s+-v)\b`)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// Generic intents in priority order; the first verb found by word-boundary
// match decides both intent and action.
var genericIntents = []struct {
	intent string
	verbs  []string
}{
	{"create", []string{"create", "make", "new", "add", "generate"}},
	{"delete", []string{"delete", "remove", "del", "rm", "erase"}},
	{"rename", []string{"rename", "move", "mv"}},
	{"copy", []string{"copy", "cp", "duplicate"}},
	{"list", []string{"list", "show", "display", "ls", "dir"}},
	{"find", []string{"find", "search", "locate"}},
	{"kill", []string{"kill", "stop", "terminate", "close"}},
	{"start", []string{"start", "run", "launch", "open"}},
	{"modify", []string{"edit", "modify", "change", "update"}},
}

// Target types, scanned independently; every matching type is collected,
// in table order.
var targetTypes = []struct {
	target   string
	keywords []string
}{
	{"file", []string{"file", "document", "doc"}},
	{"folder", []string{"folder", "directory", "dir"}},
	{"process", []string{"process", "program", "application", "app"}},
	{"service", []string{"service", "daemon"}},
	{"user", []string{"user", "account"}},
}

var (
	nestedFolderWithFile = regexp.MustCompile(`(?i)(?:folder|directory)\s+(?:named?\s+|called\s+)?["']?([\w\-.]+)["']?\s+(?:with|containing|and)\s+(?:a\s+)?file\s+(?:named?\s+|called\s+)?["']?([\w\-.]+)["']?`)
	nestedFileInFolder   = regexp.MustCompile(`(?i)file\s+(?:named?\s+|called\s+)?["']?([\w\-.]+)["']?\s+(?:in|inside)\s+(?:folder|directory)\s+(?:named?\s+|called\s+)?["']?([\w\-.]+)["']?`)
)

// wordRes caches the word-boundary matchers for intent verbs and target
// keywords so Analyze does not recompile them per query.
var wordRes = map[string]*regexp.Regexp{}

func init() {
	for _, gi := range genericIntents {
		for _, verb := range gi.verbs {
			wordRes[verb] = regexp.MustCompile(`\b` + verb + `\b`)
		}
	}
	for _, tt := range targetTypes {
		for _, kw := range tt.keywords {
			wordRes[kw] = regexp.MustCompile(`\b` + kw + `\b`)
		}
	}
}

// Analyze reads intent, action, targets, parameters and any nested
// operation from the query.
func Analyze(q string) Analysis {
	a := Analysis{Params: extractParams(q), Nested: extractNested(q)}
	qLower := strings.ToLower(q)

	for _, vc := range vcsIntents {
		for _, re := range vc.patterns {
			if re.MatchString(qLower) {
				a.Intent = vc.intent
				a.Action = "git"
				a.Targets = []string{"git"}
				return a
			}
		}
	}

	for _, gi := range genericIntents {
		for _, verb := range gi.verbs {
			if wordRes[verb].MatchString(qLower) {
				a.Intent = gi.intent
				a.Action = verb
				break
			}
		}
		if a.Intent != "" {
			break
		}
	}

	for _, tt := range targetTypes {
		for _, kw := range tt.keywords {
			if wordRes[kw].MatchString(qLower) {
				a.Targets = append(a.Targets, tt.target)
				break
			}
		}
	}

	return a
}

func extractParams(q string) map[string]string {
	params := map[string]string{}
	for _, fam := range paramPatterns {
		for _, re := range fam.patterns {
			if m := re.FindStringSubmatch(q); m != nil {
				params[fam.kind] = m[1]
				break
			}
		}
	}
	return params
}

func extractNested(q string) *Nested {
	if m := nestedFolderWithFile.FindStringSubmatch(q); m != nil {
		return &Nested{
			Parent: Entity{Type: "folder", Name: m[1]},
			Child:  Entity{Type: "file", Name: m[2]},
		}
	}
	if m := nestedFileInFolder.FindStringSubmatch(q); m != nil {
		return &Nested{
			Parent: Entity{Type: "folder", Name: m[2]},
			Child:  Entity{Type: "file", Name: m[1]},
		}
	}
	return nil
}
