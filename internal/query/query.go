// Package query normalizes raw natural-language input into the keyword
// and parameter structure the resolution strategies consume.
package query

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Parameter types extracted from the raw query text.
const (
	ParamFilename  = "filename"
	ParamURL       = "url"
	ParamIP        = "ip"
	ParamNumber    = "number"
	ParamPort      = "port"
	ParamPath      = "path"
	ParamExtension = "extension"
	ParamContent   = "content"
)

// Processed is the derived, read-only view of one query. It is built once
// per request and never mutated afterwards.
type Processed struct {
	Original   string
	Normalized string
	Keywords   []string
	Actions    []string
	Targets    []string
	Modifiers  []string
	Params     map[string]string
	Valid      bool
}

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "that": {}, "the": {}, "to": {},
	"was": {}, "will": {}, "with": {}, "i": {}, "you": {}, "we": {},
	"they": {}, "can": {}, "could": {}, "would": {}, "should": {}, "do": {},
	"does": {}, "did": {}, "have": {}, "had": {},
}

var actionKeywords = map[string]struct{}{
	"list": {}, "show": {}, "get": {}, "find": {}, "search": {}, "display": {}, "view": {},
	"kill": {}, "stop": {}, "terminate": {}, "end": {}, "close": {},
	"start": {}, "run": {}, "execute": {}, "launch": {}, "open": {},
	"delete": {}, "remove": {}, "erase": {}, "clear": {}, "clean": {},
	"copy": {}, "move": {}, "rename": {}, "change": {},
	"create": {}, "make": {}, "add": {}, "new": {},
	"install": {}, "update": {}, "upgrade": {}, "download": {},
	"check": {}, "verify": {}, "test": {}, "ping": {},
	"shutdown": {}, "reboot": {}, "restart": {}, "logout": {},
}

var targetKeywords = map[string]struct{}{
	"file": {}, "files": {}, "directory": {}, "folder": {}, "path": {},
	"process": {}, "processes": {}, "task": {}, "service": {}, "services": {},
	"user": {}, "users": {}, "group": {}, "groups": {},
	"network": {}, "ip": {}, "port": {}, "ports": {}, "connection": {},
	"disk": {}, "memory": {}, "cpu": {}, "system": {}, "info": {}, "information": {},
	"package": {}, "program": {}, "application": {}, "app": {},
	"firewall": {}, "security": {}, "permission": {}, "permissions": {},
	"temp": {}, "temporary": {}, "cache": {}, "log": {}, "logs": {},
	"hidden": {}, "all": {}, "recursive": {},
}

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	folder       = cases.Fold()
)

// paramFamily is one ordered pattern family. The first pattern that
// matches wins for its type; a pattern with a capture group yields group 1,
// otherwise the whole match.
type paramFamily struct {
	kind     string
	patterns []*regexp.Regexp
}

var paramFamilies = []paramFamily{
	{ParamURL, []*regexp.Regexp{
		regexp.MustCompile(`https?://[\w.-]+(?:/[\w.-]*)*`),
	}},
	{ParamIP, []*regexp.Regexp{
		regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
	}},
	{ParamPath, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:in|to|at)\s+["']([A-Za-z]:[\\/][^"']+)["']`),
		regexp.MustCompile(`(?i)(?:in|to|at)\s+["']([/~][^"']+)["']`),
		regexp.MustCompile(`(?i)(?:in|to|at)\s+([A-Za-z]:[\\/]\S+)`),
		regexp.MustCompile(`(?i)(?:in|to|at)\s+([/~]\S+)`),
	}},
	{ParamFilename, []*regexp.Regexp{
		regexp.MustCompile(`\b[\w-]+\.\w+\b`),
	}},
	{ParamPort, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bon\s+port\s+(\d+)`),
		regexp.MustCompile(`(?i)\bport\s+(\d+)`),
		regexp.MustCompile(`:(\d+)\b`),
	}},
	{ParamExtension, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\.(\w+)\s+files?\b`),
		regexp.MustCompile(`(?i)files?\s+with\s+\.(\w+)`),
	}},
	{ParamContent, []*regexp.Regexp{
		regexp.MustCompile(`(?i)with\s+content\s+["'](.+?)["']`),
		regexp.MustCompile(`(?i)containing\s+["'](.+?)["']`),
		regexp.MustCompile(`(?i)text\s+["'](.+?)["']`),
	}},
	{ParamNumber, []*regexp.Regexp{
		regexp.MustCompile(`\b(\d+)\b`),
	}},
}

// NormalizeText lowercases, strips everything except word characters,
// whitespace and hyphens, and collapses runs of whitespace. It is
// idempotent.
func NormalizeText(text string) string {
	text = strings.TrimSpace(folder.String(text))
	text = nonWordRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// Process derives the full ProcessedQuery from raw text. Empty or
// stop-word-only input produces Valid=false; callers must treat that as a
// terminal no-resolution outcome.
func Process(text string) Processed {
	p := Processed{Original: text, Params: map[string]string{}}
	if strings.TrimSpace(text) == "" {
		return p
	}

	p.Normalized = NormalizeText(text)
	for _, w := range strings.Fields(p.Normalized) {
		if _, skip := stopWords[w]; skip {
			continue
		}
		p.Keywords = append(p.Keywords, w)
		switch {
		case isAction(w):
			p.Actions = append(p.Actions, w)
		case isTarget(w):
			p.Targets = append(p.Targets, w)
		default:
			p.Modifiers = append(p.Modifiers, w)
		}
	}

	// Parameters come from the original text: stripping punctuation first
	// would destroy filenames, URLs and quoted content.
	for _, fam := range paramFamilies {
		for _, re := range fam.patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			if len(m) > 1 {
				p.Params[fam.kind] = m[1]
			} else {
				p.Params[fam.kind] = m[0]
			}
			break
		}
	}

	p.Valid = len(p.Keywords) > 0
	return p
}

func isAction(w string) bool {
	_, ok := actionKeywords[w]
	return ok
}

func isTarget(w string) bool {
	_, ok := targetKeywords[w]
	return ok
}
