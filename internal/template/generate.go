package template

import (
	"regexp"
	"strings"

	"github.com/oravec/nlcmd/internal/platform"
)

// Confidence reported for every successful template synthesis.
const Confidence = 0.95

// Result is a synthesized command plus the analysis that produced it.
type Result struct {
	Command    string
	Intent     string
	Targets    []string
	Params     map[string]string
	Nested     *Nested
	Confidence float64
}

// Per-family command templates. The first template for a key is the one
// used; alternatives are kept for the suggestions surface.
var templates = map[platform.Family]map[string][]string{
	platform.Windows: {
		"create_file":              {`echo. > {filename}`, `type nul > {filename}`, `copy nul {filename}`},
		"create_file_with_content": {`echo {content} > {filename}`},
		"create_folder":            {`mkdir {foldername}`, `md {foldername}`},
		"create_nested":            {`mkdir {foldername} && echo. > {foldername}\{filename}`, `mkdir {foldername} && type nul > {foldername}\{filename}`},
		"delete_file":              {`del {filename}`, `del /f {filename}`},
		"delete_folder":            {`rmdir {foldername}`, `rd /s /q {foldername}`},
		"rename_file":              {`ren {old_name} {new_name}`, `rename {old_name} {new_name}`},
		"copy_file":                {`copy {source} {destination}`},
		"kill_process":             {`taskkill /IM {process}.exe /F`, `taskkill /IM {process} /F`},
		"find_files":               {`dir /s /b {pattern}`, `where /r . {pattern}`},
		"list_folder":              {`dir {path}`, `dir /b {path}`},
	},
	platform.Linux: {
		"create_file":              {`touch {filename}`, `> {filename}`},
		"create_file_with_content": {`echo "{content}" > {filename}`},
		"create_folder":            {`mkdir {foldername}`, `mkdir -p {foldername}`},
		"create_nested":            {`mkdir -p {foldername} && touch {foldername}/{filename}`},
		"delete_file":              {`rm {filename}`, `rm -f {filename}`},
		"delete_folder":            {`rmdir {foldername}`, `rm -rf {foldername}`},
		"rename_file":              {`mv {old_name} {new_name}`},
		"copy_file":                {`cp {source} {destination}`},
		"kill_process":             {`pkill {process}`, `killall {process}`},
		"find_files":               {`find . -name "{pattern}"`, `locate {pattern}`},
		"list_folder":              {`ls {path}`, `ls -la {path}`},
	},
}

// Version-control templates are identical on both families.
var vcsTemplates = map[string][]string{
	"git_status":        {`git status`},
	"git_init":          {`git init`},
	"git_add_all":       {`git add .`},
	"git_add_file":      {`git add {filename}`},
	"git_commit":        {`git commit -m "{message}"`},
	"git_push":          {`git push`},
	"git_push_origin":   {`git push origin {branch}`},
	"git_pull":          {`git pull`},
	"git_clone":         {`git clone {url}`},
	"git_create_branch": {`git branch {branchname}`},
	"git_checkout":      {`git checkout {branchname}`},
	"git_checkout_new":  {`git checkout -b {branchname}`},
	"git_list_branches": {`git branch`},
	"git_delete_branch": {`git branch -d {branchname}`},
	"git_merge":         {`git merge {branchname}`},
	"git_log":           {`git log`},
	"git_log_short":     {`git log --oneline`},
	"git_diff":          {`git diff`},
	"git_stash":         {`git stash`},
	"git_stash_pop":     {`git stash pop`},
	"git_stash_list":    {`git stash list`},
	"git_fetch":         {`git fetch`},
	"git_add_remote":    {`git remote add origin {url}`},
	"git_list_remotes":  {`git remote -v`},
	"git_tag":           {`git tag {tagname}`},
	"git_list_tags":     {`git tag`},
	"git_push_tags":     {`git push --tags`},
	"git_config_name":   {`git config --global user.name "{name}"`},
	"git_config_email":  {`git config --global user.email "{email}"`},
	"git_config_list":   {`git config --list`},
}

// Defaults substituted into version-control templates when the query did
// not supply the placeholder.
var vcsDefaults = map[string]string{
	"message":    "Update",
	"branchname": "new-branch",
	"filename":   ".",
	"url":        "",
	"branch":     "main",
	"tagname":    "v1.0",
	"name":       "Your Name",
	"email":      "your.email@example.com",
}

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// Generate fills a template for the analysis. It returns false when no
// intent was detected, no template key can be built, or a required
// placeholder has no value.
func Generate(a Analysis, fam platform.Family) (Result, bool) {
	if a.Intent == "" {
		return Result{}, false
	}

	var key string
	switch {
	case strings.HasPrefix(a.Intent, "git_"):
		key = a.Intent
	case a.Nested != nil:
		key = "create_nested"
	case len(a.Targets) > 0:
		key = a.Intent + "_" + a.Targets[0]
	default:
		return Result{}, false
	}

	params := a.Params
	if a.Nested != nil {
		// The nested pair is authoritative for the two placeholders the
		// create_nested template needs.
		params = cloneParams(params)
		params["foldername"] = a.Nested.Parent.Name
		params["filename"] = a.Nested.Child.Name
	}

	command, ok := fill(key, params, fam)
	if !ok {
		return Result{}, false
	}

	return Result{
		Command:    command,
		Intent:     a.Intent,
		Targets:    a.Targets,
		Params:     params,
		Nested:     a.Nested,
		Confidence: Confidence,
	}, true
}

// Alternatives returns every template variant for the analysis, filled.
// Used by the suggestions surface; the first entry matches Generate.
func Alternatives(a Analysis, fam platform.Family) []string {
	r, ok := Generate(a, fam)
	if !ok {
		return nil
	}
	var key string
	switch {
	case strings.HasPrefix(a.Intent, "git_"):
		key = a.Intent
	case a.Nested != nil:
		key = "create_nested"
	default:
		key = a.Intent + "_" + a.Targets[0]
	}
	var out []string
	for _, tpl := range lookup(key, fam) {
		if cmd, ok := fillTemplate(tpl, paramsFor(key, r.Params)); ok {
			out = append(out, cmd)
		}
	}
	return out
}

func lookup(key string, fam platform.Family) []string {
	if tpls, ok := vcsTemplates[key]; ok {
		return tpls
	}
	return templates[fam][key]
}

func paramsFor(key string, params map[string]string) map[string]string {
	if !strings.HasPrefix(key, "git_") {
		return params
	}
	merged := cloneParams(params)
	for k, v := range vcsDefaults {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return merged
}

func fill(key string, params map[string]string, fam platform.Family) (string, bool) {
	tpls := lookup(key, fam)
	if len(tpls) == 0 {
		return "", false
	}
	return fillTemplate(tpls[0], paramsFor(key, params))
}

func fillTemplate(tpl string, params map[string]string) (string, bool) {
	missing := false
	filled := placeholderRe.ReplaceAllStringFunc(tpl, func(ph string) string {
		name := ph[1 : len(ph)-1]
		v, ok := params[name]
		if !ok {
			missing = true
			return ph
		}
		return v
	})
	if missing {
		return "", false
	}
	return filled, true
}

func cloneParams(in map[string]string) map[string]string {
	out := make(map[string]string, len(in)+2)
	for k, v := range in {
		out[k] = v
	}
	return out
}
