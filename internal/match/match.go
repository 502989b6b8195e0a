// Package match implements the approximate resolution strategy: a
// case-folded index of curated query/command pairs searched with a
// typo-tolerant similarity score, plus a keyword-weighted problem
// diagnosis lookup, and the arbitration between the two.
package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/oravec/nlcmd/internal/dataset"
	"github.com/oravec/nlcmd/internal/platform"
)

// CommandInfo is the indexed payload for one curated query.
type CommandInfo struct {
	Command string
	Intent  string
	OS      platform.Family
}

// Match is one similarity-search hit, scored 0-100.
type Match struct {
	MatchedQuery string
	Score        int
	Info         CommandInfo
}

// Matcher holds the per-family index structures. Built once at startup,
// read-only afterwards; safe to share across goroutines.
type Matcher struct {
	index map[platform.Family]map[string]CommandInfo
	keys  map[platform.Family][]string
}

// New builds the case-folded query index from the curated dataset. Within
// a family, the first occurrence of a duplicate key wins.
func New(data *dataset.Data) *Matcher {
	m := &Matcher{
		index: map[platform.Family]map[string]CommandInfo{},
		keys:  map[platform.Family][]string{},
	}
	for _, fam := range data.Families() {
		m.index[fam] = map[string]CommandInfo{}
		for _, r := range data.Records(fam) {
			key := strings.ToLower(r.Query)
			if _, dup := m.index[fam][key]; dup {
				continue
			}
			m.index[fam][key] = CommandInfo{Command: r.Command, Intent: r.Intent, OS: fam}
			m.keys[fam] = append(m.keys[fam], key)
		}
	}
	return m
}

// Search scores the query against every key indexed for the family, keeps
// hits at or above threshold, and returns at most limit results sorted by
// descending score.
func (m *Matcher) Search(q string, fam platform.Family, threshold, limit int) []Match {
	q = strings.ToLower(strings.TrimSpace(q))

	var out []Match
	for _, key := range m.keys[fam] {
		score := Similarity(q, key)
		if score < threshold {
			continue
		}
		out = append(out, Match{MatchedQuery: key, Score: score, Info: m.index[fam][key]})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Similarity scores two strings 0-100. It takes the better of a plain
// normalized edit-distance ratio and a token-sorted ratio, so both
// character typos and reordered words stay close to their target.
func Similarity(a, b string) int {
	plain := ratio(a, b)
	sorted := ratio(sortTokens(a), sortTokens(b))
	if sorted > plain {
		return sorted
	}
	return plain
}

func ratio(a, b string) int {
	if a == b {
		return 100
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}
	d := levenshtein.ComputeDistance(a, b)
	return (longest - d) * 100 / longest
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
