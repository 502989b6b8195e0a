package match

import "github.com/oravec/nlcmd/internal/platform"

// Sources for a smart-search best match.
const (
	SourceFuzzy     = "fuzzy_match"
	SourceDiagnosis = "problem_diagnosis"
)

// Best is the winning candidate of a smart search.
type Best struct {
	Command      string
	Source       string
	Intent       string
	MatchedQuery string
	Explanation  string
	Category     string
	Problem      string
	OS           platform.Family
}

// SmartResult carries the winner plus both raw result sets so callers can
// surface alternatives.
type SmartResult struct {
	Matches    []Match
	Solutions  []Solution
	Best       *Best
	Confidence int // 0-100
}

const (
	smartThreshold  = 60
	smartLimit      = 5
	highFuzzyScore  = 85
	strongRelevance = 2
)

// SmartSearch runs the similarity search and the problem diagnosis, then
// arbitrates: a diagnosis with relevance >= 2 wins when no fuzzy hit exists
// or its derived confidence is at least the best fuzzy score; otherwise a
// fuzzy hit scoring >= 85 wins; otherwise whichever side produced anything,
// diagnosis first.
func (m *Matcher) SmartSearch(q string, fam platform.Family) SmartResult {
	res := SmartResult{
		Matches:   m.Search(q, fam, smartThreshold, smartLimit),
		Solutions: m.Diagnose(q, fam),
	}

	if len(res.Solutions) > 0 && res.Solutions[0].Relevance >= strongRelevance {
		conf := diagnosisConfidence(res.Solutions[0].Relevance)
		if len(res.Matches) == 0 || conf >= res.Matches[0].Score {
			res.Best = bestFromSolution(res.Solutions[0])
			res.Confidence = conf
			return res
		}
	}

	switch {
	case len(res.Matches) > 0 && res.Matches[0].Score >= highFuzzyScore:
		res.Best = bestFromMatch(res.Matches[0])
		res.Confidence = res.Matches[0].Score
	case len(res.Solutions) > 0:
		res.Best = bestFromSolution(res.Solutions[0])
		res.Confidence = 75 + res.Solutions[0].Relevance*5
	case len(res.Matches) > 0:
		res.Best = bestFromMatch(res.Matches[0])
		res.Confidence = res.Matches[0].Score
	}
	return res
}

func diagnosisConfidence(relevance int) int {
	conf := 75 + relevance*5
	if conf > 90 {
		conf = 90
	}
	return conf
}

func bestFromMatch(m Match) *Best {
	return &Best{
		Command:      m.Info.Command,
		Source:       SourceFuzzy,
		Intent:       m.Info.Intent,
		MatchedQuery: m.MatchedQuery,
		OS:           m.Info.OS,
	}
}

func bestFromSolution(s Solution) *Best {
	return &Best{
		Command:     s.Command,
		Source:      SourceDiagnosis,
		Explanation: s.Explanation,
		Category:    s.Category,
		Problem:     s.Problem,
	}
}
