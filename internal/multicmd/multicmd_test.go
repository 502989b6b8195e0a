package multicmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oravec/nlcmd/internal/dataset"
	"github.com/oravec/nlcmd/internal/engine"
	"github.com/oravec/nlcmd/internal/match"
	"github.com/oravec/nlcmd/internal/platform"
	"github.com/oravec/nlcmd/internal/rules"
)

func newTestProcessor(t *testing.T, fam platform.Family) *Processor {
	t.Helper()
	data, err := dataset.Load()
	require.NoError(t, err)
	e := engine.New(engine.Config{
		Family:    fam,
		Matcher:   match.New(data),
		Rules:     rules.New(fam),
		Templates: true,
	})
	return New(e, fam, nil)
}

func TestIsMulti(t *testing.T) {
	p := newTestProcessor(t, platform.Linux)

	tests := []struct {
		query string
		want  bool
	}{
		{"list files and then show info", true},
		{"create a folder called proj and then create a file named notes.txt in it", true},
		{"kill chrome then list processes", true},
		{"list all files", false},
		{"create a file named notes.txt", false},
		// Two verbs but no conjunction between actions.
		{"copy list", false},
		// A conjunction but only one action verb.
		{"show me files and also the weather", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.IsMulti(tt.query), "query %q", tt.query)
	}
}

func TestSplit(t *testing.T) {
	p := newTestProcessor(t, platform.Linux)

	tests := []struct {
		query string
		want  []string
	}{
		{
			"list files and then show info",
			[]string{"list files", "show info"},
		},
		{
			"kill chrome then list processes",
			[]string{"kill chrome", "list processes"},
		},
		{
			"list files, kill chrome",
			[]string{"list files", "kill chrome"},
		},
		{
			"create a folder called proj and then create a file named notes.txt in it",
			[]string{"create a folder called proj", "create a file named notes.txt in it"},
		},
		{
			// Mixed connectives: "then" splits first and the "and" part
			// stays whole instead of being split again.
			"create folder proj then list files and show all info",
			[]string{"create folder proj", "list files and show all info"},
		},
		{
			"single action only",
			[]string{"single action only"},
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Split(tt.query), "query %q", tt.query)
	}
}

func TestProcessSingle(t *testing.T) {
	p := newTestProcessor(t, platform.Linux)

	ch := p.Process(context.Background(), "list all files", engine.Options{})
	require.True(t, ch.Success)
	assert.False(t, ch.Multi)
	require.Len(t, ch.Segments, 1)
	assert.Equal(t, "ls -la", ch.Chained)
}

func TestProcessChainWithFolderReference(t *testing.T) {
	p := newTestProcessor(t, platform.Windows)

	ch := p.Process(context.Background(),
		"create a folder called proj and then create a file named notes.txt in it",
		engine.Options{})

	require.True(t, ch.Success)
	assert.True(t, ch.Multi)
	require.Len(t, ch.Segments, 2)
	assert.Equal(t, `mkdir proj && echo. > proj\notes.txt`, ch.Chained)
	assert.InDelta(t, 0.95, ch.Confidence, 1e-9)
}

func TestProcessChainLinuxPathSeparator(t *testing.T) {
	p := newTestProcessor(t, platform.Linux)

	ch := p.Process(context.Background(),
		"create a folder called proj and then create a file named notes.txt in it",
		engine.Options{})

	require.True(t, ch.Success)
	assert.Equal(t, "mkdir proj && touch proj/notes.txt", ch.Chained)
}

func TestProcessChainConfidenceIsMinimum(t *testing.T) {
	p := newTestProcessor(t, platform.Linux)

	// Rule hits carry confidence 1.0, template hits 0.95: the chain keeps
	// the weaker one.
	ch := p.Process(context.Background(),
		"create a file named notes.txt and then list all files",
		engine.Options{})

	require.True(t, ch.Success)
	assert.InDelta(t, 0.95, ch.Confidence, 1e-9)
	assert.Equal(t, "touch notes.txt && ls -la", ch.Chained)
}

func TestProcessChainFailsWhenSegmentFails(t *testing.T) {
	p := newTestProcessor(t, platform.Linux)

	ch := p.Process(context.Background(),
		"list all files and then transmogrify create the widget",
		engine.Options{})

	assert.True(t, ch.Multi)
	assert.False(t, ch.Success)
	assert.Empty(t, ch.Chained)
	assert.Zero(t, ch.Confidence)
}

func TestLastCreatedFolder(t *testing.T) {
	prior := []Segment{
		{Order: 1, Decision: engine.Decision{
			Success:   true,
			Candidate: engine.Candidate{Command: "mkdir alpha"},
		}},
		{Order: 2, Decision: engine.Decision{
			Success:   true,
			Candidate: engine.Candidate{Command: "ls -la"},
		}},
		{Order: 3, Decision: engine.Decision{
			Success:   false,
			Candidate: engine.Candidate{Command: "mkdir broken"},
		}},
	}

	// The failed mkdir is skipped; the newest successful one wins.
	assert.Equal(t, "alpha", lastCreatedFolder(prior))

	prior = append(prior, Segment{Order: 4, Decision: engine.Decision{
		Success:   true,
		Candidate: engine.Candidate{Command: "mkdir -p beta && touch beta/x.txt"},
	}})
	assert.Equal(t, "beta", lastCreatedFolder(prior))

	prior = append(prior, Segment{Order: 5, Decision: engine.Decision{
		Success:   true,
		Candidate: engine.Candidate{Command: `mkdir "proj"`},
	}})
	assert.Equal(t, "proj", lastCreatedFolder(prior))
}
