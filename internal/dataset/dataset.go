// Package dataset loads the curated query/intent/command corpus consumed
// by the approximate matcher and the classifier's label mapping. The
// corpus ships embedded in the binary; a config-supplied file can replace
// it at startup. After loading, the data is read-only.
package dataset

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/oravec/nlcmd/internal/platform"
)

//go:embed corpus.yaml
var embedded []byte

// Record is one curated pairing of a natural-language query with the
// command it should resolve to.
type Record struct {
	Query   string `yaml:"query"`
	Intent  string `yaml:"intent"`
	Command string `yaml:"command"`
}

type corpus struct {
	Windows []Record `yaml:"windows"`
	Linux   []Record `yaml:"linux"`
}

// Data holds the decoded corpus keyed by OS family.
type Data struct {
	records map[platform.Family][]Record
}

// Load decodes the embedded corpus.
func Load() (*Data, error) {
	return decode(embedded)
}

// LoadFile decodes a corpus from disk, replacing the embedded one.
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return decode(raw)
}

func decode(raw []byte) (*Data, error) {
	var c corpus
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &Data{records: map[platform.Family][]Record{
		platform.Windows: c.Windows,
		platform.Linux:   c.Linux,
	}}, nil
}

// Records returns the curated records for one family.
func (d *Data) Records(fam platform.Family) []Record {
	return d.records[fam]
}

// Families returns the families present in the corpus, windows first.
func (d *Data) Families() []platform.Family {
	return []platform.Family{platform.Windows, platform.Linux}
}

// CommandForIntent maps a classifier label to its command for the given
// family. The first record carrying the intent wins.
func (d *Data) CommandForIntent(intent string, fam platform.Family) (string, bool) {
	for _, r := range d.records[fam] {
		if r.Intent == intent {
			return r.Command, true
		}
	}
	return "", false
}

// Intents returns the sorted set of intent labels known to the corpus.
func (d *Data) Intents() []string {
	seen := map[string]struct{}{}
	for _, fam := range d.Families() {
		for _, r := range d.records[fam] {
			seen[r.Intent] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for intent := range seen {
		out = append(out, intent)
	}
	sort.Strings(out)
	return out
}
