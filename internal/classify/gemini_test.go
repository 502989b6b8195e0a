package classify

import (
	"strings"
	"testing"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		intent  string
		conf    float64
		wantErr bool
	}{
		{
			name:   "plain json",
			raw:    `{"intent": "list_files", "confidence": 0.93, "alternatives": []}`,
			intent: "list_files",
			conf:   0.93,
		},
		{
			name: "fenced json",
			raw: "```json\n" +
				`{"intent": "disk_space", "confidence": 0.7}` +
				"\n```",
			intent: "disk_space",
			conf:   0.7,
		},
		{
			name:   "prose around json",
			raw:    `Sure! Here is the classification: {"intent": "kill_chrome", "confidence": 0.88} Hope that helps.`,
			intent: "kill_chrome",
			conf:   0.88,
		},
		{
			name:    "missing intent",
			raw:     `{"confidence": 0.5}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     "I cannot classify that.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := parseAnswer(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseAnswer(%q) expected error, got %+v", tt.raw, answer)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAnswer(%q) error: %v", tt.raw, err)
			}
			if answer.Intent != tt.intent {
				t.Errorf("intent = %q, want %q", answer.Intent, tt.intent)
			}
			if answer.Confidence != tt.conf {
				t.Errorf("confidence = %v, want %v", answer.Confidence, tt.conf)
			}
		})
	}
}

func TestParseAnswerAlternatives(t *testing.T) {
	raw := `{"intent": "list_files", "confidence": 0.8, "alternatives": [{"intent": "list_hidden", "confidence": 0.15}]}`
	answer, err := parseAnswer(raw)
	if err != nil {
		t.Fatalf("parseAnswer error: %v", err)
	}
	if len(answer.Alternatives) != 1 || answer.Alternatives[0].Intent != "list_hidden" {
		t.Errorf("alternatives = %+v", answer.Alternatives)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0}, {0, 0}, {0.42, 0.42}, {1, 1}, {1.7, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPromptListsLabels(t *testing.T) {
	g := &Gemini{labels: []string{"disk_space", "list_files"}}
	p := g.prompt("how much space is left")
	for _, want := range []string{"disk_space", "list_files", "how much space is left", "JSON"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
