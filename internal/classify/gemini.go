package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/oravec/nlcmd/internal/dataset"
	"github.com/oravec/nlcmd/internal/platform"
)

// DefaultModel is used when config does not name one.
const DefaultModel = "gemini-2.0-flash"

// Gemini classifies queries by asking a Gemini model to pick one of the
// corpus intent labels. Construction fails closed: callers skip the ML
// stage when no client could be built.
type Gemini struct {
	client *genai.Client
	model  string
	data   *dataset.Data
	labels []string
}

// NewGemini builds the classifier. An empty apiKey falls back to
// Application Default Credentials, like the gemini CLI.
func NewGemini(ctx context.Context, apiKey, model string, data *dataset.Data) (*Gemini, error) {
	cfg := &genai.ClientConfig{}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{client: client, model: model, data: data, labels: data.Intents()}, nil
}

type geminiAnswer struct {
	Intent       string  `json:"intent"`
	Confidence   float64 `json:"confidence"`
	Alternatives []struct {
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
	} `json:"alternatives"`
}

// Predict asks the model for the best intent label plus alternatives.
func (g *Gemini) Predict(ctx context.Context, query string) (Prediction, error) {
	content := genai.NewContentFromText(g.prompt(query), genai.RoleUser)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{content}, nil)
	if err != nil {
		return Prediction{}, fmt.Errorf("gemini classify: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return Prediction{}, fmt.Errorf("gemini classify: no response candidates")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	answer, err := parseAnswer(text.String())
	if err != nil {
		return Prediction{}, err
	}

	probs := map[string]float64{answer.Intent: answer.Confidence}
	for _, alt := range answer.Alternatives {
		if _, seen := probs[alt.Intent]; !seen {
			probs[alt.Intent] = alt.Confidence
		}
	}

	return Prediction{
		Label:         answer.Intent,
		Confidence:    clamp01(answer.Confidence),
		Probabilities: probs,
	}, nil
}

// CommandForLabel resolves a label through the curated corpus.
func (g *Gemini) CommandForLabel(label string, fam platform.Family) (string, bool) {
	return g.data.CommandForIntent(label, fam)
}

func (g *Gemini) prompt(query string) string {
	var b strings.Builder
	b.WriteString("You classify a natural-language request for a shell command into exactly one intent label.\n")
	b.WriteString("Known intent labels:\n")
	for _, l := range g.labels {
		b.WriteString("  - ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("\nRequest: ")
	b.WriteString(query)
	b.WriteString("\n\nRespond with only a JSON object of the form ")
	b.WriteString(`{"intent": "<label>", "confidence": <0.0-1.0>, "alternatives": [{"intent": "<label>", "confidence": <0.0-1.0>}]}`)
	b.WriteString(". Use a label from the list; confidence reflects how sure you are.")
	return b.String()
}

// parseAnswer tolerates markdown code fences around the JSON payload.
func parseAnswer(raw string) (geminiAnswer, error) {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "{"); i >= 0 {
		if j := strings.LastIndex(raw, "}"); j > i {
			raw = raw[i : j+1]
		}
	}
	var answer geminiAnswer
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		return geminiAnswer{}, fmt.Errorf("parse classifier response: %w", err)
	}
	if answer.Intent == "" {
		return geminiAnswer{}, fmt.Errorf("classifier response missing intent")
	}
	return answer, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
