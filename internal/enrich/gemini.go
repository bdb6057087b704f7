package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash"

// Gemini looks candidates up through the Gemini API with a structured
// JSON prompt.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if modelName == "" {
		modelName = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("enrich: create gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Close() error { return g.client.Close() }

func (g *Gemini) Lookup(ctx context.Context, q Query) (Info, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(q)))
	if err != nil {
		return Info{}, fmt.Errorf("enrich: gemini lookup %s: %w", q.Name, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Info{}, fmt.Errorf("enrich: gemini returned no content for %s", q.Name)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return parseInfo(sb.String())
}

func buildPrompt(q Query) string {
	return fmt.Sprintf(`Find current employment information for this economics PhD graduate.

Name: %s
PhD from: %s
First job after PhD: %s
Research fields: %s

Search for their current role, employer, and team. Also look up their Google
Scholar citation count and h-index if available.

Return strictly JSON, no prose:
{
  "current_role": "",
  "current_company": "",
  "team": "",
  "work_focus": "",
  "notes": "",
  "linkedin_url": "",
  "citations": 0,
  "h_index": 0,
  "research_interests": ""
}
Leave a field empty (or 0) when you cannot determine it.`,
		q.Name, q.School, q.Company, q.Fields)
}

type infoPayload struct {
	CurrentRole       string      `json:"current_role"`
	CurrentCompany    string      `json:"current_company"`
	Team              string      `json:"team"`
	WorkFocus         string      `json:"work_focus"`
	Notes             string      `json:"notes"`
	LinkedInURL       string      `json:"linkedin_url"`
	Citations         json.Number `json:"citations"`
	HIndex            json.Number `json:"h_index"`
	ResearchInterests string      `json:"research_interests"`
}

func parseInfo(raw string) (Info, error) {
	raw = stripFences(raw)
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return Info{}, fmt.Errorf("enrich: no JSON object in response")
	}

	var p infoPayload
	dec := json.NewDecoder(strings.NewReader(raw[start : end+1]))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		return Info{}, fmt.Errorf("enrich: decode response: %w", err)
	}

	citations, _ := p.Citations.Int64()
	hIndex, _ := p.HIndex.Int64()
	return Info{
		CurrentRole:       strings.TrimSpace(p.CurrentRole),
		CurrentCompany:    strings.TrimSpace(p.CurrentCompany),
		Team:              strings.TrimSpace(p.Team),
		WorkFocus:         strings.TrimSpace(p.WorkFocus),
		Notes:             strings.TrimSpace(p.Notes),
		LinkedInURL:       strings.TrimSpace(p.LinkedInURL),
		Citations:         int(citations),
		HIndex:            int(hIndex),
		ResearchInterests: strings.TrimSpace(p.ResearchInterests),
	}, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
