package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"intakeflow/internal/logger"
	"intakeflow/internal/model"
)

// Classifier checks which mandatory checklist points are still insufficiently
// covered by the conversation so far
type Classifier struct {
	client *Client
}

// NewClassifier creates a new gap classifier
func NewClassifier(client *Client) *Classifier {
	return &Classifier{client: client}
}

// classificationResult is the JSON shape the model is asked to produce
type classificationResult struct {
	MissingTopics map[string][]string `json:"missing_topics"`
	Explanation   string              `json:"explanation"`
}

// Classify returns the raw missing points per section, as judged by the
// model. The caller normalizes the result against the catalog; any error here
// maps to the everything-missing fallback.
func (c *Classifier) Classify(ctx context.Context, combinedText string, catalog *model.Catalog) (map[model.SectionID][]string, error) {
	if !c.client.Enabled() {
		return c.mockClassify(combinedText, catalog), nil
	}

	content, err := c.client.complete(ctx, c.client.cfg.Models.Classify,
		classifySystemPrompt(catalog), classifyUserPrompt(combinedText, catalog), true)
	if err != nil {
		return nil, err
	}

	var result classificationResult
	if err := json.Unmarshal([]byte(stripFences(content)), &result); err != nil {
		return nil, fmt.Errorf("parse classification response: %w", err)
	}
	if result.MissingTopics == nil {
		return nil, fmt.Errorf("classification response missing missing_topics")
	}
	if result.Explanation != "" {
		logger.Log.WithField("explanation", result.Explanation).Debug("classifier explanation")
	}

	out := make(map[model.SectionID][]string, len(result.MissingTopics))
	for section, points := range result.MissingTopics {
		out[model.SectionID(strings.ToLower(strings.TrimSpace(section)))] = points
	}
	return out, nil
}

func classifySystemPrompt(catalog *model.Catalog) string {
	var b strings.Builder
	b.WriteString(`Je bent een ervaren hypotheekadviseur die transcripten analyseert.
Je taak is om te controleren welke verplichte onderdelen van het hypotheekadvies ontbreken.

Geef ALLEEN een JSON response met ontbrekende punten. Als een onderwerp voldoende behandeld is,
neem je het NIET op in de response.

Controleer de volgende punten:
`)
	for _, s := range catalog.Sections {
		b.WriteString("\n" + s.Title + ":\n")
		for _, p := range s.Points {
			b.WriteString("- " + p + "\n")
		}
	}
	return b.String()
}

func classifyUserPrompt(combinedText string, catalog *model.Catalog) string {
	var keys []string
	for _, s := range catalog.Sections {
		keys = append(keys, fmt.Sprintf("%q: []", s.ID))
	}
	return fmt.Sprintf(`Analyseer dit gesprek en geef aan welke VERPLICHTE onderdelen nog ontbreken:

%s

Geef je antwoord in precies dit JSON format:
{
    "missing_topics": {%s},
    "explanation": ""
}

BELANGRIJK:
- Gebruik voor ontbrekende punten exact de labels uit de checklist
- Als alles behandeld is in een categorie, laat die categorie dan leeg
- Wees streng maar redelijk - als iets impliciet duidelijk is hoeft het niet als ontbrekend gemarkeerd te worden`,
		combinedText, strings.Join(keys, ", "))
}

// mockClassify marks a point as covered once a distinctive word from its
// label shows up in the conversation. Keeps the loop convergent without an
// API key.
func (c *Classifier) mockClassify(combinedText string, catalog *model.Catalog) map[model.SectionID][]string {
	text := strings.ToLower(combinedText)
	out := make(map[model.SectionID][]string, len(catalog.Sections))
	for _, s := range catalog.Sections {
		var missing []string
		for _, p := range s.Points {
			covered := false
			for _, word := range strings.Fields(strings.ToLower(p)) {
				if len(word) >= 5 && strings.Contains(text, word) {
					covered = true
					break
				}
			}
			if !covered {
				missing = append(missing, p)
			}
		}
		out[s.ID] = missing
	}
	return out
}
