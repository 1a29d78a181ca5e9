package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"intakeflow/internal/checklist"
	"intakeflow/internal/model"
)

// Generator produces the wording of the next follow-up question for a
// checklist section with open points
type Generator struct {
	client *Client
}

// NewGenerator creates a new question generator
func NewGenerator(client *Client) *Generator {
	return &Generator{client: client}
}

// generationResult is the JSON shape the model is asked to produce
type generationResult struct {
	Question      string   `json:"question"`
	Context       string   `json:"context"`
	RelatedPoints []string `json:"related_points"`
}

// Generate returns an unanswered QAPair targeting the given missing points.
// The sequencer validates the related points against the catalog afterwards.
func (g *Generator) Generate(ctx context.Context, section model.Section, missingPoints []string, history []model.QAPair) (*model.QAPair, error) {
	if !g.client.Enabled() {
		return g.mockGenerate(section, missingPoints), nil
	}

	content, err := g.client.complete(ctx, g.client.cfg.Models.Question,
		generateSystemPrompt, generateUserPrompt(section, missingPoints, history), true)
	if err != nil {
		return nil, err
	}

	var result generationResult
	if err := json.Unmarshal([]byte(stripFences(content)), &result); err != nil {
		return nil, fmt.Errorf("parse generation response: %w", err)
	}
	if strings.TrimSpace(result.Question) == "" {
		return nil, fmt.Errorf("generation response has no question")
	}

	qa := &model.QAPair{
		Question:      strings.TrimSpace(result.Question),
		Context:       strings.TrimSpace(result.Context),
		Section:       section.ID,
		RelatedPoints: result.RelatedPoints,
	}
	if qa.Context == "" {
		qa.Context = "Informatie over " + strings.ToLower(section.Title)
	}
	return qa, nil
}

const generateSystemPrompt = `Je bent een vriendelijke hypotheekadviseur die ontbrekende informatie verzamelt.
Stel vragen die specifiek ingaan op de ontbrekende onderdelen.
Stel GEEN vragen over onderwerpen die de klant al heeft beantwoord.
Je geeft je antwoord ALLEEN in JSON format zonder enige andere tekst.
Zorg ervoor dat de JSON syntax volledig correct is.`

func generateUserPrompt(section model.Section, missingPoints []string, history []model.QAPair) string {
	var b strings.Builder
	if len(history) > 0 {
		b.WriteString("Eerder gestelde vragen en antwoorden:\n")
		for _, qa := range history {
			b.WriteString("Vraag: " + qa.Question + "\n")
			if qa.Answered {
				b.WriteString("Antwoord: " + qa.Answer + "\n")
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `Onderwerp: %s
Nog ontbrekende onderdelen:
- %s

Formuleer één gerichte vervolgvraag over deze onderdelen.

GEEF JE ANTWOORD ALLEEN IN DIT JSON FORMAT:
{
    "question": "vraag hier",
    "context": "uitleg waarom deze vraag belangrijk is",
    "related_points": ["de checklist-labels die deze vraag afdekt"]
}`, section.Title, strings.Join(missingPoints, "\n- "))
	return b.String()
}

// mockGenerate falls back to the scripted question for the first missing
// point
func (g *Generator) mockGenerate(section model.Section, missingPoints []string) *model.QAPair {
	point := missingPoints[0]
	return &model.QAPair{
		Question:      checklist.TemplateQuestion(section.ID, point),
		Context:       "Informatie over " + strings.ToLower(section.Title),
		Section:       section.ID,
		RelatedPoints: []string{point},
	}
}
