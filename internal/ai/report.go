package ai

import (
	"context"
	"fmt"
)

// ReportWriter generates the final advice sections and enhances advice texts
// with term explanations
type ReportWriter struct {
	client *Client
}

// NewReportWriter creates a new report writer
func NewReportWriter(client *Client) *ReportWriter {
	return &ReportWriter{client: client}
}

// WriteAdvice asks the model for the three tagged advice sections based on
// the full conversation. Returns the raw tagged content; the report service
// parses it and substitutes defaults for anything unusable.
func (w *ReportWriter) WriteAdvice(ctx context.Context, combinedText string) (string, error) {
	if !w.client.Enabled() {
		return "", fmt.Errorf("ai report generation not configured")
	}

	return w.client.complete(ctx, w.client.cfg.Models.Report,
		adviceSystemPrompt, adviceUserPrompt(combinedText), false)
}

const adviceSystemPrompt = `Je bent een ervaren hypotheekadviseur die gespecialiseerd is in het analyseren van klantgesprekken en het opstellen van uitgebreide adviesrapporten.`

func adviceUserPrompt(combinedText string) string {
	return fmt.Sprintf(`Stel op basis van het onderstaande gesprek een adviesrapport op met drie secties.
Gebruik per sectie deze structuur:
1. Samenvatting
2. Advies en onderbouwing
3. Aandachtspunten

Gesprek:
%s

Geef je antwoord in precies dit format, met alle drie de tags:
<adviesmotivatie_leningdeel>
...
</adviesmotivatie_leningdeel>
<adviesmotivatie_werkloosheid>
...
</adviesmotivatie_werkloosheid>
<adviesmotivatie_aow>
...
</adviesmotivatie_aow>`, combinedText)
}

// EnhanceExplanation weaves the base definition of a term into an existing
// advice text without changing the original advice. On failure the caller
// keeps the original text.
func (w *ReportWriter) EnhanceExplanation(ctx context.Context, term, baseDefinition, adviceText string) (string, error) {
	if !w.client.Enabled() {
		// No model available: append the definition as-is
		return adviceText + "\n\n" + baseDefinition, nil
	}

	prompt := fmt.Sprintf(`Je bent een ervaren financieel adviseur die een collega helpt om een hypotheekadvies te verbeteren.

CONTEXT:
- De originele tekst van je collega bevat alle essentiële adviesinformatie
- Je moet deze informatie EXACT behouden
- Je taak is ALLEEN om een heldere uitleg over '%s' toe te voegen
- Integreer de volgende basisuitleg op een natuurlijke manier:

BASISUITLEG:
%s

ORIGINELE TEKST VAN COLLEGA:
%s

INSTRUCTIES:
1. Behoud ALLE originele informatie en advies
2. Voeg de uitleg over %s op een logische plek toe
3. Zorg voor vloeiende overgangen
4. Gebruik professionele maar begrijpelijke taal

Let op: Je mag het originele advies NIET wijzigen, alleen aanvullen met de uitleg.`,
		term, baseDefinition, adviceText, term)

	return w.client.complete(ctx, w.client.cfg.Models.Explain,
		"Je bent een ervaren financieel adviseur.", prompt, false)
}
