package service

import (
	"context"
	"strings"
	"time"

	"intakeflow/internal/checklist"
	"intakeflow/internal/logger"
	"intakeflow/internal/model"
	"intakeflow/internal/session"
)

// ReportWriter is the external advice-generation collaborator
type ReportWriter interface {
	WriteAdvice(ctx context.Context, combinedText string) (string, error)
	EnhanceExplanation(ctx context.Context, term, baseDefinition, adviceText string) (string, error)
}

// ReportService assembles the advice report for a finished session
type ReportService struct {
	store  session.Store
	writer ReportWriter
}

// NewReportService creates a new report service
func NewReportService(store session.Store, writer ReportWriter) *ReportService {
	return &ReportService{
		store:  store,
		writer: writer,
	}
}

// Generate builds the three advice sections from the full conversation. Only
// terminal sessions get a report; an exhausted session yields one marked
// incomplete. Model failures fall back to the fixed default section texts.
func (s *ReportService) Generate(ctx context.Context, sessionID string) (*model.AdviceReport, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !state.Terminal() {
		return nil, ErrSessionActive
	}

	content, err := s.writer.WriteAdvice(ctx, state.CombinedText())
	if err != nil {
		logger.Log.WithError(err).WithField("session", sessionID).
			Warn("advice generation failed, using default sections")
		content = ""
	}

	return &model.AdviceReport{
		SessionID:   state.ID,
		Status:      state.Status,
		Complete:    state.Complete(),
		Sections:    parseAdviceSections(content),
		GeneratedAt: time.Now(),
	}, nil
}

// Enhance weaves the glossary definition of a term into an advice text. The
// original text comes back unchanged when enhancement fails.
func (s *ReportService) Enhance(ctx context.Context, term, adviceText string) (string, error) {
	definition, ok := checklist.Definition(term)
	if !ok {
		return "", ErrUnknownTerm
	}

	enhanced, err := s.writer.EnhanceExplanation(ctx, term, definition, adviceText)
	if err != nil || strings.TrimSpace(enhanced) == "" {
		logger.Log.WithError(err).WithField("term", term).
			Warn("explanation enhancement failed, keeping original text")
		return adviceText, nil
	}
	return enhanced, nil
}

// parseAdviceSections extracts the tagged sections from model output. Every
// known tag is always present in the result; missing or empty sections get
// the default text. The parser never errors.
func parseAdviceSections(content string) map[string]string {
	sections := make(map[string]string, len(model.ReportSectionTags))

	var current string
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "</"):
			if current != "" {
				sections[current] = strings.Join(lines, "\n")
			}
			current = ""
		case strings.HasPrefix(line, "<"):
			tag := strings.Trim(line, "<>")
			if isReportSection(tag) {
				current = tag
				lines = lines[:0]
			}
		case current != "":
			lines = append(lines, line)
		}
	}

	for _, tag := range model.ReportSectionTags {
		if strings.TrimSpace(sections[tag]) == "" {
			sections[tag] = defaultSectionContent(tag)
		}
	}
	return sections
}

func isReportSection(tag string) bool {
	for _, t := range model.ReportSectionTags {
		if t == tag {
			return true
		}
	}
	return false
}

func defaultSectionContent(tag string) string {
	switch tag {
	case model.ReportSectionLeningdeel:
		return `1. Samenvatting leningdeel
- Onvoldoende informatie voor volledig advies
- Basisgegevens ontbreken

2. Ontbrekende informatie
- Gewenst leningbedrag
- NHG voorkeuren
- Rentevaste periode wensen
- Gewenste hypotheekvorm

3. Aanbevelingen
- Plan een vervolggesprek
- Verzamel basisgegevens
- Bepaal klantvoorkeuren`
	case model.ReportSectionWerkloosheid:
		return `1. Samenvatting werkloosheidsrisico
- Onvoldoende informatie voor risico-inschatting
- Werkloosheidsdekking niet bepaald

2. Ontbrekende informatie
- Huidige arbeidssituatie
- Werkloosheidsrisico inschatting
- Gewenste dekking

3. Aanbevelingen
- Analyseer arbeidssituatie
- Bespreek risicotolerantie
- Onderzoek verzekeringsopties`
	case model.ReportSectionAOW:
		return `1. Samenvatting pensioensituatie
- Onvoldoende informatie voor pensioenadvies
- Toekomstplanning onduidelijk

2. Ontbrekende informatie
- AOW-leeftijd
- Pensioenwensen
- Vermogensopbouw plan

3. Aanbevelingen
- Breng pensioenopbouw in kaart
- Bepaal gewenste pensioensituatie
- Plan vermogensopbouw strategie`
	}
	return "Geen informatie beschikbaar voor deze sectie."
}
