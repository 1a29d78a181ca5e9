package service

import (
	"context"
	"strings"

	"intakeflow/internal/checklist"
	"intakeflow/internal/logger"
	"intakeflow/internal/model"
)

// QuestionGenerator is the external question-wording collaborator. It may
// fail; the sequencer then falls back to a fixed generic question.
type QuestionGenerator interface {
	Generate(ctx context.Context, section model.Section, missingPoints []string, history []model.QAPair) (*model.QAPair, error)
}

// QuestionSequencer selects the next question to ask, avoiding repeats, and
// decides when the flow is done
type QuestionSequencer struct {
	generator    QuestionGenerator
	catalog      *model.Catalog
	maxQuestions int
}

// NewQuestionSequencer creates a sequencer with the given question budget
func NewQuestionSequencer(generator QuestionGenerator, catalog *model.Catalog, maxQuestions int) *QuestionSequencer {
	if maxQuestions <= 0 {
		maxQuestions = 1
	}
	return &QuestionSequencer{
		generator:    generator,
		catalog:      catalog,
		maxQuestions: maxQuestions,
	}
}

// NextQuestion returns the next unanswered QAPair, or nil when the flow is
// over. Nil means either fully resolved or out of budget; the caller tells
// the two apart by checking whether missing is empty.
//
// Selection is deterministic: the first catalog-order section with missing
// points, targeting its whole missing set, narrowing to single points when
// that exact set was asked before. The returned pair never repeats the
// related-point set of any history entry.
func (s *QuestionSequencer) NextQuestion(ctx context.Context, missing model.MissingMap, history []model.QAPair) *model.QAPair {
	if len(history) >= s.maxQuestions {
		return nil
	}

	section, candidate := s.nextTarget(missing, history)
	if candidate == nil {
		return nil
	}

	qa, err := s.generator.Generate(ctx, *section, candidate, history)
	if err != nil {
		logger.Log.WithError(err).WithField("section", section.ID).
			Warn("question generation failed, using fallback question")
		return fallbackQuestion()
	}

	qa.Section = section.ID
	qa.RelatedPoints = s.validPoints(section, qa.RelatedPoints)
	if len(qa.RelatedPoints) == 0 || alreadyAsked(history, qa.RelatedPoints) {
		// Generator returned unusable or repeated points; pin the pair to
		// the deterministic candidate set, which is unasked by construction.
		qa.RelatedPoints = candidate
	}
	if strings.TrimSpace(qa.Question) == "" {
		qa.Question = checklist.TemplateQuestion(section.ID, candidate[0])
	}
	return qa
}

// nextTarget picks the section and related-point set for the next question
func (s *QuestionSequencer) nextTarget(missing model.MissingMap, history []model.QAPair) (*model.Section, []string) {
	for i := range s.catalog.Sections {
		section := &s.catalog.Sections[i]
		points := missing[section.ID]
		if len(points) == 0 {
			continue
		}
		if !alreadyAsked(history, points) {
			return section, points
		}
		// The full set was asked before; narrow to the first point not yet
		// asked on its own.
		for _, p := range points {
			if !alreadyAsked(history, []string{p}) {
				return section, []string{p}
			}
		}
	}
	return nil, nil
}

// validPoints filters generator output to real catalog points of the section
func (s *QuestionSequencer) validPoints(section *model.Section, points []string) []string {
	var out []string
	seen := make(map[string]bool, len(points))
	for _, p := range points {
		p = strings.TrimSpace(p)
		if section.HasPoint(p) && !seen[p] {
			out = append(out, p)
			seen[p] = true
		}
	}
	return out
}

func alreadyAsked(history []model.QAPair, points []string) bool {
	for i := range history {
		if history[i].MatchesPoints(points) {
			return true
		}
	}
	return false
}

// fallbackQuestion is the fixed question used when generation fails. It is
// still appended to history (so the loop cannot retry forever) but resolves
// no points.
func fallbackQuestion() *model.QAPair {
	return &model.QAPair{
		Question: "Kun je dat nog eens anders formuleren?",
		Context:  "Ik begreep je antwoord niet helemaal.",
		Fallback: true,
	}
}
