package model

import (
	"strings"
	"time"
)

type SessionStatus string

const (
	// SessionGathering means the intake loop is still collecting answers
	SessionGathering SessionStatus = "gathering"
	// SessionResolved means every checklist point was covered
	SessionResolved SessionStatus = "resolved"
	// SessionExhausted means the question budget ran out with gaps left
	SessionExhausted SessionStatus = "exhausted"
)

// QAPair is one asked question plus its eventual answer and the checklist
// points it is meant to resolve. Owned exclusively by its ConversationState.
type QAPair struct {
	Question      string     `json:"question"`
	Context       string     `json:"context,omitempty"`
	Section       SectionID  `json:"section,omitempty"`
	RelatedPoints []string   `json:"relatedPoints"`
	Answer        string     `json:"answer,omitempty"`
	Answered      bool       `json:"answered"`
	// Fallback marks a generic retry question emitted when generation failed.
	// Fallback questions never count as resolving a point.
	Fallback   bool       `json:"fallback,omitempty"`
	AskedAt    time.Time  `json:"askedAt"`
	AnsweredAt *time.Time `json:"answeredAt,omitempty"`
}

// MatchesPoints reports whether the pair's related points equal the given
// set, ignoring order. Fallback pairs carry no points and never match.
func (q *QAPair) MatchesPoints(points []string) bool {
	if len(q.RelatedPoints) == 0 || len(q.RelatedPoints) != len(points) {
		return false
	}
	seen := make(map[string]bool, len(q.RelatedPoints))
	for _, p := range q.RelatedPoints {
		seen[p] = true
	}
	for _, p := range points {
		if !seen[p] {
			return false
		}
	}
	return true
}

// ConversationState is the per-session record of the intake conversation
type ConversationState struct {
	ID             string        `json:"id"`
	RawTranscript  string        `json:"rawTranscript"`
	QAHistory      []QAPair      `json:"qaHistory"`
	Missing        MissingMap    `json:"missing"`
	Status         SessionStatus `json:"status"`
	QuestionsAsked int           `json:"questionsAsked"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// NewConversationState creates a fresh gathering-state session
func NewConversationState(id, transcript string) *ConversationState {
	now := time.Now()
	return &ConversationState{
		ID:            id,
		RawTranscript: transcript,
		QAHistory:     []QAPair{},
		Missing:       MissingMap{},
		Status:        SessionGathering,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Terminal reports whether the session reached a final state
func (s *ConversationState) Terminal() bool {
	return s.Status == SessionResolved || s.Status == SessionExhausted
}

// Complete reports whether every checklist point was resolved
func (s *ConversationState) Complete() bool {
	return s.Status == SessionResolved
}

// PendingQuestion returns the currently unanswered question, if any
func (s *ConversationState) PendingQuestion() *QAPair {
	for i := len(s.QAHistory) - 1; i >= 0; i-- {
		if !s.QAHistory[i].Answered {
			return &s.QAHistory[i]
		}
	}
	return nil
}

// CombinedText concatenates the raw transcript and all answered question/
// answer pairs in chronological order. Each analysis pass runs over this, so
// later passes always see everything said so far.
func (s *ConversationState) CombinedText() string {
	var b strings.Builder
	b.WriteString("Oorspronkelijk transcript:\n")
	b.WriteString(s.RawTranscript)

	wroteHeader := false
	for _, qa := range s.QAHistory {
		if !qa.Answered {
			continue
		}
		if !wroteHeader {
			b.WriteString("\n\nAanvullende vragen en antwoorden:")
			wroteHeader = true
		}
		if qa.Context != "" {
			b.WriteString("\nContext: " + qa.Context)
		}
		b.WriteString("\nVraag: " + qa.Question)
		b.WriteString("\nAntwoord: " + qa.Answer)
	}
	return b.String()
}

// Clone returns a deep copy of the state
func (s *ConversationState) Clone() *ConversationState {
	cp := *s
	cp.Missing = s.Missing.Clone()
	cp.QAHistory = make([]QAPair, len(s.QAHistory))
	copy(cp.QAHistory, s.QAHistory)
	for i := range cp.QAHistory {
		pts := make([]string, len(cp.QAHistory[i].RelatedPoints))
		copy(pts, cp.QAHistory[i].RelatedPoints)
		cp.QAHistory[i].RelatedPoints = pts
	}
	return &cp
}
