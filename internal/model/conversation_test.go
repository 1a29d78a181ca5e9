package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQAPairMatchesPoints(t *testing.T) {
	qa := &QAPair{RelatedPoints: []string{"A", "B"}}

	assert.True(t, qa.MatchesPoints([]string{"A", "B"}))
	assert.True(t, qa.MatchesPoints([]string{"B", "A"}), "order must not matter")
	assert.False(t, qa.MatchesPoints([]string{"A"}))
	assert.False(t, qa.MatchesPoints([]string{"A", "C"}))
	assert.False(t, qa.MatchesPoints([]string{"A", "B", "C"}))
}

func TestQAPairMatchesPointsFallback(t *testing.T) {
	fallback := &QAPair{Fallback: true}

	assert.False(t, fallback.MatchesPoints(nil))
	assert.False(t, fallback.MatchesPoints([]string{"A"}))
}

func TestMissingMapEmpty(t *testing.T) {
	m := MissingMap{"leningdeel": {}, "aow": {}}
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Count())

	m["aow"] = []string{"AOW-leeftijd en planning"}
	assert.False(t, m.Empty())
	assert.Equal(t, 1, m.Count())
}

func TestPendingQuestion(t *testing.T) {
	state := NewConversationState("s1", "transcript")
	assert.Nil(t, state.PendingQuestion())

	state.QAHistory = append(state.QAHistory, QAPair{Question: "q1", Answered: true, Answer: "a1"})
	assert.Nil(t, state.PendingQuestion())

	state.QAHistory = append(state.QAHistory, QAPair{Question: "q2"})
	pending := state.PendingQuestion()
	require.NotNil(t, pending)
	assert.Equal(t, "q2", pending.Question)
}

func TestCombinedTextChronological(t *testing.T) {
	state := NewConversationState("s1", "klant wil een woning kopen")
	now := time.Now()
	state.QAHistory = []QAPair{
		{Question: "eerste vraag", Context: "ctx", Answer: "eerste antwoord", Answered: true, AnsweredAt: &now},
		{Question: "tweede vraag", Answer: "tweede antwoord", Answered: true, AnsweredAt: &now},
		{Question: "open vraag"},
	}

	text := state.CombinedText()
	assert.Contains(t, text, "klant wil een woning kopen")
	assert.Contains(t, text, "eerste antwoord")
	assert.Contains(t, text, "tweede antwoord")
	assert.NotContains(t, text, "open vraag", "unanswered questions stay out of the analysis text")
	assert.Less(t, strings.Index(text, "klant wil"), strings.Index(text, "eerste antwoord"))
	assert.Less(t, strings.Index(text, "eerste antwoord"), strings.Index(text, "tweede antwoord"))
}

func TestCloneIsDeep(t *testing.T) {
	state := NewConversationState("s1", "t")
	state.Missing = MissingMap{"leningdeel": {"A"}}
	state.QAHistory = []QAPair{{Question: "q", RelatedPoints: []string{"A"}}}

	cp := state.Clone()
	cp.Missing["leningdeel"][0] = "B"
	cp.QAHistory[0].RelatedPoints[0] = "B"
	cp.QAHistory[0].Answered = true

	assert.Equal(t, "A", state.Missing["leningdeel"][0])
	assert.Equal(t, "A", state.QAHistory[0].RelatedPoints[0])
	assert.False(t, state.QAHistory[0].Answered)
}

func TestTerminalStates(t *testing.T) {
	state := NewConversationState("s1", "t")
	assert.False(t, state.Terminal())
	assert.False(t, state.Complete())

	state.Status = SessionResolved
	assert.True(t, state.Terminal())
	assert.True(t, state.Complete())

	state.Status = SessionExhausted
	assert.True(t, state.Terminal())
	assert.False(t, state.Complete(), "an exhausted session is finished but not complete")
}
