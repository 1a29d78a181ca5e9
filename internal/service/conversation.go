package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"intakeflow/internal/logger"
	"intakeflow/internal/model"
	"intakeflow/internal/session"
)

// ConversationService drives the intake conversation state machine: seed a
// session with a transcript, hand out follow-up questions for checklist
// gaps, fold answers back in and re-analyze until every point is covered or
// the question budget runs out.
type ConversationService struct {
	store       session.Store
	analyzer    *GapAnalyzer
	sequencer   *QuestionSequencer
	broadcaster Broadcaster
}

// NewConversationService creates a new conversation service
func NewConversationService(store session.Store, analyzer *GapAnalyzer, sequencer *QuestionSequencer) *ConversationService {
	return &ConversationService{
		store:     store,
		analyzer:  analyzer,
		sequencer: sequencer,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *ConversationService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SubmitTranscript seeds a new session from the initial transcript and runs
// the first analysis pass
func (s *ConversationService) SubmitTranscript(ctx context.Context, transcript string) (*model.ConversationState, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}

	state := model.NewConversationState(uuid.NewString(), transcript)
	state.Missing = s.analyzer.Analyze(ctx, state.CombinedText())
	if state.Missing.Empty() {
		state.Status = model.SessionResolved
	}

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"session": state.ID,
		"missing": state.Missing.Count(),
		"status":  state.Status,
	}).Info("session created")
	s.broadcast(state.ID, "analysis_updated", state.Missing)
	s.broadcastTerminal(state)

	return state, nil
}

// GetState returns the current conversation state
func (s *ConversationService) GetState(ctx context.Context, sessionID string) (*model.ConversationState, error) {
	return s.store.Get(ctx, sessionID)
}

// NextPrompt returns the question to ask next, or nil when the session is
// terminal. Asking is what moves a gathering session into a terminal state:
// when no askable question remains the status flips to resolved (nothing
// missing) or exhausted (budget or repeats ran out with gaps left).
func (s *ConversationService) NextPrompt(ctx context.Context, sessionID string) (*model.QAPair, error) {
	var prompt *model.QAPair
	err := s.store.WithLock(sessionID, func() error {
		state, err := s.store.Get(ctx, sessionID)
		if err != nil {
			return err
		}
		if state.Terminal() {
			return nil
		}
		if pending := state.PendingQuestion(); pending != nil {
			cp := *pending
			prompt = &cp
			return nil
		}

		qa := s.sequencer.NextQuestion(ctx, state.Missing, state.QAHistory)
		if qa == nil {
			if state.Missing.Empty() {
				state.Status = model.SessionResolved
			} else {
				state.Status = model.SessionExhausted
			}
			state.UpdatedAt = time.Now()
			if err := s.store.Save(ctx, state); err != nil {
				return err
			}
			logger.Log.WithFields(map[string]interface{}{
				"session": state.ID,
				"status":  state.Status,
				"missing": state.Missing.Count(),
			}).Info("session finished")
			s.broadcastTerminal(state)
			return nil
		}

		qa.AskedAt = time.Now()
		state.QAHistory = append(state.QAHistory, *qa)
		state.QuestionsAsked++
		state.UpdatedAt = time.Now()
		if err := s.store.Save(ctx, state); err != nil {
			return err
		}
		s.broadcast(state.ID, "question_asked", qa)

		cp := *qa
		prompt = &cp
		return nil
	})
	return prompt, err
}

// SubmitAnswer attaches the answer to the pending question, re-runs gap
// analysis over everything said so far and replaces the missing map
func (s *ConversationService) SubmitAnswer(ctx context.Context, sessionID, answerText string) (*model.ConversationState, error) {
	var result *model.ConversationState
	err := s.store.WithLock(sessionID, func() error {
		state, err := s.store.Get(ctx, sessionID)
		if err != nil {
			return err
		}
		if state.Terminal() {
			return ErrSessionTerminal
		}
		pending := state.PendingQuestion()
		if pending == nil {
			return ErrNoPendingQuestion
		}

		now := time.Now()
		pending.Answer = answerText
		pending.Answered = true
		pending.AnsweredAt = &now

		state.Missing = s.analyzer.Analyze(ctx, state.CombinedText())
		if state.Missing.Empty() {
			state.Status = model.SessionResolved
		}
		state.UpdatedAt = now

		if err := s.store.Save(ctx, state); err != nil {
			return err
		}

		logger.Log.WithFields(map[string]interface{}{
			"session": state.ID,
			"missing": state.Missing.Count(),
			"status":  state.Status,
		}).Info("answer processed")
		s.broadcast(state.ID, "answer_received", pending)
		s.broadcast(state.ID, "analysis_updated", state.Missing)
		s.broadcastTerminal(state)

		result = state
		return nil
	})
	return result, err
}

// IsComplete reports whether every checklist point was resolved. An
// exhausted session is finished but not complete.
func (s *ConversationService) IsComplete(ctx context.Context, sessionID string) (bool, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return state.Complete(), nil
}

// Reset destroys the session entirely. A new conversation starts from a
// fresh SubmitTranscript; there is no partial clear.
func (s *ConversationService) Reset(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	if s.broadcaster != nil {
		s.broadcaster.DisconnectSession(sessionID)
	}
	logger.Log.WithField("session", sessionID).Info("session reset")
	return nil
}

func (s *ConversationService) broadcast(sessionID, msgType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, msgType, payload)
	}
}

func (s *ConversationService) broadcastTerminal(state *model.ConversationState) {
	if s.broadcaster == nil || !state.Terminal() {
		return
	}
	msgType := "session_resolved"
	if state.Status == model.SessionExhausted {
		msgType = "session_exhausted"
	}
	s.broadcaster.BroadcastToSession(state.ID, msgType, map[string]interface{}{
		"status":  state.Status,
		"missing": state.Missing.Count(),
	})
}
