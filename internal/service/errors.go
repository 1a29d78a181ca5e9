package service

import "errors"

var (
	// ErrEmptyTranscript rejects a session seeded without any content
	ErrEmptyTranscript = errors.New("transcript is empty")

	// ErrNoPendingQuestion rejects an answer when nothing was asked
	ErrNoPendingQuestion = errors.New("no pending question")

	// ErrSessionTerminal rejects mutations of a resolved or exhausted
	// session; only a full reset leaves a terminal state
	ErrSessionTerminal = errors.New("session already finished")

	// ErrSessionActive rejects report assembly while still gathering
	ErrSessionActive = errors.New("session still gathering")

	// ErrUnknownTerm rejects enhancement of a term outside the glossary
	ErrUnknownTerm = errors.New("unknown glossary term")
)
