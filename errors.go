package main

import "fmt"

// ErrorKind classifies why an action was rejected. Every kind is recovered
// at the action boundary and turned into a message pushed to the acting
// connection only; none of them are fatal.
type ErrorKind int

const (
	ErrValidation ErrorKind = iota
	ErrNotYourTurn
	ErrWrongRole
	ErrInvalidTarget
	ErrPlayerNotFound
	ErrAlreadyDead
	ErrAlreadySeen
	ErrNotFound
	ErrConflict
	ErrStore
)

// ActionError is the single error type crossing the action-handler
// boundary. Message is user-facing and is sent verbatim to the client.
type ActionError struct {
	Kind    ErrorKind
	Message string
}

func (e *ActionError) Error() string { return e.Message }

func validationError(format string, args ...any) *ActionError {
	return &ActionError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func notYourTurn() *ActionError {
	return &ActionError{Kind: ErrNotYourTurn, Message: "Not a valid transition!"}
}

func wrongRole(message string) *ActionError {
	return &ActionError{Kind: ErrWrongRole, Message: message}
}

func invalidTarget(message string) *ActionError {
	return &ActionError{Kind: ErrInvalidTarget, Message: message}
}

func playerNotFound(connID string) *ActionError {
	return &ActionError{Kind: ErrPlayerNotFound, Message: fmt.Sprintf("Could not find player with connection ID: %q", connID)}
}

func alreadyDead() *ActionError {
	return &ActionError{Kind: ErrAlreadyDead, Message: "Player is already dead!"}
}

func alreadySeen() *ActionError {
	return &ActionError{Kind: ErrAlreadySeen, Message: "Player is already seen!"}
}

func lobbyNotFound() *ActionError {
	return &ActionError{Kind: ErrNotFound, Message: "Unable to find lobby"}
}

func conflictError(message string) *ActionError {
	return &ActionError{Kind: ErrConflict, Message: message}
}

func storeError(message string) *ActionError {
	return &ActionError{Kind: ErrStore, Message: message}
}
