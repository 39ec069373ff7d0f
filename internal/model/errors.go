package model

import "errors"

// Error kinds. Every failure returned by a store or service unwraps to one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrExpired      = errors.New("expired")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrStorage      = errors.New("storage failure")
)

var (
	ErrAlreadyPublished = newKindError(ErrConflict, "challenge already exists for this date")
	ErrAlreadySubmitted = newKindError(ErrConflict, "already submitted for this challenge")
	ErrPromptTaken      = newKindError(ErrConflict, "prompt already marked used")
	ErrPromptPoolEmpty  = newKindError(ErrNotFound, "prompt catalog is empty")
	ErrChallengeExpired = newKindError(ErrExpired, "challenge has expired")
)

type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Kind returns the error kind err unwraps to, or nil for unclassified errors.
func Kind(err error) error {
	for _, k := range []error{ErrNotFound, ErrConflict, ErrExpired, ErrForbidden, ErrInvalidInput, ErrStorage} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
