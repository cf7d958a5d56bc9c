package service

import "errors"

var (
	// ErrInvalidInput is returned for malformed client input, such as an
	// empty answer list or an unknown filter value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrQuestionNotFound is returned when a submitted question id does not
	// exist in the store.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrUserNotFound is returned when an identity has never been synced to a
	// user record. The caller should sync the profile first.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidQuestionType indicates stored question data is inconsistent.
	// It is fatal for the current operation, never silently skipped.
	ErrInvalidQuestionType = errors.New("invalid question type")
	// ErrConflict is returned when a concurrent first sync loses the race on
	// the external id uniqueness constraint. Recoverable: retry or re-fetch.
	ErrConflict = errors.New("conflicting user record")
)
