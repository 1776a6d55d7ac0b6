// errors.go
// Copyright (C) 2024 Mike Werezak

// This file declares the error kinds surfaced at the tool boundary.

package scrabble

import "errors"

// The error kinds that query construction and lexicon loading can
// produce. All of them are surfaced to the caller with a
// human-readable message; none are retried. Use errors.Is to test
// for a specific kind.
var (
	ErrInvalidLetterPool      = errors.New("invalid letter pool")
	ErrInvalidWordSpec        = errors.New("invalid word specification")
	ErrCrosswordCountMismatch = errors.New("crossword count does not match open cells")
	ErrInvalidCrossword       = errors.New("invalid crossword")
	ErrRackInsufficient       = errors.New("rack cannot supply a required letter")
	ErrInvalidWord            = errors.New("word contains characters outside a-z")
	ErrLexiconLoad            = errors.New("unable to load lexicon")
)
