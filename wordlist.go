// wordlist.go
// Copyright (C) 2024 Mike Werezak

// This file loads a Lexicon from a plain newline-delimited
// word list.

package scrabble

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadLexicon builds a Lexicon from a newline-delimited word list.
// Entries containing anything outside a-z (after lowercasing) are
// skipped; the count of skipped entries is returned alongside the
// Lexicon.
func LoadLexicon(r io.Reader) (*Lexicon, int, error) {
	lex := NewLexicon()
	skipped := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := scanner.Text()
		if len(word) == 0 {
			continue
		}
		if err := lex.Add(word); err != nil {
			if errors.Is(err, ErrInvalidWord) {
				skipped++
				continue
			}
			return nil, skipped, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("%w: %v", ErrLexiconLoad, err)
	}
	return lex, skipped, nil
}

// LoadLexiconFile loads a Lexicon from a word list file
func LoadLexiconFile(path string) (*Lexicon, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrLexiconLoad, err)
	}
	defer file.Close()
	return LoadLexicon(file)
}
