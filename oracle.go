// oracle.go
// Copyright (C) 2024 Mike Werezak

// This file implements the crossword oracle, which precomputes the
// per-cell crossword legality sets and score contributions so the
// inner search can test them in constant time.

package scrabble

// CrossOracle holds, for each open cell of a query, the bit-mapped
// set of letters that keep the crossing word legal, the fixed score
// contribution of the crossing tiles, and whether there is a
// crossing word to score at all.
type CrossOracle struct {
	allowed   []LetterSet
	baseScore []int
	hasCross  []bool
}

// NewCrossOracle builds the oracle for a query against a lexicon.
// Unconstrained cells admit the whole alphabet; constrained cells
// admit exactly the letters c for which prefix+c+suffix is a word.
func NewCrossOracle(lex *Lexicon, query *Query) *CrossOracle {
	n := query.Spec.OpenCount()
	oracle := &CrossOracle{
		allowed:   make([]LetterSet, n),
		baseScore: make([]int, n),
		hasCross:  make([]bool, n),
	}
	for i := 0; i < n; i++ {
		cw := query.CrosswordAt(i)
		if cw.IsEmpty() {
			oracle.allowed[i] = AllLetters
			continue
		}
		oracle.allowed[i] = lex.CrossSet(cw.Prefix, cw.Suffix)
		oracle.hasCross[i] = true
		for _, r := range cw.Prefix {
			oracle.baseScore[i] += LetterScore(r)
		}
		for _, r := range cw.Suffix {
			oracle.baseScore[i] += LetterScore(r)
		}
	}
	return oracle
}

// Allowed returns the set of letters that may legally be placed in
// the open cell with the given ordinal
func (oracle *CrossOracle) Allowed(openOrdinal int) LetterSet {
	return oracle.allowed[openOrdinal]
}

// HasCross reports whether the open cell has a crossing word
// to score
func (oracle *CrossOracle) HasCross(openOrdinal int) bool {
	return oracle.hasCross[openOrdinal]
}

// BaseScore returns the summed letter values of the crossing tiles
// already on the board at the open cell
func (oracle *CrossOracle) BaseScore(openOrdinal int) int {
	return oracle.baseScore[openOrdinal]
}
