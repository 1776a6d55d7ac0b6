// tileset.go
// Copyright (C) 2024 Mike Werezak

// This file contains the static letter values of the standard English
// SCRABBLE(tm) tile set, the bonus square definitions, and bit-mapped
// letter sets used for cross-check pruning.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package scrabble

// AlphabetSize is the number of letters in the English alphabet
const AlphabetSize = 26

// Blank is the rune representing a blank (wildcard) tile
const Blank = '*'

// BingoTileCount is the number of rack tiles that must be played
// in a single move to earn the bingo bonus
const BingoTileCount = 7

// BingoBonus is the number of extra points awarded for laying down
// all seven rack tiles in one move
const BingoBonus = 50

// LetterScores maps each lowercase letter to its point value in the
// standard English tile set. The blank scores zero.
var LetterScores = map[rune]int{
	'a': 1, 'b': 3, 'c': 3, 'd': 2, 'e': 1,
	'f': 4, 'g': 2, 'h': 4, 'i': 1, 'j': 8,
	'k': 5, 'l': 1, 'm': 3, 'n': 1, 'o': 1,
	'p': 3, 'q': 10, 'r': 1, 's': 1, 't': 1,
	'u': 1, 'v': 4, 'w': 4, 'x': 8, 'y': 4,
	'z': 10, Blank: 0,
}

// LetterScore returns the point value of a letter.
// Unknown runes (including the blank) score zero.
func LetterScore(letter rune) int {
	return LetterScores[letter]
}

// Bonus is the multiplier annotation of an open square
type Bonus int

// The bonus kinds. The query syntax exposes only the letter bonuses;
// the word bonuses are representable for generality.
const (
	NoBonus Bonus = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
)

// LetterMultiplier returns the multiplier applied to the value of a
// tile newly placed on a square carrying this bonus
func (b Bonus) LetterMultiplier() int {
	switch b {
	case DoubleLetter:
		return 2
	case TripleLetter:
		return 3
	}
	return 1
}

// WordMultiplier returns the multiplier this bonus applies to the
// whole word formed over the square
func (b Bonus) WordMultiplier() int {
	switch b {
	case DoubleWord:
		return 2
	case TripleWord:
		return 3
	}
	return 1
}

// LetterSet is a bit-mapped set of the lowercase letters a-z,
// with bit 0 corresponding to 'a'
type LetterSet uint32

// AllLetters is the LetterSet containing the entire alphabet
const AllLetters = LetterSet(1<<AlphabetSize) - 1

// letterBit returns the singleton set for a letter, or the empty
// set if the rune is outside a-z
func letterBit(letter rune) LetterSet {
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return 1 << uint(letter-'a')
}

// Contains reports whether the letter is a member of the set
func (s LetterSet) Contains(letter rune) bool {
	return s&letterBit(letter) != 0
}

// Add returns the set with the given letter included
func (s LetterSet) Add(letter rune) LetterSet {
	return s | letterBit(letter)
}

// MakeLetterSet converts a list of runes to a LetterSet, with the
// twist that if any of the runes is a blank, the full alphabet set
// is returned
func MakeLetterSet(letters []rune) LetterSet {
	s := LetterSet(0)
	for _, r := range letters {
		if r == Blank {
			return AllLetters
		}
		s = s.Add(r)
	}
	return s
}
