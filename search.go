// search.go
// Copyright (C) 2024 Mike Werezak

// This file contains the placement search: the joint constraint
// satisfaction walk that enumerates every legal way of covering a
// contiguous range of word-spec cells with rack tiles.

/*

The search proceeds in two layers.

The outer layer enumerates alignments: every (start, end) cell range
the formed word could cover, restricted by the spec's anchors. An
anchored side pins start to 0 or end to the spec length; an
unanchored side lets the word begin after (or end before) the spec
boundary, leaving a run of open cells unused.

The inner layer is a recursive walk over the cells of one alignment,
advancing a lexicon node in lockstep with the cell index. A fixed
cell must match an outgoing trie edge and consumes nothing. An open
cell branches over the letters admitted by the three-way
intersection of (a) the crossword oracle's allowed set, (b) the trie
node's outgoing edges, and (c) the letters the rack can produce.
When both a matching letter tile and a blank are available, both
branches are explored: they yield distinct placements with distinct
scores. The walk succeeds at the end of the range if the lexicon
node is final and at least one rack tile was consumed.

*/

package scrabble

// Placement is a fully realized answer: the covered cell range, the
// letter in each covered cell, and which of those cells were
// covered by a blank tile.
type Placement struct {
	Start   int
	End     int
	Letters []rune
	// Blanks has bit i set if cell Start+i was covered by a blank
	Blanks uint32
	// TilesUsed is the number of tiles drawn from the rack
	TilesUsed int
}

// Word returns the word formed on the main line
func (p *Placement) Word() string {
	return string(p.Letters)
}

// UsedBlank reports whether the given cell index was covered
// by a blank tile
func (p *Placement) UsedBlank(cell int) bool {
	return p.Blanks&(1<<uint(cell-p.Start)) != 0
}

// searcher holds the state of one placement search. The rack is a
// private clone, decremented and restored as the walk backtracks.
type searcher struct {
	lex    *Lexicon
	query  *Query
	oracle *CrossOracle
	rack   *Rack
	emit   func(Placement)
	// walk state for the current alignment
	start     int
	end       int
	letters   []rune
	blanks    uint32
	tilesUsed int
}

// FindPlacements runs the joint constraint search for a query,
// invoking emit for every legal placement found. Emitted placements
// share no state with the search and may be retained.
func FindPlacements(lex *Lexicon, query *Query, oracle *CrossOracle, emit func(Placement)) {
	s := &searcher{
		lex:     lex,
		query:   query,
		oracle:  oracle,
		rack:    query.Rack.Clone(),
		emit:    emit,
		letters: make([]rune, 0, len(query.Spec.Cells)),
	}
	n := len(query.Spec.Cells)
	lastStart := n - 1
	if query.Spec.AnchorLeft {
		lastStart = 0
	}
	for start := 0; start <= lastStart; start++ {
		firstEnd := start + 1
		if query.Spec.AnchorRight {
			firstEnd = n
		}
		for end := firstEnd; end <= n; end++ {
			s.start, s.end = start, end
			s.walk(start, s.lex.Root())
		}
	}
}

// walk advances the search from cell i with the lexicon at node n
func (s *searcher) walk(i int, n int32) {
	if i == s.end {
		if s.tilesUsed > 0 && s.lex.IsFinal(n) {
			letters := make([]rune, len(s.letters))
			copy(letters, s.letters)
			s.emit(Placement{
				Start:     s.start,
				End:       s.end,
				Letters:   letters,
				Blanks:    s.blanks,
				TilesUsed: s.tilesUsed,
			})
		}
		return
	}
	cell := &s.query.Spec.Cells[i]
	if cell.Kind == CellFixed {
		// A board tile: must match the trie, consumes no rack tile
		// and is exempt from crossword checks
		next, ok := s.lex.Step(n, cell.Letter)
		if !ok {
			return
		}
		s.letters = append(s.letters, cell.Letter)
		s.walk(i+1, next)
		s.letters = s.letters[:len(s.letters)-1]
		return
	}
	admissible := s.oracle.Allowed(s.query.OpenOrdinal(i)) & s.lex.Children(n)
	if cell.Kind == CellOpenLetter {
		admissible &= letterBit(cell.Letter)
	}
	if !s.rack.ContainsBlank() {
		admissible &= s.rack.LetterSet()
	}
	if admissible == 0 {
		return
	}
	for ix := 0; ix < AlphabetSize; ix++ {
		letter := rune('a' + ix)
		if !admissible.Contains(letter) {
			continue
		}
		next, _ := s.lex.Step(n, letter)
		if s.rack.ContainsTile(letter) {
			s.rack.RemoveTile(letter)
			s.place(i, letter, false, next)
			s.rack.AddTile(letter)
		}
		if s.rack.ContainsBlank() {
			s.rack.RemoveTile(Blank)
			s.place(i, letter, true, next)
			s.rack.AddTile(Blank)
		}
	}
}

// place covers cell i with a letter and recurses to the next cell,
// restoring the walk state afterwards
func (s *searcher) place(i int, letter rune, blank bool, next int32) {
	s.letters = append(s.letters, letter)
	s.tilesUsed++
	if blank {
		s.blanks |= 1 << uint(i-s.start)
	}
	s.walk(i+1, next)
	if blank {
		s.blanks &^= 1 << uint(i-s.start)
	}
	s.tilesUsed--
	s.letters = s.letters[:len(s.letters)-1]
}
