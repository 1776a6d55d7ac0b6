// lexicon.go
// Copyright (C) 2024 Mike Werezak

// This file implements the Lexicon, a trie over the lowercase
// alphabet that encodes the dictionary of valid words and answers
// the prefix- and pattern-constrained lookups needed by the
// placement search.

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

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// Lexicon is a 26-way trie keyed by word. Nodes live in a single
// arena slice and are referred to by index; index 0 is the root.
// After construction the trie itself is read-only and may be shared
// across concurrent queries without synchronization. Only the
// cross-set cache is mutable, and it carries its own lock.
type Lexicon struct {
	nodes    []lexNode
	numWords int
	// crossCache is a cached map of cross-check patterns
	// ("prefix?suffix") to bit-mapped sets of allowed letters
	crossCache crossCache
}

// lexNode is a single trie node. A child index of 0 means the child
// is absent (the root can never be a child). childSet mirrors the
// children array as a bit map so the search can intersect it in one
// operation.
type lexNode struct {
	children [AlphabetSize]int32
	childSet LetterSet
	final    bool
}

// lexRoot is the node index of the trie root
const lexRoot = int32(0)

// NewLexicon returns an empty Lexicon ready for Add calls
func NewLexicon() *Lexicon {
	lex := &Lexicon{
		nodes: make([]lexNode, 1, 1024),
	}
	lex.crossCache.Init(2048)
	return lex
}

// WordCount returns the number of distinct words added so far
func (lex *Lexicon) WordCount() int {
	return lex.numWords
}

// Root returns the node index of the trie root
func (lex *Lexicon) Root() int32 {
	return lexRoot
}

// Step returns the node reached from n by the given letter,
// or false if there is no such edge
func (lex *Lexicon) Step(n int32, letter rune) (int32, bool) {
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	next := lex.nodes[n].children[letter-'a']
	if next == 0 {
		return 0, false
	}
	return next, true
}

// IsFinal reports whether the path from the root to n spells
// a complete word
func (lex *Lexicon) IsFinal(n int32) bool {
	return lex.nodes[n].final
}

// Children returns the set of letters for which n has an
// outgoing edge
func (lex *Lexicon) Children(n int32) LetterSet {
	return lex.nodes[n].childSet
}

// Add inserts a word into the Lexicon. The word is lowercased
// first; a word containing anything outside a-z is rejected with
// ErrInvalidWord and the trie is left unchanged.
func (lex *Lexicon) Add(word string) error {
	word = strings.ToLower(word)
	if len(word) == 0 {
		return fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("%w: %q", ErrInvalidWord, word)
		}
	}
	n := lexRoot
	for _, r := range word {
		ix := r - 'a'
		next := lex.nodes[n].children[ix]
		if next == 0 {
			lex.nodes = append(lex.nodes, lexNode{})
			next = int32(len(lex.nodes) - 1)
			lex.nodes[n].children[ix] = next
			lex.nodes[n].childSet = lex.nodes[n].childSet.Add(r)
		}
		n = next
	}
	if !lex.nodes[n].final {
		lex.nodes[n].final = true
		lex.numWords++
	}
	return nil
}

// Contains reports whether a word is in the Lexicon. The lookup is
// case-insensitive; runes outside a-z simply fail to match.
func (lex *Lexicon) Contains(word string) bool {
	n := lexRoot
	for _, r := range strings.ToLower(word) {
		next, ok := lex.Step(n, r)
		if !ok {
			return false
		}
		n = next
	}
	return n != lexRoot && lex.nodes[n].final
}

// CrossSet calculates the bit-mapped set of letters c for which
// prefix+c+suffix is a word in the Lexicon. This is the legality
// test for placing c on a square crossed by an existing word
// fragment. Results are memoized in an LRU cache since the same
// crossing fragments recur across alignments.
func (lex *Lexicon) CrossSet(prefix, suffix string) LetterSet {
	key := prefix + "?" + suffix
	return lex.crossCache.Lookup(key, func(string) LetterSet {
		return lex.crossSet(prefix, suffix)
	})
}

// crossSet is the uncached cross-set calculation: walk the prefix
// from the root, then try each child letter and walk the suffix
// below it.
func (lex *Lexicon) crossSet(prefix, suffix string) LetterSet {
	n := lexRoot
	for _, r := range prefix {
		next, ok := lex.Step(n, r)
		if !ok {
			// The prefix itself is not in the trie:
			// no letter can complete the crossing word
			return 0
		}
		n = next
	}
	allowed := LetterSet(0)
	for ix := 0; ix < AlphabetSize; ix++ {
		mid := lex.nodes[n].children[ix]
		if mid == 0 {
			continue
		}
		m := mid
		ok := true
		for _, r := range suffix {
			var found bool
			if m, found = lex.Step(m, r); !found {
				ok = false
				break
			}
		}
		if ok && lex.nodes[m].final {
			allowed = allowed.Add(rune('a' + ix))
		}
	}
	return allowed
}

// crossCache encapsulates a simple LRU cached map of cross-set
// patterns ("prefix?suffix") to bit-mapped letter sets
type crossCache struct {
	mux sync.Mutex
	lru *simplelru.LRU
}

// Init initializes an empty crossCache of the given capacity
func (cc *crossCache) Init(size int) {
	cc.lru, _ = simplelru.NewLRU(size, nil)
}

// Lookup returns the LetterSet corresponding to a pattern key.
// If the key is found in the cache, it is returned immediately.
// Otherwise the given fetchFunc() is called to calculate the set
// before storing it in the cache.
func (cc *crossCache) Lookup(key string, fetchFunc func(string) LetterSet) LetterSet {
	cc.mux.Lock()
	defer cc.mux.Unlock()
	if set, ok := cc.lru.Get(key); ok {
		return set.(LetterSet)
	}
	set := fetchFunc(key)
	cc.lru.Add(key, set)
	return set
}
