// rack.go
// Copyright (C) 2024 Mike Werezak

// This file implements the Rack, the multiset of tiles available
// to the player, and the letter pool parser.

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
	"sort"
	"strings"
	"unicode"
)

// Rack is a finite multiset of tiles, mapping each tile rune to its
// count. Blank tiles are represented by Blank ('*').
type Rack struct {
	Tiles map[rune]int
}

// NewRack returns an empty Rack
func NewRack() *Rack {
	return &Rack{Tiles: make(map[rune]int)}
}

// ParseLetterPool parses a letter pool specification into a Rack.
// The syntax is case-insensitive: each a-z rune contributes one
// letter tile and '*' contributes one blank. A decimal count may
// prefix a tile token to contribute that many copies, e.g. "3e2n*".
// Any other character yields ErrInvalidLetterPool.
func ParseLetterPool(spec string) (*Rack, error) {
	rack := NewRack()
	count := -1
	for _, r := range spec {
		switch {
		case r >= '0' && r <= '9':
			if count < 0 {
				count = 0
			}
			count = count*10 + int(r-'0')
		case r == Blank || (unicode.ToLower(r) >= 'a' && unicode.ToLower(r) <= 'z'):
			tile := unicode.ToLower(r)
			n := 1
			if count >= 0 {
				n = count
				count = -1
			}
			for i := 0; i < n; i++ {
				rack.AddTile(tile)
			}
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidLetterPool, r)
		}
	}
	if count >= 0 {
		return nil, fmt.Errorf("%w: dangling count", ErrInvalidLetterPool)
	}
	return rack, nil
}

// AddTile adds a tile to the Rack
func (rack *Rack) AddTile(tile rune) {
	if rack.Tiles == nil {
		rack.Tiles = make(map[rune]int)
	}
	rack.Tiles[tile]++
}

// RemoveTile removes one copy of a tile from the Rack,
// returning false if the tile is not present
func (rack *Rack) RemoveTile(tile rune) bool {
	if rack.Tiles == nil || rack.Tiles[tile] <= 0 {
		return false
	}
	rack.Tiles[tile]--
	return true
}

// ContainsTile reports whether at least one copy of the tile
// is in the Rack
func (rack *Rack) ContainsTile(tile rune) bool {
	return rack.Tiles != nil && rack.Tiles[tile] > 0
}

// ContainsBlank reports whether the Rack holds a blank tile
func (rack *Rack) ContainsBlank() bool {
	return rack.ContainsTile(Blank)
}

// BlankCount returns the number of blank tiles in the Rack
func (rack *Rack) BlankCount() int {
	if rack.Tiles == nil {
		return 0
	}
	return rack.Tiles[Blank]
}

// TileCount returns the total number of tiles in the Rack
func (rack *Rack) TileCount() int {
	total := 0
	for _, count := range rack.Tiles {
		total += count
	}
	return total
}

// LetterSet returns the bit-mapped set of proper letters present in
// the Rack. Blanks are not included; the caller decides whether a
// blank widens the set to the whole alphabet.
func (rack *Rack) LetterSet() LetterSet {
	s := LetterSet(0)
	for tile, count := range rack.Tiles {
		if count > 0 && tile != Blank {
			s = s.Add(tile)
		}
	}
	return s
}

// Clone returns an independent copy of the Rack
func (rack *Rack) Clone() *Rack {
	clone := &Rack{Tiles: make(map[rune]int, len(rack.Tiles))}
	for tile, count := range rack.Tiles {
		if count > 0 {
			clone.Tiles[tile] = count
		}
	}
	return clone
}

// String returns the Rack's tiles in sorted order, blanks last
func (rack *Rack) String() string {
	tiles := make([]rune, 0, rack.TileCount())
	for tile, count := range rack.Tiles {
		for i := 0; i < count; i++ {
			tiles = append(tiles, tile)
		}
	}
	sort.Slice(tiles, func(i, j int) bool {
		// '*' sorts below 'a'; force blanks to the end
		if (tiles[i] == Blank) != (tiles[j] == Blank) {
			return tiles[j] == Blank
		}
		return tiles[i] < tiles[j]
	})
	var sb strings.Builder
	for _, tile := range tiles {
		sb.WriteRune(tile)
	}
	return sb.String()
}
