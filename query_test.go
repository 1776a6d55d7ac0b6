// query_test.go
// Copyright (C) 2024 Mike Werezak
// This file contains tests for the query parsers and validation

package scrabble

import (
	"errors"
	"testing"
)

func TestParseLetterPool(t *testing.T) {
	rack, err := ParseLetterPool("detoau*")
	if err != nil {
		t.Fatalf("ParseLetterPool failed: %v", err)
	}
	if rack.TileCount() != 7 {
		t.Errorf("TileCount() = %v, want 7", rack.TileCount())
	}
	if !rack.ContainsBlank() {
		t.Errorf("Pool with '*' should contain a blank")
	}
	if rack.String() != "adeotu*" {
		t.Errorf("String() = %q, want %q", rack.String(), "adeotu*")
	}
	// Count prefixes and case insensitivity
	rack, err = ParseLetterPool("3e2Nz")
	if err != nil {
		t.Fatalf("ParseLetterPool failed: %v", err)
	}
	if rack.Tiles['e'] != 3 || rack.Tiles['n'] != 2 || rack.Tiles['z'] != 1 {
		t.Errorf("Count-prefixed pool parsed incorrectly: %v", rack.Tiles)
	}
	// Errors
	for _, pool := range []string{"ab-c", "a b", "abc3", "ä"} {
		if _, err := ParseLetterPool(pool); !errors.Is(err, ErrInvalidLetterPool) {
			t.Errorf("ParseLetterPool(%q) = %v, want ErrInvalidLetterPool", pool, err)
		}
	}
	// An empty pool is legal; queries on it simply return nothing
	if _, err := ParseLetterPool(""); err != nil {
		t.Errorf("ParseLetterPool(\"\") = %v, want nil", err)
	}
}

func TestParseWordSpec(t *testing.T) {
	spec, err := ParseWordSpec("/.#!aZ/")
	if err != nil {
		t.Fatalf("ParseWordSpec failed: %v", err)
	}
	if !spec.AnchorLeft || !spec.AnchorRight {
		t.Errorf("Anchors not parsed: left=%v right=%v", spec.AnchorLeft, spec.AnchorRight)
	}
	want := []Cell{
		{Kind: CellOpen},
		{Kind: CellOpen, Bonus: DoubleLetter},
		{Kind: CellOpen, Bonus: TripleLetter},
		{Kind: CellOpenLetter, Letter: 'a'},
		{Kind: CellFixed, Letter: 'z'},
	}
	if len(spec.Cells) != len(want) {
		t.Fatalf("Parsed %v cells, want %v", len(spec.Cells), len(want))
	}
	for i, cell := range want {
		if spec.Cells[i] != cell {
			t.Errorf("Cell %v = %+v, want %+v", i, spec.Cells[i], cell)
		}
	}
	if spec.OpenCount() != 4 {
		t.Errorf("OpenCount() = %v, want 4", spec.OpenCount())
	}
	// Round-trip through String()
	for _, s := range []string{"/.#!aZ/", "...", "/C.T", ".#./"} {
		spec, err := ParseWordSpec(s)
		if err != nil {
			t.Fatalf("ParseWordSpec(%q) failed: %v", s, err)
		}
		if spec.String() != s {
			t.Errorf("Round-trip of %q produced %q", s, spec.String())
		}
	}
	// Errors
	for _, s := range []string{"", "//", "..?", "a b"} {
		if _, err := ParseWordSpec(s); !errors.Is(err, ErrInvalidWordSpec) {
			t.Errorf("ParseWordSpec(%q) = %v, want ErrInvalidWordSpec", s, err)
		}
	}
}

func TestParseCrossword(t *testing.T) {
	cw, err := ParseCrossword("ca.TS")
	if err != nil {
		t.Fatalf("ParseCrossword failed: %v", err)
	}
	if cw.Prefix != "ca" || cw.Suffix != "ts" {
		t.Errorf("ParseCrossword = %+v, want prefix 'ca', suffix 'ts'", cw)
	}
	if cw.Form('t') != "catts" {
		t.Errorf("Form('t') = %q", cw.Form('t'))
	}
	bare, err := ParseCrossword(".")
	if err != nil || !bare.IsEmpty() {
		t.Errorf("ParseCrossword(\".\") = %+v, %v; want the empty constraint", bare, err)
	}
	for _, s := range []string{"", "cat", "a..b", "c-t.", "ca.t.s"} {
		if _, err := ParseCrossword(s); !errors.Is(err, ErrInvalidCrossword) {
			t.Errorf("ParseCrossword(%q) = %v, want ErrInvalidCrossword", s, err)
		}
	}
}

func TestNewQueryValidation(t *testing.T) {
	rack, _ := ParseLetterPool("cat")
	spec, _ := ParseWordSpec("C.T")

	// Valid query, no crosswords
	if _, err := NewQuery(rack, spec, nil); err != nil {
		t.Errorf("Valid query rejected: %v", err)
	}
	// Valid query, matching crossword count (1 open cell)
	if _, err := NewQuery(rack, spec, []Crossword{{}}); err != nil {
		t.Errorf("Valid query with crosswords rejected: %v", err)
	}
	// Crossword count mismatch
	if _, err := NewQuery(rack, spec, []Crossword{{}, {}}); !errors.Is(err, ErrCrosswordCountMismatch) {
		t.Errorf("Mismatched crosswords = %v, want ErrCrosswordCountMismatch", err)
	}
	// A spec without open cells is not a move
	fixed, _ := ParseWordSpec("CAT")
	if _, err := NewQuery(rack, fixed, nil); !errors.Is(err, ErrInvalidWordSpec) {
		t.Errorf("Fully-fixed spec = %v, want ErrInvalidWordSpec", err)
	}
}

func TestNewQueryRackInsufficient(t *testing.T) {
	spec, _ := ParseWordSpec(".zz.")

	rack, _ := ParseLetterPool("az")
	if _, err := NewQuery(rack, spec, nil); !errors.Is(err, ErrRackInsufficient) {
		t.Errorf("Demanding two z with one = %v, want ErrRackInsufficient", err)
	}
	// A blank covers the shortfall
	rack, _ = ParseLetterPool("az*")
	if _, err := NewQuery(rack, spec, nil); err != nil {
		t.Errorf("Blank should cover the missing z: %v", err)
	}
	// Two blanks cover both
	rack, _ = ParseLetterPool("a2*")
	if _, err := NewQuery(rack, spec, nil); err != nil {
		t.Errorf("Two blanks should cover both z: %v", err)
	}
}

func TestQueryOpenOrdinals(t *testing.T) {
	rack, _ := ParseLetterPool("abc")
	spec, _ := ParseWordSpec(".A.B.")
	query, err := NewQuery(rack, spec, nil)
	if err != nil {
		t.Fatalf("NewQuery failed: %v", err)
	}
	want := []int{0, -1, 1, -1, 2}
	for i, ord := range want {
		if query.OpenOrdinal(i) != ord {
			t.Errorf("OpenOrdinal(%v) = %v, want %v", i, query.OpenOrdinal(i), ord)
		}
	}
	// With no crossword list, every cell is unconstrained
	if !query.CrosswordAt(1).IsEmpty() {
		t.Errorf("CrosswordAt without a list should be empty")
	}
}
