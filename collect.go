// collect.go
// Copyright (C) 2024 Mike Werezak

// This file implements the result collector, which deduplicates
// placements, scores them, and ranks the survivors.

package scrabble

import "sort"

// Result couples a placement with its formed word, the crossing
// words it completes (in open-cell order), and its score.
type Result struct {
	Placement
	Word       string
	Crosswords []string
	Score      int
}

// placementKey identifies a placement for deduplication. Two
// placements are duplicates iff their range, letter sequence and
// blank usage all coincide.
type placementKey struct {
	start, end int
	letters    string
	blanks     uint32
}

// Collector accumulates placements from the search, eliminates
// duplicates, and produces the ranked result list. A limit of zero
// or less keeps every result.
type Collector struct {
	query   *Query
	oracle  *CrossOracle
	limit   int
	seen    map[placementKey]bool
	results []Result
}

// NewCollector returns a Collector for a query
func NewCollector(query *Query, oracle *CrossOracle, limit int) *Collector {
	return &Collector{
		query:  query,
		oracle: oracle,
		limit:  limit,
		seen:   make(map[placementKey]bool),
	}
}

// Add scores a placement and records it, unless an identical
// placement has already been seen
func (c *Collector) Add(p Placement) {
	key := placementKey{p.Start, p.End, string(p.Letters), p.Blanks}
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	var crosswords []string
	for i := p.Start; i < p.End; i++ {
		if !c.query.Spec.Cells[i].IsOpen() {
			continue
		}
		ord := c.query.OpenOrdinal(i)
		if c.oracle.HasCross(ord) {
			cw := c.query.CrosswordAt(ord)
			crosswords = append(crosswords, cw.Form(p.Letters[i-p.Start]))
		}
	}
	c.results = append(c.results, Result{
		Placement:  p,
		Word:       p.Word(),
		Crosswords: crosswords,
		Score:      ScorePlacement(c.query, c.oracle, &p),
	})
}

// Total returns the number of distinct placements collected,
// regardless of the limit
func (c *Collector) Total() int {
	return len(c.results)
}

// Results sorts the collected placements by score descending, then
// word ascending, then by range and blank usage for a total order,
// and returns the top results up to the limit.
func (c *Collector) Results() []Result {
	sort.Slice(c.results, func(i, j int) bool {
		a, b := &c.results[i], &c.results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Word != b.Word {
			return a.Word < b.Word
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Blanks < b.Blanks
	})
	results := c.results
	if c.limit > 0 && len(results) > c.limit {
		results = results[:c.limit]
	}
	return results
}

// RunQuery evaluates a query against a lexicon and returns at most
// limit results in rank order (all of them if limit <= 0)
func RunQuery(lex *Lexicon, query *Query, limit int) []Result {
	oracle := NewCrossOracle(lex, query)
	collector := NewCollector(query, oracle, limit)
	FindPlacements(lex, query, oracle, collector.Add)
	return collector.Results()
}
