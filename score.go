// score.go
// Copyright (C) 2024 Mike Werezak

// This file computes the score of a fully realized placement
// according to standard SCRABBLE(tm) scoring rules.

package scrabble

// ScorePlacement returns the total score of a placement.
//
// The main-line letter sum takes each covered cell's letter value,
// with the cell's letter multiplier applied only where a tile was
// newly placed (blanks are worth zero). The word multipliers of
// newly covered cells compound over the whole main line. Each
// crossing word is scored separately: the placed tile's multiplied
// value plus the fixed value of the crossing tiles, all scaled by
// the crossing cell's own word multiplier. The main-line word
// multipliers never reach the crossing words. Playing a full rack
// of seven tiles earns the bingo bonus.
func ScorePlacement(query *Query, oracle *CrossOracle, p *Placement) int {
	letterSum := 0
	wordMult := 1
	crossTotal := 0
	for i := p.Start; i < p.End; i++ {
		cell := &query.Spec.Cells[i]
		letter := p.Letters[i-p.Start]
		if cell.Kind == CellFixed {
			letterSum += LetterScore(letter)
			continue
		}
		value := LetterScore(letter)
		if p.UsedBlank(i) {
			value = 0
		}
		placed := value * cell.Bonus.LetterMultiplier()
		letterSum += placed
		wordMult *= cell.Bonus.WordMultiplier()
		ord := query.OpenOrdinal(i)
		if oracle.HasCross(ord) {
			crossTotal += (placed + oracle.BaseScore(ord)) * cell.Bonus.WordMultiplier()
		}
	}
	score := letterSum*wordMult + crossTotal
	if p.TilesUsed == BingoTileCount {
		score += BingoBonus
	}
	return score
}
