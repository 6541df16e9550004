package scoring

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/lettergrid/board"
	"github.com/domino14/lettergrid/tilemapping"
)

// WordScore is the sum of the letter values in the word. There are no
// bonus squares or multipliers yet.
func WordScore(w Word) int {
	return lo.SumBy(w.Letters, func(l tilemapping.Letter) int {
		return l.Score()
	})
}

// Score scans the board and adds up the score of every word found, in both
// directions. Nothing is cached; every call rescans.
func Score(b *board.BoardState) int {
	return lo.SumBy(Scan(b), WordScore)
}

// ScoredWord is a word and what it scored.
type ScoredWord struct {
	Word
	Score int
}

// Result shows how a board score was reached.
type Result struct {
	Words []ScoredWord
	Total int
}

// Breakdown is Score, keeping the individual words.
func Breakdown(b *board.BoardState) Result {
	words := lo.Map(Scan(b), func(w Word, _ int) ScoredWord {
		return ScoredWord{Word: w, Score: WordScore(w)}
	})
	return Result{
		Words: words,
		Total: lo.SumBy(words, func(sw ScoredWord) int { return sw.Score }),
	}
}

// ToDisplayText lists the words in scan order, one per line, then the total.
func (r Result) ToDisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-14s%-10s%-20s%s\n", "Direction", "Start", "Word", "Score")
	for _, w := range r.Words {
		fmt.Fprintf(&sb, "%-14s%-10s%-20s%d\n", w.Direction,
			fmt.Sprintf("(%d,%d)", w.X, w.Y), w.String(), w.Score)
	}
	fmt.Fprintf(&sb, "Total: %d\n", r.Total)
	return sb.String()
}
