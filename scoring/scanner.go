// Package scoring finds the words on a board and scores them.
//
// A word is any maximal run of non-blank cells along a row or a column.
// There is no dictionary: a run of one letter is a word too, so a lone
// tile is found once by the row pass and once by the column pass and is
// counted twice.
package scoring

import (
	"github.com/domino14/lettergrid/board"
	"github.com/domino14/lettergrid/tilemapping"
)

// A Word is a run of letters found by one scan pass. X and Y are the
// coordinates of its first letter.
type Word struct {
	Letters   []tilemapping.Letter
	Direction board.BoardDirection
	X, Y      int
}

func (w Word) String() string {
	return tilemapping.UserVisible(w.Letters)
}

// Len is the number of letters in the word.
func (w Word) Len() int {
	return len(w.Letters)
}

// Scan returns every word on the board: all the horizontal words row by row,
// left to right, followed by all the vertical words column by column, top to
// bottom.
func Scan(b *board.BoardState) []Word {
	words := ScanDirection(b, board.HorizontalDirection)
	return append(words, ScanDirection(b, board.VerticalDirection)...)
}

// ScanDirection runs a single pass over the board.
func ScanDirection(b *board.BoardState, dir board.BoardDirection) []Word {
	// lines are rows for the horizontal pass and columns for the vertical
	// one. pos is the offset along a line.
	nLines, lineLen := b.Height(), b.Width()
	at := func(line, pos int) (x, y int) { return pos, line }
	if dir == board.VerticalDirection {
		nLines, lineLen = b.Width(), b.Height()
		at = func(line, pos int) (x, y int) { return line, pos }
	}

	words := []Word{}
	for line := 0; line < nLines; line++ {
		var acc []tilemapping.Letter
		start := 0
		emit := func() {
			x, y := at(line, start)
			words = append(words, Word{Letters: acc, Direction: dir, X: x, Y: y})
			acc = nil
		}
		for pos := 0; pos < lineLen; pos++ {
			l, err := b.Get(at(line, pos))
			if err != nil {
				// Cannot happen; we never leave the board.
				panic(err)
			}
			if !l.IsBlank() {
				if len(acc) == 0 {
					start = pos
				}
				acc = append(acc, l)
			} else if len(acc) > 0 {
				emit()
			}
		}
		// A run that reaches the edge of the board has no blank after it.
		if len(acc) > 0 {
			emit()
		}
	}
	return words
}
