package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lettergrid/tilemapping"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfBounds     = errors.New("coordinates out of bounds")
)

type BoardDirection uint8

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "(horizontal)"
	} else if bd == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

const (
	HorizontalDirection BoardDirection = iota
	VerticalDirection
)

// A BoardState is the grid of letters placed so far. It is the only thing
// that knows which cell holds which letter. Cells are addressed by (x, y)
// with x the column and y the row; (0, 0) is the top-left cell.
//
// Every cell always holds a letter. An empty cell holds tilemapping.Blank.
// The board never checks whether a cell is occupied before writing to it;
// callers that want non-destructive placement check IsEmptyAt first.
type BoardState struct {
	cells       []tilemapping.Letter
	width       int
	height      int
	tilesPlayed int
}

// New creates an empty board of the given dimensions.
func New(width, height int) (*BoardState, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board dimensions must be positive, got %dx%d",
			ErrInvalidArgument, width, height)
	}
	b := &BoardState{
		cells:  make([]tilemapping.Letter, width*height),
		width:  width,
		height: height,
	}
	log.Debug().Int("width", width).Int("height", height).Msg("board initialized")
	return b, nil
}

func (b *BoardState) Width() int {
	return b.width
}

func (b *BoardState) Height() int {
	return b.height
}

func (b *BoardState) posExists(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *BoardState) index(x, y int) (int, error) {
	if !b.posExists(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d) on a %dx%d board",
			ErrOutOfBounds, x, y, b.width, b.height)
	}
	return y*b.width + x, nil
}

// Get returns the letter at (x, y).
func (b *BoardState) Get(x, y int) (tilemapping.Letter, error) {
	idx, err := b.index(x, y)
	if err != nil {
		return tilemapping.Blank, err
	}
	return b.cells[idx], nil
}

// Set overwrites the letter at (x, y), whatever was there before.
func (b *BoardState) Set(x, y int, letter tilemapping.Letter) error {
	idx, err := b.index(x, y)
	if err != nil {
		return err
	}
	wasBlank := b.cells[idx].IsBlank()
	b.cells[idx] = letter
	switch {
	case wasBlank && !letter.IsBlank():
		b.tilesPlayed++
	case !wasBlank && letter.IsBlank():
		b.tilesPlayed--
	}
	return nil
}

// IsEmptyAt returns whether the cell at (x, y) holds the blank letter.
func (b *BoardState) IsEmptyAt(x, y int) (bool, error) {
	l, err := b.Get(x, y)
	if err != nil {
		return false, err
	}
	return l.IsBlank(), nil
}

// Clear clears the board.
func (b *BoardState) Clear() {
	for i := range b.cells {
		b.cells[i] = tilemapping.Blank
	}
	b.tilesPlayed = 0
}

// IsEmpty returns if the board is empty.
func (b *BoardState) IsEmpty() bool {
	return b.tilesPlayed == 0
}

// TilesPlayed is the number of non-blank cells.
func (b *BoardState) TilesPlayed() int {
	return b.tilesPlayed
}

// Copy returns a deep copy of the board.
func (b *BoardState) Copy() *BoardState {
	n := &BoardState{
		cells:       make([]tilemapping.Letter, len(b.cells)),
		width:       b.width,
		height:      b.height,
		tilesPlayed: b.tilesPlayed,
	}
	copy(n.cells, b.cells)
	return n
}

// CopyFrom copies the contents of other into b. Both boards must have the
// same dimensions.
func (b *BoardState) CopyFrom(other *BoardState) error {
	if b.width != other.width || b.height != other.height {
		return fmt.Errorf("%w: cannot copy a %dx%d board into a %dx%d board",
			ErrInvalidArgument, other.width, other.height, b.width, b.height)
	}
	copy(b.cells, other.cells)
	b.tilesPlayed = other.tilesPlayed
	return nil
}

// Row returns a copy of row y, left to right. It panics if y is out of range;
// iterate from 0 to Height()-1.
func (b *BoardState) Row(y int) []tilemapping.Letter {
	if y < 0 || y >= b.height {
		panic(fmt.Sprintf("row %d out of range", y))
	}
	row := make([]tilemapping.Letter, b.width)
	copy(row, b.cells[y*b.width:(y+1)*b.width])
	return row
}

// Column returns a copy of column x, top to bottom. It panics if x is out
// of range; iterate from 0 to Width()-1.
func (b *BoardState) Column(x int) []tilemapping.Letter {
	if x < 0 || x >= b.width {
		panic(fmt.Sprintf("column %d out of range", x))
	}
	col := make([]tilemapping.Letter, b.height)
	for y := 0; y < b.height; y++ {
		col[y] = b.cells[y*b.width+x]
	}
	return col
}
