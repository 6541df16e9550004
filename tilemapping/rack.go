package tilemapping

import (
	"fmt"

	"github.com/samber/lo"
)

// Rack is the set of tiles a player holds and has not placed yet. Unlike a
// bag, a rack keeps its tiles in order so a tile can be addressed by index.
type Rack struct {
	tiles []Letter
}

// NewRack creates an empty rack.
func NewRack() *Rack {
	return &Rack{tiles: []Letter{}}
}

// RackFromLetters creates a rack holding a copy of the given letters.
func RackFromLetters(letters []Letter) *Rack {
	r := NewRack()
	r.Set(letters)
	return r
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return UserVisible(r.tiles)
}

// Copy returns a deep copy of this rack
func (r *Rack) Copy() *Rack {
	return RackFromLetters(r.tiles)
}

// Set sets the rack from a list of letters
func (r *Rack) Set(letters []Letter) {
	r.tiles = append(r.tiles[:0], letters...)
}

func (r *Rack) Clear() {
	r.tiles = r.tiles[:0]
}

// Add appends a tile to the end of the rack.
func (r *Rack) Add(letters ...Letter) {
	r.tiles = append(r.tiles, letters...)
}

// Take removes and returns the tile at idx. Later tiles shift down by one.
func (r *Rack) Take(idx int) (Letter, error) {
	if idx < 0 || idx >= len(r.tiles) {
		return Blank, fmt.Errorf("%w: rack index %d, rack has %d tiles",
			ErrInvalidArgument, idx, len(r.tiles))
	}
	l := r.tiles[idx]
	r.tiles = append(r.tiles[:idx], r.tiles[idx+1:]...)
	return l, nil
}

// At returns the tile at idx without removing it.
func (r *Rack) At(idx int) (Letter, bool) {
	if idx < 0 || idx >= len(r.tiles) {
		return Blank, false
	}
	return r.tiles[idx], true
}

// TakeAll empties the rack, returning what it held.
func (r *Rack) TakeAll() []Letter {
	all := r.TilesOn()
	r.Clear()
	return all
}

func (r *Rack) Has(letter Letter) bool {
	return lo.Contains(r.tiles, letter)
}

func (r *Rack) CountOf(letter Letter) int {
	return lo.Count(r.tiles, letter)
}

// TilesOn returns a copy of the tiles on this rack, in order.
func (r *Rack) TilesOn() []Letter {
	ret := make([]Letter, len(r.tiles))
	copy(ret, r.tiles)
	return ret
}

func (r *Rack) NumTiles() int {
	return len(r.tiles)
}

// ScoreOn is the total value of the tiles on the rack.
func (r *Rack) ScoreOn() int {
	return lo.SumBy(r.tiles, func(l Letter) int { return l.Score() })
}
