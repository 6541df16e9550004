package tilemapping

import (
	"errors"
	"fmt"

	"lukechampine.com/frand"
)

var ErrBagExhausted = errors.New("not enough tiles in bag")

// A Bag is the bag o'tiles! Tiles are drawn from it uniformly at random.
type Bag struct {
	tiles        []Letter
	initialTiles []Letter
	randSource   *frand.RNG
}

// NewBag creates a bag holding the given tiles.
func NewBag(tiles []Letter) *Bag {
	b := &Bag{
		tiles:        make([]Letter, len(tiles)),
		initialTiles: make([]Letter, len(tiles)),
		randSource:   frand.New(),
	}
	copy(b.tiles, tiles)
	copy(b.initialTiles, tiles)
	return b
}

// SetRandSource replaces the bag's random source; use a seeded
// frand.NewCustom source for reproducible draws.
func (b *Bag) SetRandSource(rng *frand.RNG) {
	b.randSource = rng
}

// Shuffle shuffles the tiles in the bag.
func (b *Bag) Shuffle() {
	b.randSource.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Refill puts every tile the bag started with back into it.
func (b *Bag) Refill() {
	b.tiles = append(b.tiles[:0], b.initialTiles...)
	b.Shuffle()
}

// Draw draws n tiles from the bag.
func (b *Bag) Draw(n int) ([]Letter, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: cannot draw %d tiles", ErrInvalidArgument, n)
	}
	if n > len(b.tiles) {
		return nil, fmt.Errorf("%w: tried to draw %v tiles, tile bag has %v",
			ErrBagExhausted, n, len(b.tiles))
	}
	drawn := make([]Letter, n)
	for i := 0; i < n; i++ {
		drawn[i] = b.pull()
	}
	return drawn, nil
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if there
// are fewer tiles than n, and even draw no tiles at all :o
func (b *Bag) DrawAtMost(n int) []Letter {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	if n <= 0 {
		return nil
	}
	drawn, _ := b.Draw(n)
	return drawn
}

func (b *Bag) pull() Letter {
	idx := b.randSource.Intn(len(b.tiles))
	last := len(b.tiles) - 1
	t := b.tiles[idx]
	b.tiles[idx] = b.tiles[last]
	b.tiles = b.tiles[:last]
	return t
}

// PutBack puts the tiles back in the bag.
func (b *Bag) PutBack(letters []Letter) {
	b.tiles = append(b.tiles, letters...)
}

// TilesRemaining is how many tiles are left to draw.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Peek returns a copy of the tiles still in the bag, in no particular order.
func (b *Bag) Peek() []Letter {
	ret := make([]Letter, len(b.tiles))
	copy(ret, b.tiles)
	return ret
}
