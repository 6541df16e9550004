package tilemapping

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"
)

func seededBag(ld *LetterDistribution) *Bag {
	bag := NewBag(ld.ExpandedBagContents())
	bag.SetRandSource(frand.NewCustom(make([]byte, 32), 1024, 12))
	return bag
}

func TestBag(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()
	is.Equal(bag.TilesRemaining(), ld.NumTotalLetters())

	tileMap := make(map[Letter]int)
	numTiles := ld.NumTotalLetters()
	for i := 0; i < numTiles; i++ {
		drawn, err := bag.Draw(1)
		is.NoErr(err)
		tileMap[drawn[0]]++
	}
	for _, e := range ld.Entries() {
		is.Equal(tileMap[e.Letter], e.Count)
	}
	_, err := bag.Draw(1)
	is.True(errors.Is(err, ErrBagExhausted))
}

func TestDraw(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	bag := seededBag(ld)
	drawn, err := bag.Draw(7)
	is.NoErr(err)
	is.Equal(len(drawn), 7)
	is.Equal(bag.TilesRemaining(), 91)
}

func TestDrawNegative(t *testing.T) {
	is := is.New(t)
	bag := seededBag(EnglishLetterDistribution())
	_, err := bag.Draw(-1)
	is.True(errors.Is(err, ErrInvalidArgument))
	is.Equal(bag.TilesRemaining(), 98)
}

func TestDrawAtMost(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	bag := seededBag(ld)
	for i := 0; i < 13; i++ {
		_, err := bag.Draw(7)
		is.NoErr(err)
	}
	is.Equal(bag.TilesRemaining(), 7)
	drawn := bag.DrawAtMost(9)
	is.Equal(len(drawn), 7)
	is.Equal(bag.TilesRemaining(), 0)

	// Try to draw one more time.
	drawn = bag.DrawAtMost(7)
	is.Equal(len(drawn), 0)
	is.Equal(bag.TilesRemaining(), 0)
}

func TestPutBackAndRefill(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	bag := seededBag(ld)
	drawn, err := bag.Draw(5)
	is.NoErr(err)
	bag.PutBack(drawn[:2])
	is.Equal(bag.TilesRemaining(), 95)

	bag.Refill()
	is.Equal(bag.TilesRemaining(), 98)
	is.Equal(len(bag.Peek()), 98)
}

func TestDrawConservesTiles(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	bag := seededBag(ld)
	drawn, err := bag.Draw(40)
	is.NoErr(err)

	counts := map[Letter]int{}
	for _, l := range append(drawn, bag.Peek()...) {
		counts[l]++
	}
	for _, e := range ld.Entries() {
		is.Equal(counts[e.Letter], e.Count)
	}
}
