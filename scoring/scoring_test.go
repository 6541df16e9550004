package scoring

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lettergrid/board"
	"github.com/domino14/lettergrid/tilemapping"
)

func boardFrom(t *testing.T, w, h int, sample board.SampleBoard) *board.BoardState {
	t.Helper()
	b, err := board.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.SetFromPlaintext(string(sample), tilemapping.EnglishLetterDistribution()); err != nil {
		t.Fatal(err)
	}
	return b
}

type wordtest struct {
	word  string
	dir   board.BoardDirection
	x, y  int
	score int
}

func checkWords(t *testing.T, got []Word, expected []wordtest) {
	t.Helper()
	if !assert.Len(t, got, len(expected)) {
		return
	}
	for i, w := range got {
		assert.Equal(t, expected[i].word, w.String(), "word %d", i)
		assert.Equal(t, expected[i].dir, w.Direction, "word %d", i)
		assert.Equal(t, expected[i].x, w.X, "word %d", i)
		assert.Equal(t, expected[i].y, w.Y, "word %d", i)
		assert.Equal(t, expected[i].score, WordScore(w), "word %d", i)
	}
}

func TestEmptyBoardScoresZero(t *testing.T) {
	is := is.New(t)
	for _, dims := range [][2]int{{1, 1}, {3, 1}, {15, 15}, {20, 20}} {
		b, err := board.New(dims[0], dims[1])
		is.NoErr(err)
		is.Equal(len(Scan(b)), 0)
		is.Equal(Score(b), 0)
	}
}

func TestCatRow(t *testing.T) {
	is := is.New(t)
	b, err := board.New(3, 1)
	is.NoErr(err)
	is.NoErr(b.Set(0, 0, tilemapping.Letter{Symbol: "C", BaseValue: 3}))
	is.NoErr(b.Set(1, 0, tilemapping.Letter{Symbol: "A", BaseValue: 1}))
	is.NoErr(b.Set(2, 0, tilemapping.Letter{Symbol: "T", BaseValue: 1}))

	checkWords(t, ScanDirection(b, board.HorizontalDirection), []wordtest{
		{"CAT", board.HorizontalDirection, 0, 0, 5},
	})
	checkWords(t, ScanDirection(b, board.VerticalDirection), []wordtest{
		{"C", board.VerticalDirection, 0, 0, 3},
		{"A", board.VerticalDirection, 1, 0, 1},
		{"T", board.VerticalDirection, 2, 0, 1},
	})
	is.Equal(Score(b), 10)

	// Same thing from the sample board.
	is.Equal(Score(boardFrom(t, 3, 1, board.CatRow)), 10)
}

func TestSingleTileCountsTwice(t *testing.T) {
	is := is.New(t)
	for _, pos := range [][2]int{{0, 0}, {4, 4}, {2, 3}, {4, 0}} {
		b, err := board.New(5, 5)
		is.NoErr(err)
		q := tilemapping.Letter{Symbol: "Q", BaseValue: 10}
		is.NoErr(b.Set(pos[0], pos[1], q))

		checkWords(t, Scan(b), []wordtest{
			{"Q", board.HorizontalDirection, pos[0], pos[1], 10},
			{"Q", board.VerticalDirection, pos[0], pos[1], 10},
		})
		is.Equal(Score(b), 20)
	}
}

func TestFullRow(t *testing.T) {
	is := is.New(t)
	values := []int{1, 2, 3, 4, 5, 6, 7}
	b, err := board.New(len(values), 4)
	is.NoErr(err)
	for x, v := range values {
		is.NoErr(b.Set(x, 2, tilemapping.Letter{Symbol: string(rune('A' + x)), BaseValue: v}))
	}

	horiz := ScanDirection(b, board.HorizontalDirection)
	is.Equal(len(horiz), 1)
	is.Equal(horiz[0].Len(), len(values))
	is.Equal(WordScore(horiz[0]), 28)

	vert := ScanDirection(b, board.VerticalDirection)
	is.Equal(len(vert), len(values))
	for x, w := range vert {
		is.Equal(w.Len(), 1)
		is.Equal(w.X, x)
		is.Equal(w.Y, 2)
		is.Equal(WordScore(w), values[x])
	}
	is.Equal(Score(b), 56)
}

func TestCrossing(t *testing.T) {
	b := boardFrom(t, 5, 5, board.Crossing)

	checkWords(t, Scan(b), []wordtest{
		{"Q", board.HorizontalDirection, 4, 0, 10},
		{"HOUSE", board.HorizontalDirection, 0, 2, 8},
		{"A", board.HorizontalDirection, 0, 3, 1},
		{"T", board.HorizontalDirection, 0, 4, 1},
		{"HAT", board.VerticalDirection, 0, 2, 6},
		{"O", board.VerticalDirection, 1, 2, 1},
		{"U", board.VerticalDirection, 2, 2, 1},
		{"S", board.VerticalDirection, 3, 2, 1},
		{"Q", board.VerticalDirection, 4, 0, 10},
		{"E", board.VerticalDirection, 4, 2, 1},
	})
	assert.Equal(t, 40, Score(b))
}

func TestGappy(t *testing.T) {
	b := boardFrom(t, 6, 3, board.Gappy)

	// Runs that end at the right or bottom edge are flushed exactly once.
	checkWords(t, Scan(b), []wordtest{
		{"DO", board.HorizontalDirection, 0, 0, 3},
		{"Z", board.HorizontalDirection, 5, 0, 10},
		{"JAX", board.HorizontalDirection, 3, 1, 17},
		{"O", board.HorizontalDirection, 1, 2, 1},
		{"E", board.HorizontalDirection, 5, 2, 1},
		{"D", board.VerticalDirection, 0, 0, 2},
		{"O", board.VerticalDirection, 1, 0, 1},
		{"O", board.VerticalDirection, 1, 2, 1},
		{"J", board.VerticalDirection, 3, 1, 8},
		{"A", board.VerticalDirection, 4, 1, 1},
		{"ZXE", board.VerticalDirection, 5, 0, 19},
	})
	assert.Equal(t, 64, Score(b))
}

func TestScoreIsRepeatable(t *testing.T) {
	is := is.New(t)
	b := boardFrom(t, 5, 5, board.Crossing)
	fp := b.Fingerprint()
	first := Score(b)
	for i := 0; i < 5; i++ {
		is.Equal(Score(b), first)
	}
	// Scoring does not touch the board.
	is.Equal(b.Fingerprint(), fp)

	b.Clear()
	is.Equal(Score(b), 0)
}

func TestBreakdown(t *testing.T) {
	is := is.New(t)
	b := boardFrom(t, 3, 1, board.CatRow)

	r := Breakdown(b)
	is.Equal(r.Total, Score(b))
	is.Equal(len(r.Words), 4)
	is.Equal(r.Words[0].Score, 5)
	is.Equal(r.Words[0].String(), "CAT")

	text := r.ToDisplayText()
	is.True(strings.Contains(text, "CAT"))
	is.True(strings.HasSuffix(text, "Total: 10\n"))
}

func BenchmarkScoreFullBoard(b *testing.B) {
	bd, err := board.New(20, 20)
	if err != nil {
		b.Fatal(err)
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if (x+y)%3 != 0 {
				bd.Set(x, y, tilemapping.Letter{Symbol: "E", BaseValue: 1})
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Score(bd)
	}
}
