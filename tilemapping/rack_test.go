package tilemapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLetters(t *testing.T, word string) []Letter {
	t.Helper()
	ld := EnglishLetterDistribution()
	letters := []Letter{}
	for _, r := range word {
		l, err := NewLetter(string(r), ld.Score(string(r)))
		if err != nil {
			t.Fatal(err)
		}
		letters = append(letters, l)
	}
	return letters
}

func TestRackFromLetters(t *testing.T) {
	rack := RackFromLetters(testLetters(t, "AENPPSW"))

	assert.Equal(t, 7, rack.NumTiles())
	assert.Equal(t, "AENPPSW", rack.String())
	assert.Equal(t, 2, rack.CountOf(Letter{"P", 3}))
	assert.Equal(t, 14, rack.ScoreOn())
}

func TestRackTake(t *testing.T) {
	rack := RackFromLetters(testLetters(t, "AENPPSW"))

	l, err := rack.Take(3)
	assert.NoError(t, err)
	assert.Equal(t, Letter{"P", 3}, l)
	assert.Equal(t, "AENPSW", rack.String())

	_, err = rack.Take(6)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = rack.Take(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 6, rack.NumTiles())
}

func TestRackTakeAll(t *testing.T) {
	rack := RackFromLetters(testLetters(t, "AENPPSW"))

	all := rack.TakeAll()
	assert.Len(t, all, 7)
	assert.Equal(t, 0, rack.NumTiles())
	assert.False(t, rack.Has(Letter{"A", 1}))
}

func TestRackTakeAndAdd(t *testing.T) {
	rack := RackFromLetters(testLetters(t, "AENPPSW"))

	a, err := rack.Take(0)
	assert.NoError(t, err)
	rack.Add(a)

	assert.Equal(t, "ENPPSWA", rack.String())
	assert.True(t, rack.Has(Letter{"A", 1}))
}

func TestRackCopyIsIndependent(t *testing.T) {
	rack := RackFromLetters(testLetters(t, "CAT"))
	cp := rack.Copy()
	_, err := cp.Take(0)
	assert.NoError(t, err)
	assert.Equal(t, "CAT", rack.String())
	assert.Equal(t, "AT", cp.String())
}
