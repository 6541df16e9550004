package board

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lettergrid/tilemapping"
)

var boardPlaintextRegex = regexp.MustCompile(`\|(.*)\|`)

// ToDisplayText renders the board as a text grid with 0-based column and
// row numbers, the same coordinates Get and Set use.
func (b *BoardState) ToDisplayText() string {
	cw := 1
	for _, l := range b.cells {
		if n := utf8.RuneCountInString(l.Symbol); n > cw {
			cw = n
		}
	}
	var sb strings.Builder
	sb.WriteString("\n   ")
	for x := 0; x < b.width; x++ {
		fmt.Fprintf(&sb, "%-*d ", cw, x%10)
	}
	sb.WriteString("\n   " + strings.Repeat("-", b.width*(cw+1)) + "\n")
	for y := 0; y < b.height; y++ {
		fmt.Fprintf(&sb, "%2d|", y)
		for x := 0; x < b.width; x++ {
			l := b.cells[y*b.width+x]
			sym := string(tilemapping.ASCIIEmpty)
			if !l.IsBlank() {
				sym = l.Symbol
			}
			sb.WriteString(sym + strings.Repeat(" ", cw-utf8.RuneCountInString(sym)+1))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", b.width*(cw+1)) + "\n")
	return sb.String()
}

// SetRow sets row y to the given letters, one rune per cell, starting at
// column 0. Spaces and '.' leave a blank cell. Letter values are looked up
// in the distribution. Cells past the end of letters are cleared.
// It returns the letters that were placed.
func (b *BoardState) SetRow(y int, letters string, ld *tilemapping.LetterDistribution) ([]tilemapping.Letter, error) {
	if y < 0 || y >= b.height {
		return nil, fmt.Errorf("%w: row %d on a board of height %d", ErrOutOfBounds, y, b.height)
	}
	if utf8.RuneCountInString(letters) > b.width {
		return nil, fmt.Errorf("%w: row %q is wider than the board (%d)",
			ErrInvalidArgument, letters, b.width)
	}
	for x := 0; x < b.width; x++ {
		if err := b.Set(x, y, tilemapping.Blank); err != nil {
			return nil, err
		}
	}
	placed := []tilemapping.Letter{}
	x := 0
	for _, r := range letters {
		if r != ' ' && r != tilemapping.ASCIIEmpty {
			sym := string(r)
			letter, err := tilemapping.NewLetter(sym, ld.Score(strings.ToUpper(sym)))
			if err != nil {
				return nil, err
			}
			if err := b.Set(x, y, letter); err != nil {
				return nil, err
			}
			placed = append(placed, letter)
		}
		x++
	}
	return placed, nil
}

// SetFromPlaintext clears the board and fills it from a text board in which
// every row is wrapped in pipes, e.g. "|C A T|". Characters at odd offsets
// inside the pipes are spacing and are ignored, so a row of a board
// printed with ToDisplayText can be pasted back in.
// It returns all the letters that were placed.
func (b *BoardState) SetFromPlaintext(text string, ld *tilemapping.LetterDistribution) ([]tilemapping.Letter, error) {
	result := boardPlaintextRegex.FindAllStringSubmatch(text, -1)
	if len(result) != b.height {
		return nil, fmt.Errorf("%w: plaintext board has %d rows, board has %d",
			ErrInvalidArgument, len(result), b.height)
	}
	b.Clear()
	played := []tilemapping.Letter{}
	for y := range result {
		var row strings.Builder
		j := -1
		for _, ch := range result[y][1] {
			j++
			if j%2 != 0 {
				continue
			}
			row.WriteRune(ch)
		}
		placed, err := b.SetRow(y, strings.TrimRight(row.String(), " "), ld)
		if err != nil {
			return nil, err
		}
		played = append(played, placed...)
	}
	return played, nil
}

// Equals checks the boards for equality. Two boards are equal if they have
// the same dimensions and every cell holds the same letter.
func (b *BoardState) Equals(b2 *BoardState) bool {
	if b.width != b2.width || b.height != b2.height {
		log.Debug().Msgf("Dims don't match: %vx%v %vx%v", b.width, b.height, b2.width, b2.height)
		return false
	}
	if b.tilesPlayed != b2.tilesPlayed {
		log.Debug().Msgf("Tiles played don't match: %v %v", b.tilesPlayed, b2.tilesPlayed)
		return false
	}
	for i := range b.cells {
		if b.cells[i] != b2.cells[i] {
			log.Debug().Msgf("> Not equal, x %v y %v", i%b.width, i/b.width)
			return false
		}
	}
	return true
}

// Fingerprint hashes the dimensions and contents of the board. Equal boards
// have equal fingerprints.
func (b *BoardState) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	writeInt(b.width)
	writeInt(b.height)
	for _, l := range b.cells {
		writeInt(len(l.Symbol))
		h.Write([]byte(l.Symbol))
		writeInt(l.BaseValue)
	}
	return h.Sum64()
}
