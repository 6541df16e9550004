package tilemapping

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var ErrInvalidArgument = errors.New("invalid argument")

// A Letter is a tile: a user-visible symbol and the points it is worth.
// The empty symbol is reserved to mean "no letter here"; a board cell
// without a tile holds the Blank letter.
type Letter struct {
	Symbol    string
	BaseValue int
}

// Blank is the letter held by every empty cell.
var Blank = Letter{}

// NewLetter creates a letter. The symbol is normalized (NFC, upper case) so
// that the same tile typed in different ways compares equal.
func NewLetter(symbol string, value int) (Letter, error) {
	if value < 0 {
		return Blank, fmt.Errorf("%w: letter %q has negative value %d",
			ErrInvalidArgument, symbol, value)
	}
	symbol = cases.Upper(language.Und).String(norm.NFC.String(strings.TrimSpace(symbol)))
	if symbol == "" && value != 0 {
		return Blank, fmt.Errorf("%w: blank letter cannot be worth %d points",
			ErrInvalidArgument, value)
	}
	return Letter{Symbol: symbol, BaseValue: value}, nil
}

// IsBlank returns true if this letter is the empty-cell sentinel.
func (l Letter) IsBlank() bool {
	return l.Symbol == ""
}

// Score is just the base value. There are no letter multipliers.
func (l Letter) Score() int {
	return l.BaseValue
}

func (l Letter) String() string {
	if l.IsBlank() {
		return "."
	}
	return fmt.Sprintf("%s(%d)", l.Symbol, l.BaseValue)
}

// UserVisible joins the symbols of the given letters. Blank letters
// show up as ASCIIEmpty.
func UserVisible(letters []Letter) string {
	var sb strings.Builder
	for _, l := range letters {
		if l.IsBlank() {
			sb.WriteRune(ASCIIEmpty)
			continue
		}
		sb.WriteString(l.Symbol)
	}
	return sb.String()
}

// ASCIIEmpty is how an empty cell is rendered in text output.
const ASCIIEmpty = '.'
