package tilemapping

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

//go:embed letterdistributions/english.csv
var englishCSV []byte

// DistributionEntry is how many copies of a letter start in the bag.
type DistributionEntry struct {
	Letter Letter
	Count  int
}

// LetterDistribution encodes the tile distribution for the relevant game.
type LetterDistribution struct {
	Name       string
	Vowels     []Letter
	entries    []DistributionEntry
	numLetters int
}

// ScanLetterDistribution reads a distribution in CSV form. Each record is
// letter,quantity,value and an optional fourth vowel column (1 or 0).
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = -1
	entries := []DistributionEntry{}
	vowels := []Letter{}
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if len(record) < 3 {
			return nil, fmt.Errorf("%w: line %d: expected letter,quantity,value",
				ErrInvalidArgument, line)
		}
		if strings.TrimSpace(record[0]) == "" {
			return nil, fmt.Errorf("%w: line %d: empty letter", ErrInvalidArgument, line)
		}
		n, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: line %d: negative quantity", ErrInvalidArgument, line)
		}
		p, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		letter, err := NewLetter(record[0], p)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) > 3 && strings.TrimSpace(record[3]) == "1" {
			vowels = append(vowels, letter)
		}
		entries = append(entries, DistributionEntry{Letter: letter, Count: n})
	}
	return newLetterDistribution(entries, vowels), nil
}

func newLetterDistribution(entries []DistributionEntry, vowels []Letter) *LetterDistribution {
	return &LetterDistribution{
		entries: entries,
		Vowels:  vowels,
		numLetters: lo.SumBy(entries, func(e DistributionEntry) int {
			return e.Count
		}),
	}
}

// EnglishLetterDistribution returns the built-in English distribution. It
// has no blank tiles, since a tile with an empty symbol would be
// indistinguishable from an empty cell.
func EnglishLetterDistribution() *LetterDistribution {
	ld, err := ScanLetterDistribution(bytes.NewReader(englishCSV))
	if err != nil {
		panic("embedded english distribution is broken: " + err.Error())
	}
	ld.Name = "english"
	return ld
}

// NamedLetterDistribution loads <dataPath>/letterdistributions/<name>.csv.
// The english distribution is built in and is used when no such file exists.
func NamedLetterDistribution(dataPath, name string) (*LetterDistribution, error) {
	name = strings.ToLower(name)
	path := filepath.Join(dataPath, "letterdistributions", name+".csv")
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && name == "english" {
			log.Debug().Str("path", path).Msg("using built-in english distribution")
			return EnglishLetterDistribution(), nil
		}
		return nil, err
	}
	defer f.Close()
	ld, err := ScanLetterDistribution(f)
	if err != nil {
		return nil, fmt.Errorf("distribution %s: %w", name, err)
	}
	ld.Name = name
	log.Debug().Str("name", name).Int("tiles", ld.numLetters).Msg("loaded letter distribution")
	return ld, nil
}

// Entries returns the distribution in file order.
func (ld *LetterDistribution) Entries() []DistributionEntry {
	return ld.entries
}

// Letters returns each distinct letter once, in file order.
func (ld *LetterDistribution) Letters() []Letter {
	return lo.Map(ld.entries, func(e DistributionEntry, _ int) Letter {
		return e.Letter
	})
}

// NumTotalLetters is the number of tiles in a full bag.
func (ld *LetterDistribution) NumTotalLetters() int {
	return ld.numLetters
}

// ExpandedBagContents returns every tile of a full bag, one Letter per tile.
func (ld *LetterDistribution) ExpandedBagContents() []Letter {
	return lo.FlatMap(ld.entries, func(e DistributionEntry, _ int) []Letter {
		return lo.Times(e.Count, func(int) Letter { return e.Letter })
	})
}

// Score returns the value of the letter with the given symbol, or 0 if the
// distribution has no such letter.
func (ld *LetterDistribution) Score(symbol string) int {
	e, ok := lo.Find(ld.entries, func(e DistributionEntry) bool {
		return e.Letter.Symbol == symbol
	})
	if !ok {
		return 0
	}
	return e.Letter.BaseValue
}

// MakeBag returns a shuffled bag of tiles.
func (ld *LetterDistribution) MakeBag() *Bag {
	b := NewBag(ld.ExpandedBagContents())
	b.Shuffle()
	return b
}
