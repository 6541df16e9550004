package game

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/lettergrid/config"
	"github.com/domino14/lettergrid/tilemapping"
)

var ErrInvalidRules = errors.New("invalid rules")

// BagEntry says how many copies of Letters[LetterIndex] start in the reserve.
type BagEntry struct {
	LetterIndex int `yaml:"letter"`
	Count       int `yaml:"count"`
}

// LetterSpec is a letter as written in a rules file.
type LetterSpec struct {
	Symbol string `yaml:"symbol"`
	Value  int    `yaml:"value"`
}

// Rules is everything needed to set up a session: the board size, the
// hand size, and what goes in the reserve.
type Rules struct {
	Width       int
	Height      int
	HandSize    int
	Letters     []tilemapping.Letter
	StartingBag []BagEntry
}

type rulesFile struct {
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	HandSize     int          `yaml:"hand_size"`
	Distribution string       `yaml:"distribution"`
	Letters      []LetterSpec `yaml:"letters"`
	StartingBag  []BagEntry   `yaml:"starting_bag"`
}

// RulesFromDistribution builds rules whose reserve is a full bag of the
// given distribution.
func RulesFromDistribution(width, height, handSize int, ld *tilemapping.LetterDistribution) *Rules {
	entries := ld.Entries()
	return &Rules{
		Width:    width,
		Height:   height,
		HandSize: handSize,
		Letters:  ld.Letters(),
		StartingBag: lo.Map(entries, func(e tilemapping.DistributionEntry, i int) BagEntry {
			return BagEntry{LetterIndex: i, Count: e.Count}
		}),
	}
}

// RulesFromConfig loads the rules file named in the config if there is one.
// Otherwise the rules come from the board, hand and distribution settings.
func RulesFromConfig(cfg *config.Config) (*Rules, error) {
	if path := cfg.GetString(config.ConfigRulesFile); path != "" {
		return LoadRulesFile(path, cfg.GetString(config.ConfigDataPath))
	}
	ld, err := tilemapping.Get(cfg, cfg.GetString(config.ConfigDefaultLetterDistribution))
	if err != nil {
		return nil, err
	}
	r := RulesFromDistribution(cfg.GetInt(config.ConfigBoardWidth),
		cfg.GetInt(config.ConfigBoardHeight), cfg.GetInt(config.ConfigHandSize), ld)
	return r, r.Validate()
}

// LoadRulesFile reads YAML rules from path. A rules file may name a
// distribution (looked up under dataPath) instead of listing letters.
func LoadRulesFile(path, dataPath string) (*Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := LoadRules(f, dataPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("letters", len(r.Letters)).Msg("loaded rules file")
	return r, nil
}

// LoadRules parses YAML rules. Missing dimensions default to 20x20 with a
// hand of 21.
func LoadRules(data io.Reader, dataPath string) (*Rules, error) {
	rf := rulesFile{Width: 20, Height: 20, HandSize: 21}
	if err := yaml.NewDecoder(data).Decode(&rf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}
	if rf.Distribution != "" {
		if len(rf.Letters) > 0 {
			return nil, fmt.Errorf("%w: give either a distribution or a letter list, not both",
				ErrInvalidRules)
		}
		ld, err := tilemapping.NamedLetterDistribution(dataPath, rf.Distribution)
		if err != nil {
			return nil, err
		}
		r := RulesFromDistribution(rf.Width, rf.Height, rf.HandSize, ld)
		return r, r.Validate()
	}
	letters := make([]tilemapping.Letter, len(rf.Letters))
	for i, ls := range rf.Letters {
		l, err := tilemapping.NewLetter(ls.Symbol, ls.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: letter %d: %w", ErrInvalidRules, i, err)
		}
		if l.IsBlank() {
			return nil, fmt.Errorf("%w: letter %d has an empty symbol", ErrInvalidRules, i)
		}
		letters[i] = l
	}
	r := &Rules{
		Width:       rf.Width,
		Height:      rf.Height,
		HandSize:    rf.HandSize,
		Letters:     letters,
		StartingBag: rf.StartingBag,
	}
	return r, r.Validate()
}

// Validate rejects rules no session could be built from.
func (r *Rules) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: board dimensions must be positive, got %dx%d",
			ErrInvalidRules, r.Width, r.Height)
	}
	if r.HandSize <= 0 {
		return fmt.Errorf("%w: hand size must be positive, got %d", ErrInvalidRules, r.HandSize)
	}
	for _, e := range r.StartingBag {
		if e.Count < 0 {
			return fmt.Errorf("%w: negative count %d for letter %d", ErrInvalidRules,
				e.Count, e.LetterIndex)
		}
	}
	return nil
}

// ExpandedBagContents lists every tile the reserve starts with. Entries
// that point at a letter that does not exist are skipped.
func (r *Rules) ExpandedBagContents() []tilemapping.Letter {
	result := []tilemapping.Letter{}
	for _, e := range r.StartingBag {
		if e.LetterIndex < 0 || e.LetterIndex >= len(r.Letters) {
			log.Warn().Int("letter-index", e.LetterIndex).Msg("starting bag entry has no such letter; skipping")
			continue
		}
		for i := 0; i < e.Count; i++ {
			result = append(result, r.Letters[e.LetterIndex])
		}
	}
	return result
}
