package shell

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/lettergrid/config"
	"github.com/domino14/lettergrid/game"
	"github.com/domino14/lettergrid/scoring"
	"github.com/domino14/lettergrid/stats"
	"github.com/domino14/lettergrid/tilemapping"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

// intArgs parses exactly n integer arguments.
func intArgs(cmd *shellcmd, n int, usage string) ([]int, error) {
	if len(cmd.args) != n {
		return nil, errors.New("usage: " + usage)
	}
	ret := make([]int, n)
	for i, a := range cmd.args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("usage: %s (%q is not a number)", usage, a)
		}
		ret[i] = v
	}
	return ret, nil
}

func seededRNG(seed int) *frand.RNG {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint64(buf, uint64(seed))
	return frand.NewCustom(buf, 1024, 12)
}

func (sc *ShellController) newSession(cmd *shellcmd) (*Response, error) {
	rules, err := game.RulesFromConfig(sc.config)
	if err != nil {
		return nil, err
	}
	if rules.Width, err = cmd.options.IntDefault("width", rules.Width); err != nil {
		return nil, err
	}
	if rules.Height, err = cmd.options.IntDefault("height", rules.Height); err != nil {
		return nil, err
	}
	if rules.HandSize, err = cmd.options.IntDefault("handsize", rules.HandSize); err != nil {
		return nil, err
	}
	if path := cmd.options.String("rules"); path != "" {
		rules, err = game.LoadRulesFile(path, sc.config.GetString(config.ConfigDataPath))
		if err != nil {
			return nil, err
		}
	}
	var opts []game.SessionOption
	if _, ok := cmd.options["seed"]; ok {
		seed, err := cmd.options.Int("seed")
		if err != nil {
			return nil, err
		}
		opts = append(opts, game.WithRandSource(seededRNG(seed)))
	}
	session, err := game.NewSession(rules, opts...)
	if err != nil {
		return nil, err
	}
	sc.session = session
	return msg(fmt.Sprintf("New %dx%d board, hand size %d, %d tiles in reserve",
		rules.Width, rules.Height, rules.HandSize, session.ReserveCount())), nil
}

func (sc *ShellController) handText() string {
	hand := sc.session.Hand()
	if len(hand) == 0 {
		return "Hand: (empty)"
	}
	parts := lo.Map(hand, func(l tilemapping.Letter, i int) string {
		return fmt.Sprintf("%d:%s", i, l)
	})
	return "Hand: " + strings.Join(parts, " ")
}

func (sc *ShellController) draw(cmd *shellcmd) (*Response, error) {
	drawn := sc.session.DrawHand()
	out := fmt.Sprintf("Drew %d: %s\n%s", len(drawn), tilemapping.UserVisible(drawn), sc.handText())
	return msg(out), nil
}

func (sc *ShellController) discard(cmd *shellcmd) (*Response, error) {
	discarded := sc.session.DiscardHand()
	return msg(fmt.Sprintf("Discarded %d: %s", len(discarded),
		tilemapping.UserVisible(discarded))), nil
}

func (sc *ShellController) hand(cmd *shellcmd) (*Response, error) {
	return msg(sc.handText()), nil
}

func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	a, err := intArgs(cmd, 3, "place <hand-index> <x> <y>")
	if err != nil {
		return nil, err
	}
	l, err := sc.session.PlaceFromHand(a[0], a[1], a[2])
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Placed %s at (%d, %d)", l, a[1], a[2])), nil
}

func (sc *ShellController) lift(cmd *shellcmd) (*Response, error) {
	a, err := intArgs(cmd, 2, "lift <x> <y>")
	if err != nil {
		return nil, err
	}
	l, err := sc.session.LiftToHand(a[0], a[1])
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Lifted %s from (%d, %d)", l, a[0], a[1])), nil
}

func (sc *ShellController) move(cmd *shellcmd) (*Response, error) {
	a, err := intArgs(cmd, 4, "move <x1> <y1> <x2> <y2>")
	if err != nil {
		return nil, err
	}
	l, err := sc.session.MoveOnBoard(a[0], a[1], a[2], a[3])
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Moved %s from (%d, %d) to (%d, %d)", l, a[0], a[1], a[2], a[3])), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	const usage = "set <x> <y> <symbol> <value>"
	if len(cmd.args) != 4 {
		return nil, errors.New("usage: " + usage)
	}
	coords, err := intArgs(&shellcmd{args: cmd.args[:2]}, 2, usage)
	if err != nil {
		return nil, err
	}
	value, err := strconv.Atoi(cmd.args[3])
	if err != nil {
		return nil, fmt.Errorf("usage: %s (%q is not a number)", usage, cmd.args[3])
	}
	l, err := tilemapping.NewLetter(cmd.args[2], value)
	if err != nil {
		return nil, err
	}
	if err := sc.session.SetCell(coords[0], coords[1], l); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Set (%d, %d) to %s", coords[0], coords[1], l)), nil
}

func (sc *ShellController) clear(cmd *shellcmd) (*Response, error) {
	sc.session.ClearBoard()
	return msg("Board cleared"), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	sb.WriteString(sc.session.Board().ToDisplayText())
	sb.WriteString(sc.handText())
	fmt.Fprintf(&sb, "\nReserve: %d  Score: %d", sc.session.ReserveCount(), sc.session.Score())
	return msg(sb.String()), nil
}

func (sc *ShellController) words(cmd *shellcmd) (*Response, error) {
	r := sc.session.Breakdown()
	if len(r.Words) == 0 {
		return msg("No words on the board"), nil
	}
	lines := lo.Map(r.Words, func(w scoring.ScoredWord, _ int) string {
		return fmt.Sprintf("%-12s %-13s (%d, %d)", w.Word, w.Direction, w.X, w.Y)
	})
	return msg(strings.Join(lines, "\n")), nil
}

type wordJSON struct {
	Word      string `json:"word"`
	Direction string `json:"direction"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Score     int    `json:"score"`
}

type scoreJSON struct {
	Total int        `json:"total"`
	Words []wordJSON `json:"words"`
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	r := sc.session.Breakdown()
	switch cmd.options.String("format") {
	case "", "text":
		return msg(strings.TrimRight(r.ToDisplayText(), "\n")), nil
	case "json":
		out := scoreJSON{
			Total: r.Total,
			Words: lo.Map(r.Words, func(w scoring.ScoredWord, _ int) wordJSON {
				return wordJSON{
					Word:      w.String(),
					Direction: strings.Trim(w.Direction.String(), "()"),
					X:         w.X,
					Y:         w.Y,
					Score:     w.Score,
				}
			}),
		}
		bts, err := json.Marshal(out)
		if err != nil {
			return nil, err
		}
		return msg(string(bts)), nil
	default:
		return nil, errors.New("format must be text or json")
	}
}

func (sc *ShellController) bag(cmd *shellcmd) (*Response, error) {
	bins, err := cmd.options.IntDefault("bins", 0)
	if err != nil {
		return nil, err
	}
	letters := sc.session.ReserveLetters()
	counts := lo.CountValuesBy(letters, func(l tilemapping.Letter) string {
		return l.Symbol
	})
	symbols := lo.Keys(counts)
	sort.Strings(symbols)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d tiles in reserve\n", len(letters))
	for _, s := range symbols {
		fmt.Fprintf(&sb, "%s:%d ", s, counts[s])
	}
	values := lo.Map(letters, func(l tilemapping.Letter, _ int) float64 {
		return float64(l.BaseValue)
	})
	fmt.Fprintf(&sb, "\nValues: %s", stats.Summarize(values))
	if bins > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(stats.HistogramString(values, bins), "\n"))
	}
	log.Debug().Int("reserve", len(letters)).Msg("bag")
	return msg(sb.String()), nil
}
