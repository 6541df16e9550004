// Package game ties a board to the tiles that get placed on it. A Session
// owns the board, the player's hand, the reserve that hands are drawn
// from, and the discard pile, and is the only thing that mutates them.
package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/lettergrid/board"
	"github.com/domino14/lettergrid/scoring"
	"github.com/domino14/lettergrid/tilemapping"
)

var (
	ErrCellOccupied = errors.New("cell is occupied")
	ErrCellEmpty    = errors.New("cell is empty")
	ErrNoSuchTile   = errors.New("no such tile in hand")
)

// A Session is a single game. All of its methods are safe to call from
// multiple goroutines; each one holds the session lock for its whole
// duration, so a score is never computed from a half-applied move.
type Session struct {
	sync.Mutex

	rules   *Rules
	board   *board.BoardState
	hand    *tilemapping.Rack
	reserve *tilemapping.Bag
	discard []tilemapping.Letter
}

type SessionOption func(*Session)

// WithRandSource makes reserve draws come from rng. Use a seeded
// frand.NewCustom source for reproducible games.
func WithRandSource(rng *frand.RNG) SessionOption {
	return func(s *Session) {
		s.reserve.SetRandSource(rng)
	}
}

// NewSession creates a session with an empty board, an empty hand, and a
// full reserve.
func NewSession(rules *Rules, opts ...SessionOption) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	b, err := board.New(rules.Width, rules.Height)
	if err != nil {
		return nil, err
	}
	s := &Session{
		rules:   rules,
		board:   b,
		hand:    tilemapping.NewRack(),
		reserve: tilemapping.NewBag(rules.ExpandedBagContents()),
		discard: []tilemapping.Letter{},
	}
	for _, o := range opts {
		o(s)
	}
	log.Debug().Int("width", rules.Width).Int("height", rules.Height).
		Int("reserve", s.reserve.TilesRemaining()).Msg("new-session")
	return s, nil
}

func (s *Session) Rules() *Rules {
	return s.rules
}

// DrawHand draws from the reserve until the hand is full or the reserve is
// empty, and returns the letters drawn.
func (s *Session) DrawHand() []tilemapping.Letter {
	s.Lock()
	defer s.Unlock()
	need := s.rules.HandSize - s.hand.NumTiles()
	if need <= 0 {
		return nil
	}
	drawn := s.reserve.DrawAtMost(need)
	s.hand.Add(drawn...)
	if len(drawn) < need {
		log.Warn().Int("hand", s.hand.NumTiles()).Int("hand-size", s.rules.HandSize).
			Msg("no more letters in reserve to draw from")
	}
	log.Debug().Str("drawn", tilemapping.UserVisible(drawn)).
		Int("reserve", s.reserve.TilesRemaining()).Msg("draw-hand")
	return drawn
}

// DiscardHand moves every letter in the hand to the discard pile.
func (s *Session) DiscardHand() []tilemapping.Letter {
	s.Lock()
	defer s.Unlock()
	discarded := s.hand.TakeAll()
	s.discard = append(s.discard, discarded...)
	log.Debug().Str("discarded", tilemapping.UserVisible(discarded)).Msg("discard-hand")
	return discarded
}

// PlaceFromHand puts the hand letter at handIdx on the board at (x, y).
// The cell must be empty. On any error neither the hand nor the board
// changes.
func (s *Session) PlaceFromHand(handIdx, x, y int) (tilemapping.Letter, error) {
	s.Lock()
	defer s.Unlock()
	letter, ok := s.hand.At(handIdx)
	if !ok {
		return tilemapping.Blank, fmt.Errorf("%w: index %d, hand has %d tiles",
			ErrNoSuchTile, handIdx, s.hand.NumTiles())
	}
	if err := s.checkEmpty(x, y); err != nil {
		return tilemapping.Blank, err
	}
	if _, err := s.hand.Take(handIdx); err != nil {
		return tilemapping.Blank, err
	}
	if err := s.board.Set(x, y, letter); err != nil {
		return tilemapping.Blank, err
	}
	s.logBoard("place", x, y, letter)
	return letter, nil
}

// LiftToHand takes the letter at (x, y) off the board and puts it at the
// end of the hand.
func (s *Session) LiftToHand(x, y int) (tilemapping.Letter, error) {
	s.Lock()
	defer s.Unlock()
	letter, err := s.board.Get(x, y)
	if err != nil {
		return tilemapping.Blank, err
	}
	if letter.IsBlank() {
		return tilemapping.Blank, fmt.Errorf("%w: (%d, %d)", ErrCellEmpty, x, y)
	}
	if err := s.board.Set(x, y, tilemapping.Blank); err != nil {
		return tilemapping.Blank, err
	}
	s.hand.Add(letter)
	s.logBoard("lift", x, y, letter)
	return letter, nil
}

// MoveOnBoard moves the letter at (fromX, fromY) to the empty cell at
// (toX, toY). If the move fails the letter stays where it was.
func (s *Session) MoveOnBoard(fromX, fromY, toX, toY int) (tilemapping.Letter, error) {
	s.Lock()
	defer s.Unlock()
	letter, err := s.board.Get(fromX, fromY)
	if err != nil {
		return tilemapping.Blank, err
	}
	if letter.IsBlank() {
		return tilemapping.Blank, fmt.Errorf("%w: (%d, %d)", ErrCellEmpty, fromX, fromY)
	}
	if fromX == toX && fromY == toY {
		return letter, nil
	}
	if err := s.checkEmpty(toX, toY); err != nil {
		return tilemapping.Blank, err
	}
	if err := s.board.Set(fromX, fromY, tilemapping.Blank); err != nil {
		return tilemapping.Blank, err
	}
	if err := s.board.Set(toX, toY, letter); err != nil {
		// Put it back where it was.
		s.board.Set(fromX, fromY, letter)
		return tilemapping.Blank, err
	}
	s.logBoard("move", toX, toY, letter)
	return letter, nil
}

// SetCell writes straight to the board with no occupancy check, like
// board.Set. Whatever was in the cell is lost.
func (s *Session) SetCell(x, y int, letter tilemapping.Letter) error {
	s.Lock()
	defer s.Unlock()
	if err := s.board.Set(x, y, letter); err != nil {
		return err
	}
	s.logBoard("set", x, y, letter)
	return nil
}

// ClearBoard empties the board. Letters on it are dropped, not returned to
// the hand or reserve.
func (s *Session) ClearBoard() {
	s.Lock()
	defer s.Unlock()
	s.board.Clear()
	log.Debug().Uint64("board", s.board.Fingerprint()).Msg("clear-board")
}

func (s *Session) checkEmpty(x, y int) error {
	empty, err := s.board.IsEmptyAt(x, y)
	if err != nil {
		return err
	}
	if !empty {
		return fmt.Errorf("%w: (%d, %d)", ErrCellOccupied, x, y)
	}
	return nil
}

func (s *Session) logBoard(action string, x, y int, letter tilemapping.Letter) {
	log.Debug().Str("action", action).Int("x", x).Int("y", y).
		Str("letter", letter.Symbol).Uint64("board", s.board.Fingerprint()).Msg("board-changed")
}

// Score is the score of the board right now.
func (s *Session) Score() int {
	s.Lock()
	defer s.Unlock()
	return scoring.Score(s.board)
}

// Breakdown is the score along with the words that make it up.
func (s *Session) Breakdown() scoring.Result {
	s.Lock()
	defer s.Unlock()
	return scoring.Breakdown(s.board)
}

// Board returns a snapshot of the board. Changing it does not change the
// session.
func (s *Session) Board() *board.BoardState {
	s.Lock()
	defer s.Unlock()
	return s.board.Copy()
}

// Hand returns a copy of the hand, in order.
func (s *Session) Hand() []tilemapping.Letter {
	s.Lock()
	defer s.Unlock()
	return s.hand.TilesOn()
}

// Discard returns a copy of the discard pile, oldest first.
func (s *Session) Discard() []tilemapping.Letter {
	s.Lock()
	defer s.Unlock()
	ret := make([]tilemapping.Letter, len(s.discard))
	copy(ret, s.discard)
	return ret
}

// ReserveCount is how many tiles are left to draw.
func (s *Session) ReserveCount() int {
	s.Lock()
	defer s.Unlock()
	return s.reserve.TilesRemaining()
}

// ReserveLetters returns the tiles left in the reserve, in no particular
// order.
func (s *Session) ReserveLetters() []tilemapping.Letter {
	s.Lock()
	defer s.Unlock()
	return s.reserve.Peek()
}
