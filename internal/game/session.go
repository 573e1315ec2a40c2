// Package game hosts a Lights Out grid for a front-end, serialising access to
// it and tracking the moves made on the current board.
package game

import (
	"errors"
	"fmt"
	"sync"

	"lightsout/internal/config"
	"lightsout/pkg/core"
	"lightsout/pkg/lightsout"
)

// Session owns one grid and its move counter behind a single lock.
type Session struct {
	mu       sync.Mutex
	cfg      config.Config
	grid     *lightsout.Grid
	moves    int
	seed     int64
	startLit int
}

// ErrNilGrid is returned when a session is built around a nil grid.
var ErrNilGrid = errors.New("nil grid")

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	Rows     int
	Columns  int
	Cells    []bool
	Lit      int
	StartLit int
	Moves    int
	Complete bool
	Seed     int64
}

// NewSession builds a randomly lit board from cfg using cfg.Seed.
func NewSession(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg}
	if err := s.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSessionWithGrid wraps an existing grid. The board dimensions and
// starting lit count are taken from g rather than cfg.
func NewSessionWithGrid(cfg config.Config, g *lightsout.Grid) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg.Rows, cfg.Columns = g.Rows(), g.Columns()
	return &Session{cfg: cfg, grid: g, seed: cfg.Seed, startLit: g.LitCount()}, nil
}

// Reset replaces the board with a fresh random layout drawn from seed.
func (s *Session) Reset(seed int64) error {
	g, err := lightsout.NewWithRandomLit(s.cfg.Rows, s.cfg.Columns, s.cfg.InitialCount, core.NewRNG(seed))
	if err != nil {
		return fmt.Errorf("reset board: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = g
	s.moves = 0
	s.seed = seed
	s.startLit = g.LitCount()
	return nil
}

// Activate applies a move. Rejected moves do not count.
func (s *Session) Activate(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.grid.Activate(row, col); err != nil {
		return err
	}
	s.moves++
	return nil
}

// Complete reports whether the board is solved.
func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.IsComplete()
}

// Size returns the board dimensions.
func (s *Session) Size() lightsout.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Size()
}

// Seed returns the seed of the current layout.
func (s *Session) Seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Rows:     s.grid.Rows(),
		Columns:  s.grid.Columns(),
		Cells:    s.grid.Cells(),
		Lit:      s.grid.LitCount(),
		StartLit: s.startLit,
		Moves:    s.moves,
		Complete: s.grid.IsComplete(),
		Seed:     s.seed,
	}
}

// Board renders the grid as text.
func (s *Session) Board() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.String()
}
