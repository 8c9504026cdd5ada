// Package session tracks one player walking through a sequence of mazes.
//
// A Session owns its current maze exclusively. Advancing a level or resizing
// the board replaces the maze wholesale.
package session

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/grid"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// TargetFunc returns the target cell count for a level on a cols×rows grid.
type TargetFunc func(cols, rows, level int) int

// Session is the state of a single play-through.
type Session struct {
	cfg    core.RuntimeConfig
	opts   maze.Options
	rng    *rand.Rand
	target TargetFunc

	maze   *maze.Maze
	player grid.Coord
	steps  int
	level  int
}

// MoveResult reports the outcome of a Move.
type MoveResult struct {
	Moved    bool
	Reached  bool // Player stands on the end cell
	Position grid.Coord
	Steps    int
}

// Option customizes a Session.
type Option func(*Session)

// WithTarget sets how the target cell count is derived per level. By default
// every level uses cfg.TargetCells.
func WithTarget(f TargetFunc) Option {
	return func(s *Session) { s.target = f }
}

// New builds the first level. opts.Rand is ignored: each level gets its own
// generator seeded from cfg.Seed so levels are reproducible.
func New(cfg core.RuntimeConfig, opts maze.Options, options ...Option) (*Session, error) {
	s := &Session{
		cfg:   cfg,
		opts:  opts,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		level: 1,
	}
	s.opts.CellSize = cfg.CellSize
	s.target = func(_, _, _ int) int { return cfg.TargetCells }
	for _, o := range options {
		o(s)
	}

	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

// build replaces the current maze with a fresh one and resets the player.
func (s *Session) build() error {
	cols, rows := s.cfg.GridSize()
	opts := s.opts
	opts.Rand = rand.New(rand.NewSource(s.rng.Int63()))

	m, err := maze.New(s.cfg.BoardW, s.cfg.BoardH, s.target(cols, rows, s.level), opts)
	if err != nil {
		return fmt.Errorf("session: level %d: %w", s.level, err)
	}
	s.maze = m
	s.player = m.Start()
	s.steps = 0
	return nil
}

// Maze returns the current maze.
func (s *Session) Maze() *maze.Maze { return s.maze }

// Player returns the player's cell.
func (s *Session) Player() grid.Coord { return s.player }

// Steps returns the number of moves made on the current level.
func (s *Session) Steps() int { return s.steps }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Reached reports whether the player stands on the end cell.
func (s *Session) Reached() bool { return s.player == s.maze.End() }

// Move tries to step the player by (dx, dy). Illegal moves leave the state
// unchanged.
func (s *Session) Move(dx, dy int) MoveResult {
	if s.maze.IsMoveAllowed(s.player.X, s.player.Y, dx, dy) {
		s.player = s.player.Add(dx, dy)
		s.steps++
		return MoveResult{Moved: true, Reached: s.Reached(), Position: s.player, Steps: s.steps}
	}
	return MoveResult{Reached: s.Reached(), Position: s.player, Steps: s.steps}
}

// MoveDir steps the player one cell in direction d.
func (s *Session) MoveDir(d grid.Dir) MoveResult {
	dx, dy := d.Delta()
	return s.Move(dx, dy)
}

// Advance moves on to the next level with a new maze.
func (s *Session) Advance() error {
	s.level++
	if err := s.build(); err != nil {
		s.level--
		return err
	}
	return nil
}

// Resize rebuilds the current level for a board of width×height pixels.
// The step counter is reset.
func (s *Session) Resize(width, height int) error {
	prev := s.cfg
	s.cfg.BoardW, s.cfg.BoardH = width, height
	if err := s.build(); err != nil {
		s.cfg = prev
		return err
	}
	return nil
}

// Render draws the current maze with the player marked '@'.
func (s *Session) Render() string {
	marks := map[grid.Coord]rune{
		s.maze.Start(): 'S',
		s.maze.End():   'E',
	}
	marks[s.player] = '@'
	return s.maze.Render(marks)
}
