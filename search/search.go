// Package search implements adversarial game-tree search for two-player,
// zero-sum, perfect-information games: fixed-depth minimax, alpha-beta
// minimax and an iterative-deepening driver that always answers with the
// result of the deepest fully completed search.
package search

import (
	"context"
	"math"
	"time"
)

// Move is an opaque, comparable action. Compare only matters for
// tie-breaking; it must be a total order.
type Move[M any] interface {
	comparable
	Compare(other M) int
}

// GameState is one ply of a game. Apply must be pure: the returned state
// may not share mutable storage with the receiver.
type GameState[S any, M any] interface {
	ActivePlayer() int
	LegalMoves() []M
	Apply(m M) S
	IsWinner(player int) bool
	IsLoser(player int) bool
	// NoMove is the sentinel returned when there is nothing to play.
	NoMove() M
}

// Evaluator scores a state from the point of view of player. Won and lost
// states should score +Inf and -Inf.
type Evaluator[S any] func(state S, player int) float64

// Result is a (score, move) pair. Depth and Nodes are filled in by the
// iterative-deepening driver. PV is only kept by alpha-beta searches.
type Result[M any] struct {
	Score float64
	Move  M
	Depth int
	Nodes uint64
	PV    []M
}

// Solver holds the configuration of a search. It is not safe for concurrent
// use; give each goroutine its own Solver.
type Solver[S GameState[S, M], M Move[M]] struct {
	eval      Evaluator[S]
	threshold time.Duration

	pruning  bool
	maxDepth int
	onDepth  func(Result[M])

	// set per top-level call
	deadline Deadline
	player   int
	nodes    uint64

	// set by the driver: whether the depth limit hid any further play
	tracking bool
	cutoff   bool
}

// NewSolver returns a solver that scores leaves with eval and aborts once
// less than threshold remains on the clock.
func NewSolver[S GameState[S, M], M Move[M]](eval Evaluator[S], threshold time.Duration) *Solver[S, M] {
	return &Solver[S, M]{
		eval:      eval,
		threshold: threshold,
		pruning:   true,
	}
}

// SetPruning selects alpha-beta (true, the default) or plain minimax for the
// iterative-deepening driver.
func (s *Solver[S, M]) SetPruning(p bool) {
	s.pruning = p
}

// SetMaxDepth caps iterative deepening. 0 means no cap.
func (s *Solver[S, M]) SetMaxDepth(d int) {
	s.maxDepth = d
}

// SetIterationCallback registers a function called after every fully
// completed iteration of the driver.
func (s *Solver[S, M]) SetIterationCallback(f func(Result[M])) {
	s.onDepth = f
}

// Nodes returns the number of nodes entered by the last top-level call.
func (s *Solver[S, M]) Nodes() uint64 {
	return s.nodes
}

func (s *Solver[S, M]) begin(state S, clock Clock) {
	s.deadline = NewDeadline(clock, s.threshold)
	s.player = state.ActivePlayer()
	s.nodes = 0
}

// enter is called at the top of every recursive entry, before any other work.
func (s *Solver[S, M]) enter(ctx context.Context) error {
	if err := s.deadline.Check(ctx); err != nil {
		return err
	}
	s.nodes++
	return nil
}

func (s *Solver[S, M]) evaluate(state S) float64 {
	return s.eval(state, s.player)
}

// leaf scores a node at the depth limit. While the driver is tracking, it
// also notes whether the node still had moves to play.
func (s *Solver[S, M]) leaf(state S) float64 {
	if s.tracking && !s.cutoff && !s.terminal(state) && len(state.LegalMoves()) > 0 {
		s.cutoff = true
	}
	return s.evaluate(state)
}

func (s *Solver[S, M]) terminal(state S) bool {
	return state.IsWinner(s.player) || state.IsLoser(s.player)
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)
