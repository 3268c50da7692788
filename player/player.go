// Package player contains the agents that take part in Isolation games:
// search-based computer players, a random and a greedy baseline, and a
// human player reading moves from a terminal.
package player

import (
	"context"
	"fmt"
	"time"

	"github.com/domino14/isolation/board"
	"github.com/domino14/isolation/config"
	"github.com/domino14/isolation/heuristic"
	"github.com/domino14/isolation/search"
)

const (
	MinimaxKind   = "minimax"
	AlphaBetaKind = "alphabeta"
	RandomKind    = "random"
	GreedyKind    = "greedy"
	HumanKind     = "human"
)

// Player picks a move for the active player of b before clock runs out.
// Returning board.NoMove forfeits the game.
type Player interface {
	Name() string
	GetMove(ctx context.Context, b *board.Board, clock search.Clock) board.Move
}

// Searcher is a Player that reports on its last search.
type Searcher interface {
	Player
	LastResult() search.Result[board.Move]
}

type solver = search.Solver[*board.Board, board.Move]

func newSolver(eval heuristic.Func, threshold time.Duration) *solver {
	return search.NewSolver[*board.Board, board.Move](eval, threshold)
}

// New builds a player of the given kind from cfg. Human players need a
// LineReader and are built with NewHumanPlayer instead.
func New(kind string, cfg *config.Config) (Player, error) {
	eval, err := heuristic.ByName(cfg.GetString(config.ConfigScoreFunction))
	if err != nil {
		return nil, err
	}
	depth := cfg.GetInt(config.ConfigSearchDepth)
	threshold := cfg.SearchTimeout()

	switch kind {
	case MinimaxKind:
		return NewMinimaxPlayer(eval, depth, threshold), nil
	case AlphaBetaKind:
		p := NewAlphaBetaPlayer(eval, threshold)
		if !cfg.GetBool(config.ConfigIterative) {
			p.SetFixedDepth(depth)
		}
		return p, nil
	case RandomKind:
		return NewRandomPlayer(nil), nil
	case GreedyKind:
		return NewGreedyPlayer(eval), nil
	}
	return nil, fmt.Errorf("unknown player kind %q", kind)
}
