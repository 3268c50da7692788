package player

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/isolation/board"
	"github.com/domino14/isolation/heuristic"
	"github.com/domino14/isolation/search"
)

// MinimaxPlayer searches to a fixed depth without pruning. If the clock
// runs out mid-search it forfeits.
type MinimaxPlayer struct {
	solver *solver
	depth  int
	last   search.Result[board.Move]
}

func NewMinimaxPlayer(eval heuristic.Func, depth int, threshold time.Duration) *MinimaxPlayer {
	return &MinimaxPlayer{solver: newSolver(eval, threshold), depth: depth}
}

func (p *MinimaxPlayer) Name() string {
	return fmt.Sprintf("minimax-%d", p.depth)
}

func (p *MinimaxPlayer) GetMove(ctx context.Context, b *board.Board, clock search.Clock) board.Move {
	res, err := p.solver.MinimaxResult(ctx, b, p.depth, clock)
	if err != nil {
		log.Debug().Err(err).Str("player", p.Name()).Msg("search-timed-out")
		res.Depth = -1
	} else {
		res.Depth = p.depth
	}
	res.Nodes = p.solver.Nodes()
	p.last = res
	return res.Move
}

func (p *MinimaxPlayer) LastResult() search.Result[board.Move] {
	return p.last
}

// AlphaBetaPlayer uses iterative deepening by default. With a fixed depth
// set it behaves like MinimaxPlayer, with pruning.
type AlphaBetaPlayer struct {
	solver     *solver
	fixedDepth int
	last       search.Result[board.Move]
}

func NewAlphaBetaPlayer(eval heuristic.Func, threshold time.Duration) *AlphaBetaPlayer {
	return &AlphaBetaPlayer{solver: newSolver(eval, threshold)}
}

// SetFixedDepth turns iterative deepening off. 0 turns it back on.
func (p *AlphaBetaPlayer) SetFixedDepth(d int) {
	p.fixedDepth = d
}

// SetMaxDepth caps iterative deepening.
func (p *AlphaBetaPlayer) SetMaxDepth(d int) {
	p.solver.SetMaxDepth(d)
}

func (p *AlphaBetaPlayer) Name() string {
	if p.fixedDepth > 0 {
		return fmt.Sprintf("alphabeta-%d", p.fixedDepth)
	}
	return "alphabeta-id"
}

func (p *AlphaBetaPlayer) GetMove(ctx context.Context, b *board.Board, clock search.Clock) board.Move {
	if p.fixedDepth == 0 {
		p.last = p.solver.Deepen(ctx, b, clock)
		return p.last.Move
	}
	res, err := p.solver.AlphaBetaResult(ctx, b, p.fixedDepth, math.Inf(-1), math.Inf(1), clock)
	if err != nil {
		log.Debug().Err(err).Str("player", p.Name()).Msg("search-timed-out")
		res.Depth = -1
	} else {
		res.Depth = p.fixedDepth
	}
	res.Nodes = p.solver.Nodes()
	p.last = res
	return res.Move
}

func (p *AlphaBetaPlayer) LastResult() search.Result[board.Move] {
	return p.last
}
