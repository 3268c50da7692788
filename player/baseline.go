package player

import (
	"context"
	"math"

	"lukechampine.com/frand"

	"github.com/domino14/isolation/board"
	"github.com/domino14/isolation/heuristic"
	"github.com/domino14/isolation/search"
)

// RandomPlayer plays a uniformly random legal move.
type RandomPlayer struct {
	rng *frand.RNG
}

// NewRandomPlayer uses rng, or a freshly seeded generator if rng is nil.
func NewRandomPlayer(rng *frand.RNG) *RandomPlayer {
	if rng == nil {
		rng = frand.New()
	}
	return &RandomPlayer{rng: rng}
}

func (p *RandomPlayer) Name() string { return RandomKind }

func (p *RandomPlayer) GetMove(_ context.Context, b *board.Board, _ search.Clock) board.Move {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return board.NoMove
	}
	return moves[p.rng.Intn(len(moves))]
}

// GreedyPlayer plays the move with the best immediate score.
type GreedyPlayer struct {
	eval heuristic.Func
}

func NewGreedyPlayer(eval heuristic.Func) *GreedyPlayer {
	return &GreedyPlayer{eval: eval}
}

func (p *GreedyPlayer) Name() string { return GreedyKind }

func (p *GreedyPlayer) GetMove(_ context.Context, b *board.Board, _ search.Clock) board.Move {
	me := b.ActivePlayer()
	best, bestScore := board.NoMove, math.Inf(-1)
	for i, m := range b.LegalMoves() {
		if v := p.eval(b.Apply(m), me); i == 0 || v > bestScore {
			best, bestScore = m, v
		}
	}
	return best
}
