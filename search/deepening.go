package search

import (
	"context"

	"github.com/rs/zerolog/log"
)

// GetMove searches state with iterative deepening until the clock runs out
// and returns the move from the deepest fully completed iteration. It never
// fails: if not even the depth-0 iteration completes it returns
// state.NoMove(), which the caller must treat as a forfeit.
func (s *Solver[S, M]) GetMove(ctx context.Context, state S, clock Clock) M {
	return s.Deepen(ctx, state, clock).Move
}

// Deepen is GetMove, returning the full result of the last completed
// iteration. An aborted iteration is discarded entirely. Deepen also stops
// after an iteration in which the depth limit cut no line short, since every
// line then reached the end of the game and a deeper search returns the same
// result.
func (s *Solver[S, M]) Deepen(ctx context.Context, state S, clock Clock) Result[M] {
	s.begin(state, clock)
	s.tracking = true
	defer func() { s.tracking = false }()
	best := Result[M]{Score: negInf, Move: state.NoMove(), Depth: -1}
	var total uint64

	for depth := 0; s.deadline.Remaining() > 0; depth++ {
		if s.maxDepth > 0 && depth > s.maxDepth {
			break
		}
		s.nodes, s.cutoff = 0, false
		res, err := s.iterate(ctx, state, depth)
		total += s.nodes
		if err != nil {
			// Only the deadline can fail an iteration; anything it computed
			// is thrown away.
			log.Debug().Err(err).Int("depth", depth).Uint64("nodes", s.nodes).
				Msg("iteration-aborted")
			break
		}
		res.Depth = depth
		res.Nodes = total
		best = res
		log.Debug().Int("depth", depth).Float64("score", res.Score).
			Uint64("nodes", s.nodes).Msg("deepening-iteratively")
		if s.onDepth != nil {
			s.onDepth(best)
		}
		if !s.cutoff {
			log.Debug().Int("depth", depth).Msg("game-tree-exhausted")
			break
		}
	}
	s.nodes = total
	return best
}

func (s *Solver[S, M]) iterate(ctx context.Context, state S, depth int) (Result[M], error) {
	if s.pruning {
		return s.alphaBetaRoot(ctx, state, depth, negInf, posInf)
	}
	return s.minimaxRoot(ctx, state, depth)
}
