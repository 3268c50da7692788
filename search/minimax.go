package search

import (
	"context"
	"math"
)

// Minimax runs a depth-limited minimax search without pruning and returns
// the best move for the player on turn in state. Scores are always taken
// from that player's point of view.
//
// Among root moves with equal scores the move that compares greatest wins.
// If the state has no legal moves, state.NoMove() is returned and the
// evaluator is never called at the root.
func (s *Solver[S, M]) Minimax(ctx context.Context, state S, depth int, clock Clock) (M, error) {
	res, err := s.MinimaxResult(ctx, state, depth, clock)
	return res.Move, err
}

// MinimaxResult is Minimax, but also returns the minimax value of the root.
func (s *Solver[S, M]) MinimaxResult(ctx context.Context, state S, depth int, clock Clock) (Result[M], error) {
	s.begin(state, clock)
	return s.minimaxRoot(ctx, state, depth)
}

func (s *Solver[S, M]) minimaxRoot(ctx context.Context, state S, depth int) (Result[M], error) {
	best := Result[M]{Score: negInf, Move: state.NoMove()}
	if err := s.enter(ctx); err != nil {
		return best, err
	}
	if depth <= 0 {
		best.Score = s.leaf(state)
		return best, nil
	}
	found := false
	for _, m := range state.LegalMoves() {
		v, err := s.minValue(ctx, state.Apply(m), depth-1)
		if err != nil {
			return Result[M]{Score: negInf, Move: state.NoMove()}, err
		}
		// Compare (score, move) pairs as a whole.
		if !found || v > best.Score || (v == best.Score && m.Compare(best.Move) > 0) {
			best.Score, best.Move = v, m
			found = true
		}
	}
	return best, nil
}

func (s *Solver[S, M]) minValue(ctx context.Context, state S, depth int) (float64, error) {
	if err := s.enter(ctx); err != nil {
		return 0, err
	}
	if depth <= 0 {
		return s.leaf(state), nil
	}
	if s.terminal(state) {
		return s.evaluate(state), nil
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return s.evaluate(state), nil
	}
	v := posInf
	for _, m := range moves {
		cv, err := s.maxValue(ctx, state.Apply(m), depth-1)
		if err != nil {
			return 0, err
		}
		v = math.Min(v, cv)
	}
	return v, nil
}

func (s *Solver[S, M]) maxValue(ctx context.Context, state S, depth int) (float64, error) {
	if err := s.enter(ctx); err != nil {
		return 0, err
	}
	if depth <= 0 {
		return s.leaf(state), nil
	}
	if s.terminal(state) {
		return s.evaluate(state), nil
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return s.evaluate(state), nil
	}
	v := negInf
	for _, m := range moves {
		cv, err := s.minValue(ctx, state.Apply(m), depth-1)
		if err != nil {
			return 0, err
		}
		v = math.Max(v, cv)
	}
	return v, nil
}
