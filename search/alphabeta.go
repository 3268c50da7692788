package search

import (
	"context"
)

/*
Fail-hard alpha-beta, written as a pair of max/min functions rather than
negamax so that scores stay in the root player's frame:

	maxValue(node, depth, α, β):
	    if depth = 0 then return eval(node)
	    best := −∞
	    for each child:
	        v := minValue(child, depth − 1, α, β)
	        if v > best then best := v
	        if best ≥ β then return best
	        α := max(α, best)
	    return best
*/

// AlphaBeta runs depth-limited minimax with alpha-beta pruning between the
// bounds alpha and beta and returns the best move for the player on turn.
// Pass math.Inf(-1) and math.Inf(1) for a full-window search.
//
// Among root moves with equal scores the first one found wins. The returned
// value equals Minimax's; only the number of nodes visited differs.
func (s *Solver[S, M]) AlphaBeta(ctx context.Context, state S, depth int,
	alpha, beta float64, clock Clock) (M, error) {

	res, err := s.AlphaBetaResult(ctx, state, depth, alpha, beta, clock)
	return res.Move, err
}

// AlphaBetaResult is AlphaBeta, but also returns the value of the root.
func (s *Solver[S, M]) AlphaBetaResult(ctx context.Context, state S, depth int,
	alpha, beta float64, clock Clock) (Result[M], error) {

	s.begin(state, clock)
	return s.alphaBetaRoot(ctx, state, depth, alpha, beta)
}

func (s *Solver[S, M]) alphaBetaRoot(ctx context.Context, state S, depth int,
	alpha, beta float64) (Result[M], error) {

	var pv PVLine[M]
	score, m, err := s.abMax(ctx, state, depth, alpha, beta, true, &pv)
	if err != nil {
		return Result[M]{Score: negInf, Move: state.NoMove()}, err
	}
	return Result[M]{Score: score, Move: m, PV: pv.Moves}, nil
}

// abMax is the maximizing layer. At the root an empty move list yields
// (-Inf, NoMove) without calling the evaluator; anywhere else it is a leaf.
// pv receives the line behind the returned move.
func (s *Solver[S, M]) abMax(ctx context.Context, state S, depth int,
	alpha, beta float64, root bool, pv *PVLine[M]) (float64, M, error) {

	noMove := state.NoMove()
	if err := s.enter(ctx); err != nil {
		return 0, noMove, err
	}
	if depth <= 0 {
		return s.leaf(state), noMove, nil
	}
	if !root && s.terminal(state) {
		return s.evaluate(state), noMove, nil
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		if root {
			return negInf, noMove, nil
		}
		return s.evaluate(state), noMove, nil
	}

	bestScore, bestMove := negInf, noMove
	for i, m := range moves {
		var line PVLine[M]
		v, _, err := s.abMin(ctx, state.Apply(m), depth-1, alpha, beta, &line)
		if err != nil {
			return 0, noMove, err
		}
		// The first child is always taken so that a lost position still
		// reports a playable move.
		if i == 0 || v > bestScore {
			bestScore, bestMove = v, m
			pv.Update(m, line)
		}
		if bestScore >= beta {
			return bestScore, bestMove, nil
		}
		alpha = max(alpha, bestScore)
	}
	return bestScore, bestMove, nil
}

func (s *Solver[S, M]) abMin(ctx context.Context, state S, depth int,
	alpha, beta float64, pv *PVLine[M]) (float64, M, error) {

	noMove := state.NoMove()
	if err := s.enter(ctx); err != nil {
		return 0, noMove, err
	}
	if depth <= 0 {
		return s.leaf(state), noMove, nil
	}
	if s.terminal(state) {
		return s.evaluate(state), noMove, nil
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return s.evaluate(state), noMove, nil
	}

	bestScore, bestMove := posInf, noMove
	for i, m := range moves {
		var line PVLine[M]
		v, _, err := s.abMax(ctx, state.Apply(m), depth-1, alpha, beta, false, &line)
		if err != nil {
			return 0, noMove, err
		}
		if i == 0 || v < bestScore {
			bestScore, bestMove = v, m
			pv.Update(m, line)
		}
		if bestScore <= alpha {
			return bestScore, bestMove, nil
		}
		beta = min(beta, bestScore)
	}
	return bestScore, bestMove, nil
}
