// Package heuristic contains static evaluation functions for Isolation
// positions. Every function scores a board from the point of view of the
// given player and returns +Inf or -Inf once the game is decided.
package heuristic

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/isolation/board"
)

// Func scores b for player.
type Func = func(b *board.Board, player int) float64

const (
	NullName           = "null"
	OpenName           = "open"
	CenterName         = "center"
	ImprovedName       = "improved"
	AggressiveName     = "aggressive"
	MoreAggressiveName = "more-aggressive"
	DefensiveName      = "defensive"
)

var registry = map[string]Func{
	NullName:           Null,
	OpenName:           Open,
	CenterName:         Center,
	ImprovedName:       Improved,
	AggressiveName:     Aggressive,
	MoreAggressiveName: MoreAggressive,
	DefensiveName:      Defensive,
}

// ByName looks up a scoring function by its configuration name.
func ByName(name string) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown score function %q; valid names are %v", name, Names())
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

func decided(b *board.Board, player int) (float64, bool) {
	if b.IsLoser(player) {
		return math.Inf(-1), true
	}
	if b.IsWinner(player) {
		return math.Inf(1), true
	}
	return 0, false
}

// mobility returns how many moves player and the opponent have.
func mobility(b *board.Board, player int) (own, opp float64) {
	own = float64(len(b.LegalMovesFor(player)))
	opp = float64(len(b.LegalMovesFor(board.Opponent(player))))
	return own, opp
}

// weighted builds a score of the form ownWeight*own - oppWeight*opp.
func weighted(ownWeight, oppWeight float64) Func {
	return func(b *board.Board, player int) float64 {
		if v, ok := decided(b, player); ok {
			return v
		}
		own, opp := mobility(b, player)
		return ownWeight*own - oppWeight*opp
	}
}

// Null only knows about decided games.
func Null(b *board.Board, player int) float64 {
	v, _ := decided(b, player)
	return v
}

// Open counts the player's own moves.
func Open(b *board.Board, player int) float64 {
	if v, ok := decided(b, player); ok {
		return v
	}
	return float64(len(b.LegalMovesFor(player)))
}

// Center is the squared distance of the player's piece from the middle of
// the board; pieces that have not been placed score 0.
func Center(b *board.Board, player int) float64 {
	if v, ok := decided(b, player); ok {
		return v
	}
	loc := b.Location(player)
	if loc == board.NoMove {
		return 0
	}
	w, h := float64(b.Width())/2, float64(b.Height())/2
	dr, dc := h-float64(loc.Row), w-float64(loc.Col)
	return dr*dr + dc*dc
}

var (
	// Improved is own moves minus opponent moves.
	Improved = weighted(1, 1)
	// Aggressive chases the opponent: own - 2*opp.
	Aggressive = weighted(1, 2)
	// MoreAggressive is own - 3*opp.
	MoreAggressive = weighted(1, 3)
	// Defensive values keeping its own options: 2*own - opp.
	Defensive = weighted(2, 1)
)
