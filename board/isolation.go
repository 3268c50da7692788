// Package board implements the rules of knight-move Isolation: two players
// each own a piece that moves like a chess knight, every square a piece
// lands on is blocked for the rest of the game, and the player on turn with
// no legal moves loses.
package board

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidSize = errors.New("board dimensions must be positive")
	ErrIllegalMove = errors.New("illegal move")
)

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int
	Col int
}

// NoMove is returned by players that have no legal move.
var NoMove = Move{-1, -1}

// Compare orders moves by row, then column.
func (m Move) Compare(o Move) int {
	if c := cmp.Compare(m.Row, o.Row); c != 0 {
		return c
	}
	return cmp.Compare(m.Col, o.Col)
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// Knight jumps, in the order they are generated.
var directions = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board is one position. It is never mutated after construction; Apply
// returns a fresh copy.
type Board struct {
	width  int
	height int
	// blocked is stored column-major: idx = row + col*height.
	blocked   []bool
	locs      [2]Move
	active    int
	moveCount int
}

// NewBoard returns an empty board with player 0 on turn and neither piece
// placed.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Board{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
		locs:    [2]Move{NoMove, NoMove},
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// ActivePlayer returns the index (0 or 1) of the player on turn.
func (b *Board) ActivePlayer() int {
	return b.active
}

// Opponent returns the other player's index.
func Opponent(player int) int {
	return 1 - player
}

// Location returns where player's piece is, or NoMove if it was never placed.
func (b *Board) Location(player int) Move {
	return b.locs[player]
}

// MoveCount is the number of plies played so far.
func (b *Board) MoveCount() int {
	return b.moveCount
}

func (b *Board) onBoard(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// IsBlank reports whether (row, col) is on the board and unvisited.
func (b *Board) IsBlank(row, col int) bool {
	return b.onBoard(row, col) && !b.blocked[row+col*b.height]
}

// BlankSpaces lists the unvisited squares, column by column.
func (b *Board) BlankSpaces() []Move {
	spaces := make([]Move, 0, len(b.blocked)-b.moveCount)
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.height; row++ {
			if !b.blocked[row+col*b.height] {
				spaces = append(spaces, Move{row, col})
			}
		}
	}
	return spaces
}

// LegalMovesFor lists player's moves. A piece that was never placed may go
// to any blank square.
func (b *Board) LegalMovesFor(player int) []Move {
	loc := b.locs[player]
	if loc == NoMove {
		return b.BlankSpaces()
	}
	moves := make([]Move, 0, len(directions))
	for _, d := range directions {
		r, c := loc.Row+d[0], loc.Col+d[1]
		if b.IsBlank(r, c) {
			moves = append(moves, Move{r, c})
		}
	}
	return moves
}

// canMove reports whether player has a legal move, stopping at the first.
func (b *Board) canMove(player int) bool {
	loc := b.locs[player]
	if loc == NoMove {
		return slices.Contains(b.blocked, false)
	}
	for _, d := range directions {
		if b.IsBlank(loc.Row+d[0], loc.Col+d[1]) {
			return true
		}
	}
	return false
}

// LegalMoves lists the moves of the player on turn.
func (b *Board) LegalMoves() []Move {
	return b.LegalMovesFor(b.active)
}

// IsLegal reports whether m is a legal move for the player on turn.
func (b *Board) IsLegal(m Move) bool {
	return slices.Contains(b.LegalMoves(), m)
}

// Apply plays m for the player on turn and returns the resulting board. m is
// assumed legal; see ApplyChecked for untrusted input.
func (b *Board) Apply(m Move) *Board {
	nb := b.Copy()
	nb.blocked[m.Row+m.Col*nb.height] = true
	nb.locs[nb.active] = m
	nb.active = Opponent(nb.active)
	nb.moveCount++
	return nb
}

// ApplyChecked is Apply, returning ErrIllegalMove for moves that are not
// legal for the player on turn.
func (b *Board) ApplyChecked(m Move) (*Board, error) {
	if !b.IsLegal(m) {
		return nil, fmt.Errorf("%w: player %d cannot play %v", ErrIllegalMove, b.active+1, m)
	}
	return b.Apply(m), nil
}

// NoMove satisfies the search package's state contract.
func (b *Board) NoMove() Move {
	return NoMove
}

// IsLoser reports whether player is on turn and cannot move.
func (b *Board) IsLoser(player int) bool {
	return player == b.active && !b.canMove(b.active)
}

// IsWinner reports whether player's opponent is on turn and cannot move.
func (b *Board) IsWinner(player int) bool {
	return player != b.active && !b.canMove(b.active)
}

// IsOver reports whether the player on turn has lost.
func (b *Board) IsOver() bool {
	return !b.canMove(b.active)
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	nb.blocked = slices.Clone(b.blocked)
	return &nb
}
