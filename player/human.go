package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/isolation/board"
	"github.com/domino14/isolation/search"
)

var errBadInput = errors.New("expected a move as: row col")

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

// HumanPlayer asks for moves on a terminal. It ignores the clock.
type HumanPlayer struct {
	in  LineReader
	out io.Writer
}

func NewHumanPlayer(in LineReader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{in: in, out: out}
}

func (p *HumanPlayer) Name() string { return HumanKind }

// GetMove prompts until a legal move is entered. End of input or a
// cancelled context forfeits.
func (p *HumanPlayer) GetMove(ctx context.Context, b *board.Board, _ search.Clock) board.Move {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return board.NoMove
	}
	fmt.Fprintln(p.out, b.Display())
	fmt.Fprintf(p.out, "legal moves: %v\n", moves)
	for ctx.Err() == nil {
		line, err := p.in.Readline()
		if err != nil {
			log.Debug().Err(err).Msg("human-input-closed")
			return board.NoMove
		}
		m, err := ParseMove(line)
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		if !b.IsLegal(m) {
			fmt.Fprintf(p.out, "%v is not a legal move\n", m)
			continue
		}
		return m
	}
	return board.NoMove
}

// ParseMove reads "row col", also accepting "row,col" and "(row, col)".
func ParseMove(s string) (board.Move, error) {
	s = strings.Trim(strings.TrimSpace(s), "()")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return board.NoMove, errBadInput
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return board.NoMove, fmt.Errorf("%w: %w", errBadInput, err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return board.NoMove, fmt.Errorf("%w: %w", errBadInput, err)
	}
	return board.Move{Row: row, Col: col}, nil
}
