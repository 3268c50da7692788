package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadFormat = errors.New("cannot parse board")

const (
	blankChar   = '.'
	blockedChar = 'X'
)

var playerChars = [2]byte{'1', '2'}

// ParseBoard reads the compact text form produced by String, e.g.
//
//	"1../.2./.X. 0"
//
// Rows are separated by '/', '.' is a blank square, 'X' a blocked one and
// '1'/'2' the current squares of players 0 and 1. The trailing number is the
// index of the player on turn.
func ParseBoard(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: want rows and player on turn, got %q", ErrBadFormat, s)
	}
	rows := strings.Split(fields[0], "/")
	active, err := strconv.Atoi(fields[1])
	if err != nil || (active != 0 && active != 1) {
		return nil, fmt.Errorf("%w: bad player on turn %q", ErrBadFormat, fields[1])
	}
	b, err := NewBoard(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrBadFormat, r, len(row), b.width)
		}
		for c := 0; c < len(row); c++ {
			switch ch := row[c]; ch {
			case blankChar:
				continue
			case blockedChar:
			case playerChars[0], playerChars[1]:
				p := int(ch - '1')
				if b.locs[p] != NoMove {
					return nil, fmt.Errorf("%w: player %c appears twice", ErrBadFormat, ch)
				}
				b.locs[p] = Move{r, c}
			default:
				return nil, fmt.Errorf("%w: unexpected character %q", ErrBadFormat, ch)
			}
			b.blocked[r+c*b.height] = true
			b.moveCount++
		}
	}
	b.active = active
	return b, nil
}

func (b *Board) squareChar(row, col int) byte {
	m := Move{row, col}
	for p, loc := range b.locs {
		if loc == m {
			return playerChars[p]
		}
	}
	if b.blocked[row+col*b.height] {
		return blockedChar
	}
	return blankChar
}

// String returns the compact form understood by ParseBoard.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < b.width; c++ {
			sb.WriteByte(b.squareChar(r, c))
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.active))
	return sb.String()
}

// Display renders the board as a grid for humans.
func (b *Board) Display() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < b.width; c++ {
		fmt.Fprintf(&sb, " %d  ", c)
	}
	sb.WriteString("\n")
	for r := 0; r < b.height; r++ {
		fmt.Fprintf(&sb, "%2d ", r)
		for c := 0; c < b.width; c++ {
			ch := b.squareChar(r, c)
			if ch == blankChar {
				ch = ' '
			}
			fmt.Fprintf(&sb, " %c |", ch)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Player %d to move\n", b.active+1)
	return sb.String()
}
