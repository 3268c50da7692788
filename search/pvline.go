package search

import (
	"fmt"
	"strings"
)

// PVLine is the principal variation: the line of play a search expects
// from the root, best move first.
type PVLine[M any] struct {
	Moves []M
}

// Clear the principal variation line.
func (pv *PVLine[M]) Clear() {
	pv.Moves = pv.Moves[:0]
}

// Update the principal variation line with a new best move and the line of
// best play after it.
func (pv *PVLine[M]) Update(m M, child PVLine[M]) {
	pv.Clear()
	pv.Moves = append(pv.Moves, m)
	pv.Moves = append(pv.Moves, child.Moves...)
}

func (pv PVLine[M]) String() string {
	var sb strings.Builder
	for i, m := range pv.Moves {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%d: %v", i+1, m)
	}
	return sb.String()
}
