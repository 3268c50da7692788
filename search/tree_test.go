package search

import (
	"cmp"
	"encoding/binary"
	"math"

	"lukechampine.com/frand"
)

// A tiny explicit game tree used to exercise the searches. Values are from
// player 0's point of view; the root is always player 0 on turn.

type tmove int

func (m tmove) Compare(o tmove) int { return cmp.Compare(m, o) }

const noTMove = tmove(-1)

type tnode struct {
	value    float64
	win      bool // player 0 has won here
	loss     bool // player 0 has lost here
	labels   []tmove
	children []*tnode

	expansions int
}

type tstate struct {
	n   *tnode
	ply int
}

func (s tstate) ActivePlayer() int { return s.ply % 2 }

func (s tstate) LegalMoves() []tmove {
	s.n.expansions++
	if s.n.labels != nil {
		return s.n.labels
	}
	moves := make([]tmove, len(s.n.children))
	for i := range moves {
		moves[i] = tmove(i)
	}
	return moves
}

func (s tstate) Apply(m tmove) tstate {
	idx := int(m)
	for i, l := range s.n.labels {
		if l == m {
			idx = i
		}
	}
	return tstate{n: s.n.children[idx], ply: s.ply + 1}
}

func (s tstate) IsWinner(p int) bool {
	if p == 0 {
		return s.n.win
	}
	return s.n.loss
}

func (s tstate) IsLoser(p int) bool {
	if p == 0 {
		return s.n.loss
	}
	return s.n.win
}

func (s tstate) NoMove() tmove { return noTMove }

type counter struct {
	calls int
}

func (c *counter) eval(s tstate, player int) float64 {
	c.calls++
	v := s.n.value
	switch {
	case s.n.win:
		v = math.Inf(1)
	case s.n.loss:
		v = math.Inf(-1)
	}
	if player == 1 {
		return -v
	}
	return v
}

func leaf(v float64) *tnode {
	return &tnode{value: v}
}

func node(children ...*tnode) *tnode {
	return &tnode{children: children}
}

func root(n *tnode) tstate {
	return tstate{n: n}
}

func seededRNG(seed uint64) *frand.RNG {
	s := make([]byte, 32)
	binary.LittleEndian.PutUint64(s, seed)
	return frand.NewCustom(s, 0, 0)
}

// randomTree builds a tree of the given height. Every node carries a value so
// that depth-limited searches have something to evaluate. With distinct set,
// values are continuous and practically never tie.
func randomTree(rng *frand.RNG, height int, distinct bool) *tnode {
	n := &tnode{}
	if distinct {
		n.value = rng.Float64()*200 - 100
	} else {
		n.value = float64(rng.Intn(7) - 3)
	}
	if height == 0 {
		return n
	}
	// Some interior nodes have no children at all.
	branching := rng.Intn(4)
	if height > 2 && branching == 0 {
		branching = 1
	}
	for i := 0; i < branching; i++ {
		n.children = append(n.children, randomTree(rng, height-1, distinct))
	}
	return n
}
