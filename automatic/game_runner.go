// Package automatic plays Isolation games between two agents without a
// human in the loop, one at a time or as a whole match across several
// goroutines, and summarizes the results.
package automatic

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/isolation/board"
	"github.com/domino14/isolation/config"
	"github.com/domino14/isolation/player"
	"github.com/domino14/isolation/search"
)

const (
	ReasonNoMoves = "no-moves"
	ReasonTimeout = "timeout"
	ReasonIllegal = "illegal-move"
)

// GameRecord is the outcome of one game. Player indices refer to the
// runner's players, not to board seats.
type GameRecord struct {
	ID          int
	Names       [2]string
	FirstPlayer int
	Winner      int
	Reason      string
	Moves       []board.Move
	// Depths holds the depth each searching player completed per move.
	Depths [2][]int
}

func (g *GameRecord) Plies() int {
	return len(g.Moves)
}

// Forfeit is true if the loser timed out or made an illegal move.
func (g *GameRecord) Forfeit() bool {
	return g.Reason == ReasonTimeout || g.Reason == ReasonIllegal
}

// CSV is the line written to the game log.
func (g *GameRecord) CSV() string {
	return fmt.Sprintf("%d,%s,%s,%d,%d,%s,%d\n",
		g.ID, g.Names[0], g.Names[1], g.FirstPlayer, g.Winner, g.Reason, g.Plies())
}

// GameRunner plays games between two players on boards built from its
// configuration.
type GameRunner struct {
	width, height int
	timeLimits    [2]time.Duration
	openingPlies  int

	players [2]player.Player
	rng     *frand.RNG
	logchan chan string
}

// NewGameRunner returns a runner. If logchan is not nil every finished game
// is sent to it as a CSV line.
func NewGameRunner(cfg *config.Config, p1, p2 player.Player, logchan chan string) *GameRunner {
	return &GameRunner{
		width:        cfg.GetInt(config.ConfigBoardWidth),
		height:       cfg.GetInt(config.ConfigBoardHeight),
		timeLimits:   [2]time.Duration{cfg.TimeLimit(), cfg.TimeLimit()},
		openingPlies: cfg.GetInt(config.ConfigOpeningPlies),
		players:      [2]player.Player{p1, p2},
		rng:          frand.New(),
		logchan:      logchan,
	}
}

// SetRNG sets the generator used for opening plies.
func (r *GameRunner) SetRNG(rng *frand.RNG) {
	r.rng = rng
}

// SetTimeLimit changes the per-move budget of one player. 0 means no limit.
func (r *GameRunner) SetTimeLimit(idx int, d time.Duration) {
	r.timeLimits[idx] = d
}

// SetOpeningPlies sets how many random plies start each game.
func (r *GameRunner) SetOpeningPlies(n int) {
	r.openingPlies = n
}

// PlayGame plays one game to the end. first is the index of the player who
// moves first. It fails only on a cancelled ctx or a bad board size.
func (r *GameRunner) PlayGame(ctx context.Context, id, first int) (*GameRecord, error) {
	b, err := board.NewBoard(r.width, r.height)
	if err != nil {
		return nil, err
	}
	rec := &GameRecord{
		ID:          id,
		Names:       [2]string{r.players[0].Name(), r.players[1].Name()},
		FirstPlayer: first,
	}
	// seat maps a board player to one of ours.
	seat := func(boardPlayer int) int {
		return (boardPlayer + first) % 2
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		onTurn := seat(b.ActivePlayer())
		if b.IsOver() {
			rec.Winner, rec.Reason = board.Opponent(onTurn), ReasonNoMoves
			break
		}

		var m board.Move
		if len(rec.Moves) < r.openingPlies {
			legal := b.LegalMoves()
			m = legal[r.rng.Intn(len(legal))]
		} else {
			p := r.players[onTurn]
			clock := search.Unlimited()
			var deadline time.Time
			if limit := r.timeLimits[onTurn]; limit > 0 {
				deadline = time.Now().Add(limit)
				clock = search.Until(deadline)
			}
			m = p.GetMove(ctx, b, clock)
			late := !deadline.IsZero() && time.Now().After(deadline)
			if s, ok := p.(player.Searcher); ok {
				rec.Depths[onTurn] = append(rec.Depths[onTurn], s.LastResult().Depth)
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if late {
				log.Debug().Str("player", p.Name()).Int("ply", len(rec.Moves)).Msg("player-timed-out")
				rec.Winner, rec.Reason = board.Opponent(onTurn), ReasonTimeout
				break
			}
			if !b.IsLegal(m) {
				log.Debug().Str("player", p.Name()).Stringer("move", m).Msg("illegal-move")
				rec.Winner, rec.Reason = board.Opponent(onTurn), ReasonIllegal
				break
			}
		}
		b = b.Apply(m)
		rec.Moves = append(rec.Moves, m)
	}

	log.Debug().Int("game", id).Str("winner", rec.Names[rec.Winner]).
		Str("reason", rec.Reason).Int("plies", rec.Plies()).Msg("game-over")
	if r.logchan != nil {
		r.logchan <- rec.CSV()
	}
	return rec, nil
}
