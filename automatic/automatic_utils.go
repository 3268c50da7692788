package automatic

// Computer vs computer matches.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/isolation/config"
	"github.com/domino14/isolation/player"
)

const logHeader = "gameID,p1,p2,first,winner,reason,plies\n"

var (
	GamesPlayed *expvar.Int
	IsPlaying   *expvar.Int
)

func init() {
	GamesPlayed = expvar.NewInt("isolationGamesPlayed")
	IsPlaying = expvar.NewInt("isolationIsPlaying")
}

// Factory builds a fresh player. Players are not safe for concurrent use, so
// every game gets its own pair.
type Factory func() (player.Player, error)

// KindFactory returns a Factory for player.New(kind, cfg).
func KindFactory(kind string, cfg *config.Config) Factory {
	return func() (player.Player, error) {
		return player.New(kind, cfg)
	}
}

// PlayMatch plays numGames games between the players built by f1 and f2,
// alternating who moves first, with up to the configured number of games in
// flight at once. If game-log-path is set, a CSV line per game is appended
// to it. The report covers every game that finished, even if ctx was
// cancelled.
func PlayMatch(ctx context.Context, cfg *config.Config, f1, f2 Factory, numGames int) (*Report, error) {
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	threads := cfg.GetInt(config.ConfigThreads)
	log.Debug().Int("games", numGames).Int("threads", threads).Msg("starting-match")

	var seeds []Seed
	if path := cfg.GetString(config.ConfigSeedFile); path != "" {
		var err error
		if seeds, err = LoadSeeds(path); err != nil {
			return nil, err
		}
		if len(seeds) == 0 {
			return nil, fmt.Errorf("no seeds in %s", path)
		}
	}

	var logChan chan string
	writer := &errgroup.Group{}
	if path := cfg.GetString(config.ConfigGameLogPath); path != "" {
		logfile, err := openGameLog(path)
		if err != nil {
			return nil, err
		}
		logChan = make(chan string, 100)
		writer.Go(func() error {
			defer logfile.Close()
			var werr error
			// Keep draining after a failed write so players never block.
			for msg := range logChan {
				if werr == nil {
					_, werr = logfile.WriteString(msg)
				}
			}
			return werr
		})
	}

	records := make([]*GameRecord, numGames)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i := 0; i < numGames; i++ {
		g.Go(func() error {
			p1, err := f1()
			if err != nil {
				return err
			}
			p2, err := f2()
			if err != nil {
				return err
			}
			r := NewGameRunner(cfg, p1, p2, logChan)
			if seeds != nil {
				r.SetRNG(seeds[i%len(seeds)].RNG())
			}
			rec, err := r.PlayGame(gctx, i, i%2)
			if err != nil {
				return err
			}
			records[i] = rec
			GamesPlayed.Add(1)
			return nil
		})
	}
	err := g.Wait()
	if logChan != nil {
		close(logChan)
	}
	if werr := writer.Wait(); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		log.Info().Err(err).Msg("match-stopped-early")
	}

	finished := lo.Compact(records)
	return NewReport(finished), err
}

func openGameLog(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.Size() == 0 {
		if _, err := f.WriteString(logHeader); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
