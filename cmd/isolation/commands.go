package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/domino14/isolation/automatic"
	"github.com/domino14/isolation/board"
	"github.com/domino14/isolation/config"
	"github.com/domino14/isolation/player"
	"github.com/domino14/isolation/search"
)

func matchCmd() *cobra.Command {
	var p1, p2, format string
	var histograms bool
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Play a match between two agents and report the results",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			rep, err := automatic.PlayMatch(cmd.Context(), cfg,
				automatic.KindFactory(p1, cfg), automatic.KindFactory(p2, cfg),
				cfg.GetInt(config.ConfigNumGames))
			if rep == nil {
				return err
			}
			if err != nil {
				log.Info().Err(err).Int("games", rep.Games).Msg("partial-results")
			}
			if perr := printReport(cmd.OutOrStdout(), rep, format, histograms); perr != nil {
				return perr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&p1, "p1", player.AlphaBetaKind, "first agent")
	cmd.Flags().StringVar(&p2, "p2", player.MinimaxKind, "second agent")
	cmd.Flags().StringVar(&format, "format", "text", "text or yaml")
	cmd.Flags().BoolVar(&histograms, "histograms", false, "draw search depth histograms")
	return cmd
}

func printReport(out io.Writer, rep *automatic.Report, format string, histograms bool) error {
	switch format {
	case "yaml":
		bts, err := rep.YAML()
		if err != nil {
			return err
		}
		if _, err := out.Write(bts); err != nil {
			return err
		}
	case "text":
		fmt.Fprint(out, rep.String())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if histograms {
		return rep.FprintDepthHistograms(out)
	}
	return nil
}

func analyzeCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "analyze logfile",
		Short: "Summarize a game log written by match",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := automatic.AnalyzeLogFile(args[0])
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), rep, format, false)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "text or yaml")
	return cmd
}

func seedsCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "seeds file",
		Short: "Write a file of opening seeds for --seed-file",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				count = configFrom(cmd).GetInt(config.ConfigNumGames)
			}
			if err := automatic.SaveSeeds(automatic.GenerateSeeds(count), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d seeds to %v\n", count, args[0])
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 0, "number of seeds (default: num-games)")
	return cmd
}

func moveCmd() *cobra.Command {
	var agent string
	cmd := &cobra.Command{
		Use:   "move board",
		Short: "Print the move an agent picks for a position",
		Long: `Print the move an agent picks for a position, given as rows separated by
slashes and the index of the player to move, e.g. "1../.2./.X. 0".`,
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			b, err := board.ParseBoard(args[0])
			if err != nil {
				return err
			}
			p, err := player.New(agent, cfg)
			if err != nil {
				return err
			}
			m := p.GetMove(cmd.Context(), b, search.Countdown(cfg.TimeLimit()))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, b.Display())
			if m == board.NoMove {
				fmt.Fprintln(out, "no move")
				return nil
			}
			fmt.Fprintf(out, "%v plays %v\n", p.Name(), m)
			if s, ok := p.(player.Searcher); ok {
				res := s.LastResult()
				fmt.Fprintf(out, "score %v, depth %d, %d nodes\n", res.Score, res.Depth, res.Nodes)
				if len(res.PV) > 0 {
					fmt.Fprintf(out, "PV: %v\n", search.PVLine[board.Move]{Moves: res.PV})
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&agent, "agent", player.AlphaBetaKind, "agent to ask")
	return cmd
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func playCmd() *cobra.Command {
	var agent string
	var humanFirst bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play against an agent",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			opp, err := player.New(agent, cfg)
			if err != nil {
				return err
			}
			l, err := readline.NewEx(&readline.Config{
				Prompt:              "\033[31mmove>\033[0m ",
				HistoryFile:         filepath.Join(os.TempDir(), "isolation-readline.tmp"),
				InterruptPrompt:     "^C",
				EOFPrompt:           "exit",
				FuncFilterInputRune: filterInput,
			})
			if err != nil {
				return err
			}
			defer l.Close()

			human := player.NewHumanPlayer(l, cmd.OutOrStdout())
			r := automatic.NewGameRunner(cfg, human, opp, nil)
			r.SetTimeLimit(0, 0)
			r.SetOpeningPlies(0)
			first := 1
			if humanFirst {
				first = 0
			}
			rec, err := r.PlayGame(cmd.Context(), 0, first)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v wins (%v) after %d plies\n",
				rec.Names[rec.Winner], rec.Reason, rec.Plies())
			return nil
		},
	}
	cmd.Flags().StringVar(&agent, "agent", player.AlphaBetaKind, "agent to play against")
	cmd.Flags().BoolVar(&humanFirst, "human-first", true, "move first")
	return cmd
}
