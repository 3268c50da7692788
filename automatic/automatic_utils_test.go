package automatic

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/isolation/config"
	"github.com/domino14/isolation/heuristic"
	"github.com/domino14/isolation/player"
)

func TestPlayMatch(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	cfg := testConfig(5, 5)
	cfg.Set(config.ConfigThreads, 3)
	cfg.Set(config.ConfigOpeningPlies, 2)
	cfg.Set(config.ConfigGameLogPath, filepath.Join(dir, "games.csv"))
	seedPath := filepath.Join(dir, "seeds.txt")
	is.NoErr(SaveSeeds(GenerateSeeds(3), seedPath))
	cfg.Set(config.ConfigSeedFile, seedPath)

	greedy := func() (player.Player, error) { return player.NewGreedyPlayer(heuristic.Improved), nil }
	rep, err := PlayMatch(context.Background(), cfg, greedy, KindFactory(player.RandomKind, cfg), 8)
	is.NoErr(err)
	is.Equal(rep.Games, 8)
	is.Equal(rep.Players[0].Wins+rep.Players[1].Wins, 8)
	is.Equal(rep.Players[0].Name, "greedy")
	is.Equal(rep.Reasons[ReasonNoMoves], 8)

	contents, err := os.ReadFile(filepath.Join(dir, "games.csv"))
	is.NoErr(err)
	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	is.Equal(len(lines), 9)
	is.Equal(lines[0]+"\n", logHeader)

	fromLog, err := AnalyzeLogFile(filepath.Join(dir, "games.csv"))
	is.NoErr(err)
	is.Equal(fromLog.Games, 8)
	is.Equal(fromLog.Players[0].Wins, rep.Players[0].Wins)
	is.True(math.Abs(fromLog.MeanPlies-rep.MeanPlies) < 1e-9)
	is.Equal(IsPlaying.Value(), int64(0))
}

func TestPlayMatchBadFactory(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(5, 5)
	_, err := PlayMatch(context.Background(), cfg,
		KindFactory("nobody", cfg), KindFactory(player.RandomKind, cfg), 2)
	is.True(err != nil)
}

func TestReport(t *testing.T) {
	names := [2]string{"alphabeta-id", "minimax-3"}
	records := []*GameRecord{
		{Names: names, FirstPlayer: 0, Winner: 0, Reason: ReasonNoMoves, Depths: [2][]int{{3, 4, 5}, {3, 3}}},
		{Names: names, FirstPlayer: 1, Winner: 0, Reason: ReasonTimeout, Depths: [2][]int{{4}, {-1}}},
		{Names: names, FirstPlayer: 0, Winner: 1, Reason: ReasonNoMoves},
		{Names: names, FirstPlayer: 1, Winner: 0, Reason: ReasonIllegal},
	}
	rep := NewReport(records)

	assert.Equal(t, 4, rep.Games)
	assert.Equal(t, 3, rep.Players[0].Wins)
	assert.Equal(t, 1, rep.Players[1].Wins)
	assert.Equal(t, 2, rep.Players[1].Forfeits)
	assert.Equal(t, 0, rep.Players[0].Forfeits)
	assert.InDelta(t, 0.75, rep.Players[0].WinRate, 1e-9)
	assert.InDelta(t, 0.25, rep.Players[1].WinRate, 1e-9)
	assert.InDelta(t, 0.25, rep.FirstPlayerWinRate, 1e-9)
	assert.InDelta(t, 4.0, rep.Players[0].MeanDepth, 1e-9)
	// The timed-out move has no depth and does not drag the mean down.
	assert.InDelta(t, 3.0, rep.Players[1].MeanDepth, 1e-9)
	assert.LessOrEqual(t, rep.Players[0].WinRateHi, 1.0)
	assert.InDelta(t, 1-rep.Players[0].WinRateHi, rep.Players[1].WinRateLow, 1e-9)
	assert.Equal(t, map[string]int{ReasonNoMoves: 2, ReasonTimeout: 1, ReasonIllegal: 1}, rep.Reasons)

	out, err := rep.YAML()
	assert.NoError(t, err)
	assert.Contains(t, string(out), "name: alphabeta-id")
	assert.Contains(t, string(out), "win_rate: 0.75")
	assert.Contains(t, rep.String(), "alphabeta-id wins: 3 (75.0%")

	var buf bytes.Buffer
	assert.NoError(t, rep.FprintDepthHistograms(&buf))
	assert.Contains(t, buf.String(), "minimax-3 search depths:")
}

func TestEmptyReport(t *testing.T) {
	is := is.New(t)
	rep := NewReport(nil)
	is.Equal(rep.Games, 0)
	var buf bytes.Buffer
	is.NoErr(rep.FprintDepthHistograms(&buf))
	is.Equal(buf.Len(), 0)
}

func TestReportSkipsAbortedSearches(t *testing.T) {
	is := is.New(t)
	names := [2]string{"minimax-5", "greedy"}
	rep := NewReport([]*GameRecord{
		{Names: names, Winner: 1, Reason: ReasonTimeout, Depths: [2][]int{{-1}, nil}},
	})
	is.Equal(rep.Players[0].MeanDepth, 0.0)
	var buf bytes.Buffer
	is.NoErr(rep.FprintDepthHistograms(&buf))
	is.Equal(buf.Len(), 0)
}

func TestSeedsRoundTrip(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "seeds.txt")
	seeds := GenerateSeeds(5)
	is.NoErr(SaveSeeds(seeds, path))
	loaded, err := LoadSeeds(path)
	is.NoErr(err)
	is.Equal(loaded, seeds)

	is.NoErr(os.WriteFile(path, []byte("# comment\nAAAA\n"), 0o644))
	_, err = LoadSeeds(path)
	is.True(err != nil)
}

func TestAnalyzeLogFileErrors(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "games.csv")
	is.NoErr(os.WriteFile(path, []byte(logHeader+"0,a,b,2,0,no-moves,5\n"), 0o644))
	_, err := AnalyzeLogFile(path)
	is.True(err != nil)

	_, err = AnalyzeLogFile(filepath.Join(t.TempDir(), "missing.csv"))
	is.True(err != nil)
}
