package automatic

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/isolation/stats"
)

const confidence = 95

type PlayerSummary struct {
	Name       string  `yaml:"name"`
	Wins       int     `yaml:"wins"`
	WinRate    float64 `yaml:"win_rate"`
	WinRateLow float64 `yaml:"win_rate_low"`
	WinRateHi  float64 `yaml:"win_rate_high"`
	// Losses by timeout or illegal move.
	Forfeits  int     `yaml:"forfeits"`
	MeanDepth float64 `yaml:"mean_depth,omitempty"`

	depths []float64
}

type Report struct {
	Games              int              `yaml:"games"`
	Players            [2]PlayerSummary `yaml:"players"`
	FirstPlayerWinRate float64          `yaml:"first_player_win_rate"`
	MeanPlies          float64          `yaml:"mean_plies"`
	Reasons            map[string]int   `yaml:"reasons"`
}

// NewReport summarizes finished games. All records must be between the same
// two players.
func NewReport(records []*GameRecord) *Report {
	r := &Report{Games: len(records)}
	r.Reasons = lo.CountValuesBy(records, func(g *GameRecord) string { return g.Reason })
	if len(records) == 0 {
		return r
	}

	var p1wins, firstWins, plies stats.Statistic
	for i := range r.Players {
		r.Players[i].Name = records[0].Names[i]
	}
	for _, g := range records {
		p1wins.PushBool(g.Winner == 0)
		firstWins.PushBool(g.Winner == g.FirstPlayer)
		plies.Push(float64(g.Plies()))

		r.Players[g.Winner].Wins++
		if g.Forfeit() {
			r.Players[1-g.Winner].Forfeits++
		}
		// -1 marks a move with no completed search.
		for i := range r.Players {
			r.Players[i].depths = append(r.Players[i].depths,
				lo.FilterMap(g.Depths[i], func(d int, _ int) (float64, bool) { return float64(d), d >= 0 })...)
		}
	}

	low, high := p1wins.Interval(confidence)
	r.Players[0].WinRate = p1wins.Mean()
	r.Players[0].WinRateLow, r.Players[0].WinRateHi = clamp01(low), clamp01(high)
	r.Players[1].WinRate = 1 - p1wins.Mean()
	r.Players[1].WinRateLow, r.Players[1].WinRateHi = clamp01(1-high), clamp01(1-low)
	r.FirstPlayerWinRate = firstWins.Mean()
	r.MeanPlies = plies.Mean()

	for i := range r.Players {
		var d stats.Statistic
		for _, v := range r.Players[i].depths {
			d.Push(v)
		}
		r.Players[i].MeanDepth = d.Mean()
	}
	return r
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", r.Games)
	for _, p := range r.Players {
		if p.Name == "" {
			continue
		}
		fmt.Fprintf(&sb, "%v wins: %d (%.1f%%, %d%% CI %.1f%% - %.1f%%), forfeits: %d\n",
			p.Name, p.Wins, 100*p.WinRate, confidence, 100*p.WinRateLow, 100*p.WinRateHi, p.Forfeits)
		if len(p.depths) > 0 {
			fmt.Fprintf(&sb, "%v mean search depth: %.2f\n", p.Name, p.MeanDepth)
		}
	}
	fmt.Fprintf(&sb, "Player who went first wins: %.1f%%\n", 100*r.FirstPlayerWinRate)
	fmt.Fprintf(&sb, "Mean game length: %.1f plies\n", r.MeanPlies)
	return sb.String()
}

// FprintDepthHistograms draws, for each searching player, how deep its
// searches got.
func (r *Report) FprintDepthHistograms(w io.Writer) error {
	for _, p := range r.Players {
		if len(p.depths) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%v search depths:\n", p.Name); err != nil {
			return err
		}
		h := histogram.Hist(10, p.depths)
		if err := histogram.Fprint(w, h, histogram.Linear(40)); err != nil {
			return err
		}
	}
	return nil
}
