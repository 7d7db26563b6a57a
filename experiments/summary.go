package experiments

import (
	"battleship/experiments/metrics"
	"fmt"
	"time"
)

type Summary struct {
	Name     string
	Dir      string // Where the CSV files were written, empty if not stored
	MatchUps []MatchUpResult
}

// MatchUpResult aggregates the games of one matchup, per seat.
type MatchUpResult struct {
	Agent1     metrics.AgentConfig
	Agent2     metrics.AgentConfig
	Games      int
	Wins       [2]int
	Unfinished int
	shotsToWin [2]int
	decisions  [2]int
	thinking   [2]time.Duration
}

func (r *MatchUpResult) add(winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric) {
	r.Games++
	switch winner {
	case players[0]:
		r.Wins[0]++
		r.shotsToWin[0] += gameMetric.ShotsPlayer1
	case players[1]:
		r.Wins[1]++
		r.shotsToWin[1] += gameMetric.ShotsPlayer2
	default:
		r.Unfinished++
	}

	for _, mm := range moveMetrics {
		seat := mm.Player - 1
		if seat < 0 || seat > 1 {
			continue
		}
		r.decisions[seat]++
		r.thinking[seat] += mm.Duration
	}
}

// AverageShotsToWin is the mean number of shots the seat (1 or 2) needed in the games it won.
func (r MatchUpResult) AverageShotsToWin(seat int) float64 {
	i := seat - 1
	if i < 0 || i > 1 || r.Wins[i] == 0 {
		return 0
	}
	return float64(r.shotsToWin[i]) / float64(r.Wins[i])
}

// AverageDecisionTime is the mean time the seat (1 or 2) spent choosing a shot.
func (r MatchUpResult) AverageDecisionTime(seat int) time.Duration {
	i := seat - 1
	if i < 0 || i > 1 || r.decisions[i] == 0 {
		return 0
	}
	return r.thinking[i] / time.Duration(r.decisions[i])
}

func (r MatchUpResult) String() string {
	return fmt.Sprintf("%s won %d (%.1f shots, %s/shot), %s won %d (%.1f shots, %s/shot), %d unfinished of %d",
		r.Agent1.Label(), r.Wins[0], r.AverageShotsToWin(1), r.AverageDecisionTime(1),
		r.Agent2.Label(), r.Wins[1], r.AverageShotsToWin(2), r.AverageDecisionTime(2),
		r.Unfinished, r.Games)
}
