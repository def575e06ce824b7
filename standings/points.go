package standings

import (
	"math"

	"github.com/jthomisee/changing-500-sub000/model"
)

// GamePoints returns the point award for one result of a single game.
//
// The base award is the number of players who finished behind you:
// totalPlayers - position, floored at 0. Tied players are treated as if
// they collectively occupy the consecutive positions starting at their
// shared position; the pooled award for that range is split evenly. With
// 10 players and a 3-way tie for 1st the tied players occupy positions
// 1, 2 and 3 and each receives (9+8+7)/3 = 8.
//
// Cash games award no points.
func GamePoints(g *model.Game, target model.GameResult) float64 {
	if g.Type != model.GameTournament || target.Tournament == nil {
		return 0
	}

	totalPlayers := len(g.Results)
	position := target.Tournament.Position

	tied := 0
	for _, r := range g.Results {
		if r.Tournament != nil && r.Tournament.Position == position {
			tied++
		}
	}

	if tied <= 1 {
		return math.Max(0, float64(totalPlayers-position))
	}

	sum := 0.0
	for i := 0; i < tied; i++ {
		sum += math.Max(0, float64(totalPlayers-(position+i)))
	}
	return sum / float64(tied)
}

// GamePointsByUser computes the point award for every result in a game,
// keyed by user id. Results without a user id are skipped.
func GamePointsByUser(g *model.Game) map[string]float64 {
	points := make(map[string]float64, len(g.Results))
	for _, r := range g.Results {
		if r.UserID == "" {
			continue
		}
		points[r.UserID] = GamePoints(g, r)
	}
	return points
}
