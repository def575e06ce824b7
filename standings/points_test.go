package standings

import (
	"fmt"
	"math"
	"testing"

	"github.com/jthomisee/changing-500-sub000/model"
)

func tournamentGame(positions ...int) *model.Game {
	g := &model.Game{
		ID:     "g1",
		Type:   model.GameTournament,
		Status: model.GameCompleted,
	}
	for i, p := range positions {
		g.Results = append(g.Results, model.GameResult{
			UserID:     fmt.Sprintf("u%d", i+1),
			Tournament: &model.TournamentFinish{Position: p},
		})
	}
	return g
}

func TestGamePointsNoTies(t *testing.T) {
	g := tournamentGame(1, 2, 3, 4, 5)

	tests := []struct {
		position int
		want     float64
	}{
		{position: 1, want: 4},
		{position: 2, want: 3},
		{position: 3, want: 2},
		{position: 4, want: 1},
		{position: 5, want: 0},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("position%d", tc.position), func(t *testing.T) {
			got := GamePoints(g, g.Results[tc.position-1])
			if got != tc.want {
				t.Errorf("expected %v points for position %d, got %v", tc.want, tc.position, got)
			}
		})
	}
}

func TestGamePointsThreeWayTie(t *testing.T) {
	// 10 players, three tied for 1st. The tied players occupy positions
	// 1-3 and split (9+8+7)/3 = 8 points each.
	g := tournamentGame(1, 1, 1, 4, 5, 6, 7, 8, 9, 10)

	for i := 0; i < 3; i++ {
		if got := GamePoints(g, g.Results[i]); got != 8 {
			t.Errorf("tied player %d expected 8 points, got %v", i, got)
		}
	}
	if got := GamePoints(g, g.Results[3]); got != 6 {
		t.Errorf("4th place expected 6 points, got %v", got)
	}
}

func TestGamePointsTieSplitConservation(t *testing.T) {
	tests := map[string]struct {
		players  int
		tieSize  int
		tieStart int
	}{
		"pair tied for 1st of 6":   {players: 6, tieSize: 2, tieStart: 1},
		"pair tied for last of 4":  {players: 4, tieSize: 2, tieStart: 3},
		"three tied mid-field":     {players: 9, tieSize: 3, tieStart: 4},
		"tie hanging off the end":  {players: 5, tieSize: 3, tieStart: 4},
		"whole game tied for 1st":  {players: 4, tieSize: 4, tieStart: 1},
		"pair tied for 2nd of two": {players: 3, tieSize: 2, tieStart: 2},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			positions := make([]int, 0, tc.players)
			for i := 0; i < tc.tieSize; i++ {
				positions = append(positions, tc.tieStart)
			}
			next := 1
			for len(positions) < tc.players {
				if next == tc.tieStart {
					next += tc.tieSize
				}
				positions = append(positions, next)
				next++
			}
			g := tournamentGame(positions...)

			want := 0.0
			for i := 0; i < tc.tieSize; i++ {
				want += math.Max(0, float64(tc.players-(tc.tieStart+i)))
			}

			total := 0.0
			for i := 0; i < tc.tieSize; i++ {
				p := GamePoints(g, g.Results[i])
				if p != want/float64(tc.tieSize) {
					t.Errorf("tied player %d expected %v points, got %v", i, want/float64(tc.tieSize), p)
				}
				total += p
			}
			if math.Abs(total-want) > 1e-9 {
				t.Errorf("tie group should conserve %v points, awarded %v", want, total)
			}
		})
	}
}

func TestGamePointsPositionBeyondField(t *testing.T) {
	g := tournamentGame(1, 2, 3)
	g.Results = append(g.Results, model.GameResult{
		UserID:     "late",
		Tournament: &model.TournamentFinish{Position: 12},
	})

	if got := GamePoints(g, g.Results[3]); got != 0 {
		t.Errorf("position beyond the field should score 0, got %v", got)
	}
}

func TestGamePointsCashGame(t *testing.T) {
	g := &model.Game{
		ID:     "c1",
		Type:   model.GameCash,
		Status: model.GameCompleted,
		Results: []model.GameResult{
			{UserID: "u1", Cash: &model.CashFinish{BuyInAmount: 50, CashOutAmount: 75}},
			{UserID: "u2", Cash: &model.CashFinish{BuyInAmount: 50, CashOutAmount: 25}},
		},
	}

	for i, r := range g.Results {
		if got := GamePoints(g, r); got != 0 {
			t.Errorf("cash game result %d should score 0 points, got %v", i, got)
		}
	}
}

func TestGamePointsByUser(t *testing.T) {
	g := tournamentGame(1, 2, 3)
	g.Results = append(g.Results, model.GameResult{
		Tournament: &model.TournamentFinish{Position: 4},
	})

	points := GamePointsByUser(g)

	want := map[string]float64{"u1": 3, "u2": 2, "u3": 1}
	if len(points) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(points), points)
	}
	for id, p := range want {
		if points[id] != p {
			t.Errorf("expected %v points for %s, got %v", p, id, points[id])
		}
	}
}
