package standings

import (
	"testing"
)

func rowIDs(rows []*PlayerStanding) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	return ids
}

func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAssignRanks(t *testing.T) {
	tests := map[string]struct {
		points []float64
		want   []int // rank per row, same order as points
	}{
		"all distinct": {
			points: []float64{10, 8, 6},
			want:   []int{1, 2, 3},
		},
		"two way tie at the top": {
			points: []float64{12, 12, 9, 7},
			want:   []int{1, 1, 3, 4},
		},
		"three way tie mid table": {
			points: []float64{20, 15, 15, 15, 4},
			want:   []int{1, 2, 2, 2, 5},
		},
		"fractional points within tolerance tie": {
			points: []float64{8.0, 8.0004, 5},
			want:   []int{1, 1, 3},
		},
		"fractional points outside tolerance rank apart": {
			points: []float64{8.002, 8.0, 5},
			want:   []int{1, 2, 3},
		},
		"everyone tied": {
			points: []float64{3, 3, 3},
			want:   []int{1, 1, 1},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rows := make([]*PlayerStanding, 0, len(tc.points))
			for i, p := range tc.points {
				rows = append(rows, &PlayerStanding{UserID: string(rune('a' + i)), Points: p})
			}

			AssignRanks(rows)

			for i, r := range rows {
				if r.Rank != tc.want[i] {
					t.Errorf("row %d (%v points): expected rank %d, got %d", i, r.Points, tc.want[i], r.Rank)
				}
			}
		})
	}
}

func TestAssignRanksIndependentOfDisplayOrder(t *testing.T) {
	rows := []*PlayerStanding{
		{UserID: "low", Points: 2, Games: 12},
		{UserID: "high", Points: 9, Games: 3},
	}

	// Sort by games so the display order disagrees with the points order.
	SortStandings(rows, SortGames, Descending)
	AssignRanks(rows)

	if findRank(rows, "high") != 1 || findRank(rows, "low") != 2 {
		t.Errorf("rank must follow points regardless of sort: %v", rows)
	}
}

func findRank(rows []*PlayerStanding, id string) int {
	for _, r := range rows {
		if r.UserID == id {
			return r.Rank
		}
	}
	return 0
}

func TestSortStandingsByField(t *testing.T) {
	avg2, avg5 := 2.0, 5.0
	rows := func() []*PlayerStanding {
		return []*PlayerStanding{
			{UserID: "a", Player: "alice", Points: 10, Games: 4, NetWinnings: -20, AvgPosition: &avg5, CurrentStreak: 2, StreakType: StreakLoss},
			{UserID: "b", Player: "Bob", Points: 6, Games: 9, NetWinnings: 45, AvgPosition: &avg2, CurrentStreak: 3, StreakType: StreakWin},
			{UserID: "c", Player: "carol", Points: 8, Games: 7, NetWinnings: 5, CurrentStreak: 1, StreakType: StreakWin},
		}
	}

	tests := map[string]struct {
		field SortField
		dir   Direction
		want  []string
	}{
		"points desc":       {field: SortPoints, dir: Descending, want: []string{"a", "c", "b"}},
		"points asc":        {field: SortPoints, dir: Ascending, want: []string{"b", "c", "a"}},
		"games desc":        {field: SortGames, dir: Descending, want: []string{"b", "c", "a"}},
		"net winnings desc": {field: SortNetWinnings, dir: Descending, want: []string{"b", "c", "a"}},
		// Case-insensitive: "Bob" sorts between "alice" and "carol".
		"player asc": {field: SortPlayer, dir: Ascending, want: []string{"a", "b", "c"}},
		// Signed streak: win 3, win 1, loss 2 → 3, 1, -2.
		"streak desc": {field: SortCurrentStreak, dir: Descending, want: []string{"b", "c", "a"}},
		"streak asc":  {field: SortCurrentStreak, dir: Ascending, want: []string{"a", "c", "b"}},
		// Carol has no average position; absent values sort last
		// ascending and first descending.
		"avg position asc":  {field: SortAvgPosition, dir: Ascending, want: []string{"b", "a", "c"}},
		"avg position desc": {field: SortAvgPosition, dir: Descending, want: []string{"c", "a", "b"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rs := rows()
			SortStandings(rs, tc.field, tc.dir)
			if got := rowIDs(rs); !sameOrder(got, tc.want) {
				t.Errorf("expected order %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseSortField(t *testing.T) {
	if f, err := ParseSortField(""); err != nil || f != SortPoints {
		t.Errorf("empty field should default to points, got %s (%v)", f, err)
	}
	if f, err := ParseSortField("netWinnings"); err != nil || f != SortNetWinnings {
		t.Errorf("expected netWinnings, got %s (%v)", f, err)
	}
	if _, err := ParseSortField("chips"); err == nil {
		t.Error("expected an error for an unknown sort field")
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection(""); err != nil || d != Descending {
		t.Errorf("empty direction should default to desc, got %s (%v)", d, err)
	}
	if d, err := ParseDirection("ASC"); err != nil || d != Ascending {
		t.Errorf("expected asc, got %s (%v)", d, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected an error for an unknown direction")
	}
}
