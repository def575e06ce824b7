package standings

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

type SortField string

const (
	SortPoints        SortField = "points"
	SortGames         SortField = "games"
	SortWins          SortField = "wins"
	SortWinRate       SortField = "winRate"
	SortAvgPosition   SortField = "avgPosition"
	SortCurrentStreak SortField = "currentStreak"
	SortWinnings      SortField = "winnings"
	SortBuyIns        SortField = "totalBuyins"
	SortNetWinnings   SortField = "netWinnings"
	SortPlayer        SortField = "player"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// The default display order: best score first.
const (
	DefaultSortField = SortPoints
	DefaultDirection = Descending
)

func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortPoints, SortGames, SortWins, SortWinRate, SortAvgPosition,
		SortCurrentStreak, SortWinnings, SortBuyIns, SortNetWinnings, SortPlayer:
		return SortField(s), nil
	case "":
		return DefaultSortField, nil
	default:
		return "", fmt.Errorf("unknown sort field: %s", s)
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	case "":
		return DefaultDirection, nil
	default:
		return "", fmt.Errorf("unknown sort direction: %s", s)
	}
}

// Two point totals within this distance count as tied for ranking.
const pointsTolerance = 0.001

// AssignRanks gives every row its competition rank, computed from points
// regardless of how the table is currently sorted. Tied players share a
// rank and the next distinct total skips past the whole tie group, the
// standard 1,1,3 style.
func AssignRanks(rows []*PlayerStanding) {
	byPoints := slices.Clone(rows)
	slices.SortFunc(byPoints, func(a, b *PlayerStanding) int {
		return cmp.Compare(b.Points, a.Points)
	})

	currentRank := 1
	groupSize := 0
	var prev float64
	for i, row := range byPoints {
		if i > 0 && math.Abs(prev-row.Points) >= pointsTolerance {
			currentRank += groupSize
			groupSize = 1
		} else {
			groupSize++
		}
		row.Rank = currentRank
		prev = row.Points
	}
}

// SortStandings orders rows for display by the requested field and
// direction. Streak ordering uses a signed value so that win streaks
// rank above loss streaks. Missing values (a nil average position) sort
// after every present value ascending and before them descending.
func SortStandings(rows []*PlayerStanding, field SortField, dir Direction) {
	if field == SortCurrentStreak {
		slices.SortStableFunc(rows, func(a, b *PlayerStanding) int {
			return applyDirection(cmp.Compare(signedStreak(a), signedStreak(b)), dir)
		})
		return
	}

	slices.SortStableFunc(rows, func(a, b *PlayerStanding) int {
		return applyDirection(compareValues(fieldValue(a, field), fieldValue(b, field)), dir)
	})
}

func signedStreak(row *PlayerStanding) int {
	if row.StreakType == StreakWin {
		return row.CurrentStreak
	}
	return -row.CurrentStreak
}

// fieldValue extracts the sortable value for a row. A nil return means
// the value is absent for this player.
func fieldValue(row *PlayerStanding, field SortField) any {
	switch field {
	case SortGames:
		return float64(row.Games)
	case SortWins:
		return float64(row.Wins)
	case SortWinRate:
		return row.WinRate
	case SortAvgPosition:
		if row.AvgPosition == nil {
			return nil
		}
		return *row.AvgPosition
	case SortWinnings:
		return row.TotalWinnings
	case SortBuyIns:
		return row.TotalBuyIns
	case SortNetWinnings:
		return row.NetWinnings
	case SortPlayer:
		return row.Player
	default:
		return row.Points
	}
}

// compareValues orders two extracted values before the direction is
// applied. Absent values compare greater than anything present, which
// puts them last ascending and first descending. Strings compare
// case-insensitively.
func compareValues(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return 1
	}
	if b == nil {
		return -1
	}

	if as, ok := a.(string); ok {
		return strings.Compare(strings.ToLower(as), strings.ToLower(b.(string)))
	}
	return cmp.Compare(a.(float64), b.(float64))
}

func applyDirection(c int, dir Direction) int {
	if dir == Descending {
		return -c
	}
	return c
}
