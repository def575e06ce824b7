package standings

import (
	"cmp"
	"slices"
	"time"
)

type StreakType string

const (
	StreakWin  StreakType = "win"
	StreakLoss StreakType = "loss"
	StreakNone StreakType = ""
)

type Streak struct {
	Count int
	Type  StreakType
}

// GameRecord is one entry in a player's season history.
type GameRecord struct {
	GameID   string    `json:"gameId"`
	Date     time.Time `json:"date"`
	Position int       `json:"position"` // 0 for cash games
	Winnings float64   `json:"winnings"`
	Rebuys   int       `json:"rebuys"`
	Points   float64   `json:"points"`
	BuyIn    float64   `json:"buyIn"`
}

func (r GameRecord) win() bool {
	return r.Position == 1 || r.Position == 2
}

// CurrentStreak computes a player's run of consecutive wins or losses
// ending at their most recent game. A win is a 1st or 2nd place finish.
// History may arrive in any order; it is sorted by date with the game id
// as a deterministic tie-break for games on the same day. Cash-game
// entries carry no position and are ignored. An empty history yields
// {0, StreakNone}.
func CurrentStreak(history []GameRecord) Streak {
	games := make([]GameRecord, 0, len(history))
	for _, r := range history {
		if r.Position > 0 {
			games = append(games, r)
		}
	}
	if len(games) == 0 {
		return Streak{Count: 0, Type: StreakNone}
	}

	slices.SortFunc(games, func(a, b GameRecord) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.GameID, b.GameID)
	})

	latest := games[len(games)-1].win()
	count := 0
	for i := len(games) - 1; i >= 0; i-- {
		if games[i].win() != latest {
			break
		}
		count++
	}

	t := StreakLoss
	if latest {
		t = StreakWin
	}
	return Streak{Count: count, Type: t}
}
