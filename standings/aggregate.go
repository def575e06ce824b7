package standings

import (
	"fmt"
	"log"

	"github.com/jthomisee/changing-500-sub000/model"
)

// PlayerStanding is one row of the season table: a player's cumulative
// stats across every non-scheduled game, plus the derived display
// fields. Rank is filled in by AssignRanks.
type PlayerStanding struct {
	UserID        string `json:"userId"`
	Player        string `json:"player"`
	IsPlaceholder bool   `json:"isPlaceholder,omitempty"`

	Games int `json:"games"`
	Wins  int `json:"wins"`

	// TotalWinnings and TotalBuyIns include the best-hand side pot.
	TotalWinnings float64 `json:"totalWinnings"`
	TotalBuyIns   float64 `json:"totalBuyins"`
	NetWinnings   float64 `json:"netWinnings"`

	Points  float64 `json:"points"`
	WinRate float64 `json:"winRate"` // percent

	// AvgPosition is nil for players with no tournament finishes.
	AvgPosition *float64 `json:"avgPosition"`

	BestHandWinnings float64 `json:"bestHandWinnings"`
	BestHandCosts    float64 `json:"bestHandCosts"`
	BestHandWins     int     `json:"bestHandWins"`
	BestHandEntries  int     `json:"bestHandEntries"`

	CurrentStreak int        `json:"currentStreak"`
	StreakType    StreakType `json:"streakType,omitempty"`

	Rank int `json:"rank"`

	History []GameRecord `json:"history,omitempty"`
}

// WaitingForUsers reports whether a standings computation should be
// deferred because the user list hasn't finished loading. Running the
// aggregator against games whose users are still in flight would fill
// the table with placeholder rows.
func WaitingForUsers(usersLoading bool, games []model.Game, users []model.User) bool {
	return usersLoading || (len(games) > 0 && len(users) == 0)
}

// Aggregate folds every non-scheduled game into per-player season rows.
// Rows come back unsorted (in first-seen order); use AssignRanks and
// SortStandings to prepare them for display.
//
// A result referencing a user that no longer exists still counts: it is
// attached to a synthesized placeholder so the game's totals stay
// consistent. A result with no user id at all is skipped with a warning.
func Aggregate(games []model.Game, users []model.User, cfg Config) []*PlayerStanding {
	lookup := make(map[string]model.User, len(users))
	for _, u := range users {
		lookup[u.ID] = u
	}
	placeholders := make(map[string]bool)

	rows := make(map[string]*PlayerStanding)
	order := make([]string, 0, len(users))

	for gi := range games {
		g := &games[gi]
		if g.Status == model.GameScheduled {
			continue
		}

		buyIn := cfg.buyInFor(g.BuyIn)
		_, share := bestHandPot(g.Results, cfg.BestHandStake)

		for _, r := range g.Results {
			if r.UserID == "" {
				log.Printf("game %s has a result with no user id, skipping", g.ID)
				continue
			}

			u, found := lookup[r.UserID]
			if !found {
				u = placeholderUser(r.UserID)
				lookup[r.UserID] = u
				placeholders[r.UserID] = true
				log.Printf("no user record for %s, using placeholder", r.UserID)
			}

			row, ok := rows[r.UserID]
			if !ok {
				row = &PlayerStanding{
					UserID:        r.UserID,
					Player:        u.DisplayName(),
					IsPlaceholder: placeholders[r.UserID],
				}
				rows[r.UserID] = row
				order = append(order, r.UserID)
			}

			row.Games++

			switch g.Type {
			case model.GameCash:
				if r.Cash == nil {
					log.Printf("game %s: cash game result for %s has no cash finish, skipping amounts", g.ID, r.UserID)
					break
				}
				row.TotalWinnings += r.Cash.CashOutAmount
				row.TotalBuyIns += r.Cash.BuyInAmount
				row.History = append(row.History, GameRecord{
					GameID:   g.ID,
					Date:     g.Date,
					Winnings: r.Cash.CashOutAmount,
					BuyIn:    r.Cash.BuyInAmount,
				})
			default:
				if r.Tournament == nil {
					log.Printf("game %s: tournament result for %s has no finish, skipping amounts", g.ID, r.UserID)
					break
				}
				fin := r.Tournament
				pts := GamePoints(g, r)

				row.TotalWinnings += fin.Winnings
				row.TotalBuyIns += buyIn + float64(fin.Rebuys)*buyIn
				row.Points += pts
				if fin.Position == 1 || fin.Position == 2 {
					row.Wins++
				}
				row.History = append(row.History, GameRecord{
					GameID:   g.ID,
					Date:     g.Date,
					Position: fin.Position,
					Winnings: fin.Winnings,
					Rebuys:   fin.Rebuys,
					Points:   pts,
					BuyIn:    buyIn,
				})
			}

			if r.BestHandParticipant {
				row.BestHandCosts += cfg.BestHandStake
				row.BestHandEntries++
			}
			if r.BestHandWinner {
				row.BestHandWinnings += share
				row.BestHandWins++
			}
		}
	}

	result := make([]*PlayerStanding, 0, len(order))
	for _, id := range order {
		row := rows[id]
		finalize(row)
		result = append(result, row)
	}
	return result
}

// bestHandPot settles a game's fixed-stake side pot: every participant
// pays the stake in, and the pot splits evenly across the winners. A
// game with no winners pays out nothing.
func bestHandPot(results []model.GameResult, stake float64) (pot, share float64) {
	participants := 0
	winners := 0
	for _, r := range results {
		if r.BestHandParticipant {
			participants++
		}
		if r.BestHandWinner {
			winners++
		}
	}
	pot = float64(participants) * stake
	if winners == 0 {
		return pot, 0
	}
	return pot, pot / float64(winners)
}

func finalize(row *PlayerStanding) {
	row.TotalWinnings += row.BestHandWinnings
	row.TotalBuyIns += row.BestHandCosts
	row.NetWinnings = row.TotalWinnings - row.TotalBuyIns

	if row.Games > 0 {
		row.WinRate = float64(row.Wins) / float64(row.Games) * 100
	}

	posSum := 0
	posGames := 0
	for _, h := range row.History {
		if h.Position > 0 {
			posSum += h.Position
			posGames++
		}
	}
	if posGames > 0 {
		avg := float64(posSum) / float64(posGames)
		row.AvgPosition = &avg
	}

	streak := CurrentStreak(row.History)
	row.CurrentStreak = streak.Count
	row.StreakType = streak.Type
}

func placeholderUser(id string) model.User {
	suffix := id
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return model.User{
		ID:        id,
		FirstName: "Unknown User",
		LastName:  fmt.Sprintf("(%s)", suffix),
	}
}
