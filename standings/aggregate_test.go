package standings

import (
	"reflect"
	"testing"
	"time"

	"github.com/jthomisee/changing-500-sub000/model"
)

var seasonUsers = []model.User{
	{ID: "alice", FirstName: "Alice", LastName: "Adams"},
	{ID: "bob", FirstName: "Bob", LastName: "Baker"},
	{ID: "carol", FirstName: "Carol", LastName: "Chen"},
	{ID: "dave", FirstName: "Dave", LastName: "Diaz"},
}

func findRow(t *testing.T, rows []*PlayerStanding, userID string) *PlayerStanding {
	t.Helper()
	for _, r := range rows {
		if r.UserID == userID {
			return r
		}
	}
	t.Fatalf("no standings row for %s in %v", userID, rows)
	return nil
}

func TestAggregateSingleGame(t *testing.T) {
	games := []model.Game{
		{
			ID:     "g1",
			Date:   day(1),
			Status: model.GameCompleted,
			Type:   model.GameTournament,
			BuyIn:  25,
			Results: []model.GameResult{
				{
					UserID:              "alice",
					Tournament:          &model.TournamentFinish{Position: 1, Winnings: 70},
					BestHandParticipant: true,
					BestHandWinner:      true,
				},
				{
					UserID:              "bob",
					Tournament:          &model.TournamentFinish{Position: 2, Winnings: 30, Rebuys: 1},
					BestHandParticipant: true,
				},
				{
					UserID:              "carol",
					Tournament:          &model.TournamentFinish{Position: 3},
					BestHandParticipant: true,
				},
				{
					UserID:              "dave",
					Tournament:          &model.TournamentFinish{Position: 4},
					BestHandParticipant: true,
				},
			},
		},
	}

	rows := Aggregate(games, seasonUsers, DefaultConfig())
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	// 4 best-hand participants at the default stake of 5 make a pot of
	// 20, all of it to the single winner.
	alice := findRow(t, rows, "alice")
	if alice.BestHandWinnings != 20 {
		t.Errorf("expected alice to win the 20 side pot, got %v", alice.BestHandWinnings)
	}
	if alice.BestHandCosts != 5 {
		t.Errorf("expected alice to pay 5 into the side pot, got %v", alice.BestHandCosts)
	}
	if alice.TotalWinnings != 90 { // 70 prize + 20 side pot
		t.Errorf("expected alice winnings of 90, got %v", alice.TotalWinnings)
	}
	if alice.TotalBuyIns != 30 { // 25 buy-in + 5 side pot
		t.Errorf("expected alice buy-ins of 30, got %v", alice.TotalBuyIns)
	}
	if alice.NetWinnings != 60 {
		t.Errorf("expected alice net of 60, got %v", alice.NetWinnings)
	}
	if alice.Points != 3 {
		t.Errorf("expected alice to have 3 points, got %v", alice.Points)
	}
	if alice.Wins != 1 || alice.WinRate != 100 {
		t.Errorf("expected a 100%% win rate for alice, got %d wins / %v", alice.Wins, alice.WinRate)
	}

	// A rebuy doubles bob's contribution for the game.
	bob := findRow(t, rows, "bob")
	if bob.TotalBuyIns != 55 { // 25 + 25 rebuy + 5 side pot
		t.Errorf("expected bob buy-ins of 55, got %v", bob.TotalBuyIns)
	}
	if bob.Wins != 1 {
		t.Errorf("second place should count as a win, got %d", bob.Wins)
	}

	carol := findRow(t, rows, "carol")
	if carol.BestHandWinnings != 0 {
		t.Errorf("carol should not collect from the side pot, got %v", carol.BestHandWinnings)
	}
	if carol.CurrentStreak != 1 || carol.StreakType != StreakLoss {
		t.Errorf("expected carol on a 1-game loss streak, got %d %s", carol.CurrentStreak, carol.StreakType)
	}
	if carol.AvgPosition == nil || *carol.AvgPosition != 3 {
		t.Errorf("expected carol average position of 3, got %v", carol.AvgPosition)
	}
}

func TestAggregateScheduledGamesExcluded(t *testing.T) {
	games := []model.Game{
		{
			ID:     "future",
			Date:   day(20),
			Status: model.GameScheduled,
			Type:   model.GameTournament,
			Results: []model.GameResult{
				{UserID: "alice", RSVP: model.RSVPYes},
				{UserID: "bob", RSVP: model.RSVPPending},
			},
		},
	}

	rows := Aggregate(games, seasonUsers, DefaultConfig())
	if len(rows) != 0 {
		t.Errorf("scheduled games must not produce standings rows, got %v", rows)
	}
}

func TestAggregateDefaultBuyIn(t *testing.T) {
	games := []model.Game{
		{
			ID:     "g1",
			Date:   day(1),
			Status: model.GameCompleted,
			Type:   model.GameTournament,
			// No buy-in set on the game.
			Results: []model.GameResult{
				{UserID: "alice", Tournament: &model.TournamentFinish{Position: 1}},
				{UserID: "bob", Tournament: &model.TournamentFinish{Position: 2}},
			},
		},
	}

	cfg := Config{BestHandStake: 10, DefaultBuyIn: 40}
	rows := Aggregate(games, seasonUsers, cfg)

	if got := findRow(t, rows, "alice").TotalBuyIns; got != 40 {
		t.Errorf("expected the configured default buy-in of 40, got %v", got)
	}
}

func TestAggregatePlaceholderUsers(t *testing.T) {
	games := []model.Game{
		{
			ID:     "g1",
			Date:   day(1),
			Status: model.GameCompleted,
			Type:   model.GameTournament,
			Results: []model.GameResult{
				{UserID: "alice", Tournament: &model.TournamentFinish{Position: 1}},
				{UserID: "ghost-1234", Tournament: &model.TournamentFinish{Position: 2}},
			},
		},
		{
			ID:     "g2",
			Date:   day(2),
			Status: model.GameCompleted,
			Type:   model.GameTournament,
			Results: []model.GameResult{
				{UserID: "ghost-1234", Tournament: &model.TournamentFinish{Position: 1}},
				{UserID: "alice", Tournament: &model.TournamentFinish{Position: 2}},
			},
		},
	}

	rows := Aggregate(games, seasonUsers, DefaultConfig())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	ghost := findRow(t, rows, "ghost-1234")
	if !ghost.IsPlaceholder {
		t.Error("expected the unknown user row to be flagged as a placeholder")
	}
	if ghost.Player != "Unknown User (1234)" {
		t.Errorf("unexpected placeholder display name: %s", ghost.Player)
	}
	// Both games still count for the removed user.
	if ghost.Games != 2 {
		t.Errorf("expected the placeholder to keep both games, got %d", ghost.Games)
	}

	if alice := findRow(t, rows, "alice"); alice.IsPlaceholder {
		t.Error("known users must not be flagged as placeholders")
	}
}

func TestAggregateSkipsResultsWithoutUserID(t *testing.T) {
	games := []model.Game{
		{
			ID:     "g1",
			Date:   day(1),
			Status: model.GameCompleted,
			Type:   model.GameTournament,
			Results: []model.GameResult{
				{UserID: "alice", Tournament: &model.TournamentFinish{Position: 1}},
				{Tournament: &model.TournamentFinish{Position: 2}},
			},
		},
	}

	rows := Aggregate(games, seasonUsers, DefaultConfig())
	if len(rows) != 1 {
		t.Fatalf("expected only alice's row, got %d rows", len(rows))
	}
	// The anonymous result still occupied a seat, so alice's points are
	// based on a 2-player field.
	if got := findRow(t, rows, "alice").Points; got != 1 {
		t.Errorf("expected 1 point in a 2-player field, got %v", got)
	}
}

func TestAggregateCashGame(t *testing.T) {
	games := []model.Game{
		{
			ID:     "c1",
			Date:   day(1),
			Status: model.GameCompleted,
			Type:   model.GameCash,
			Results: []model.GameResult{
				{UserID: "alice", Cash: &model.CashFinish{BuyInAmount: 100, CashOutAmount: 180}},
				{UserID: "bob", Cash: &model.CashFinish{BuyInAmount: 100, CashOutAmount: 20}},
			},
		},
	}

	rows := Aggregate(games, seasonUsers, DefaultConfig())

	alice := findRow(t, rows, "alice")
	if alice.Games != 1 {
		t.Errorf("cash games count toward games played, got %d", alice.Games)
	}
	if alice.TotalWinnings != 180 || alice.TotalBuyIns != 100 || alice.NetWinnings != 80 {
		t.Errorf("unexpected cash totals: winnings %v, buy-ins %v, net %v",
			alice.TotalWinnings, alice.TotalBuyIns, alice.NetWinnings)
	}
	if alice.Points != 0 {
		t.Errorf("cash games award no points, got %v", alice.Points)
	}
	if alice.AvgPosition != nil {
		t.Errorf("cash-only players have no average position, got %v", *alice.AvgPosition)
	}
	if alice.StreakType != StreakNone {
		t.Errorf("cash-only players have no streak, got %s", alice.StreakType)
	}
}

func TestAggregateBestHandNoWinner(t *testing.T) {
	games := []model.Game{
		{
			ID:     "g1",
			Date:   day(1),
			Status: model.GameCompleted,
			Type:   model.GameTournament,
			Results: []model.GameResult{
				{UserID: "alice", Tournament: &model.TournamentFinish{Position: 1}, BestHandParticipant: true},
				{UserID: "bob", Tournament: &model.TournamentFinish{Position: 2}, BestHandParticipant: true},
			},
		},
	}

	rows := Aggregate(games, seasonUsers, DefaultConfig())

	for _, row := range rows {
		if row.BestHandWinnings != 0 {
			t.Errorf("no winner means no payout, but %s got %v", row.UserID, row.BestHandWinnings)
		}
		if row.BestHandCosts != 5 {
			t.Errorf("participants still pay the stake, but %s paid %v", row.UserID, row.BestHandCosts)
		}
	}
}

func TestAggregateIdempotent(t *testing.T) {
	games := []model.Game{
		{
			ID:     "g1",
			Date:   day(1),
			Status: model.GameCompleted,
			Type:   model.GameTournament,
			BuyIn:  20,
			Results: []model.GameResult{
				{UserID: "alice", Tournament: &model.TournamentFinish{Position: 1, Winnings: 60}, BestHandParticipant: true, BestHandWinner: true},
				{UserID: "bob", Tournament: &model.TournamentFinish{Position: 2, Winnings: 20}},
				{UserID: "ghost", Tournament: &model.TournamentFinish{Position: 3}},
			},
		},
		{
			ID:     "g2",
			Date:   day(8),
			Status: model.GameCompleted,
			Type:   model.GameCash,
			Results: []model.GameResult{
				{UserID: "bob", Cash: &model.CashFinish{BuyInAmount: 50, CashOutAmount: 90}},
				{UserID: "carol", Cash: &model.CashFinish{BuyInAmount: 50, CashOutAmount: 10}},
			},
		},
	}

	first := Aggregate(games, seasonUsers, DefaultConfig())
	second := Aggregate(games, seasonUsers, DefaultConfig())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestWaitingForUsers(t *testing.T) {
	games := []model.Game{{ID: "g1", Date: time.Now()}}

	tests := map[string]struct {
		usersLoading bool
		games        []model.Game
		users        []model.User
		want         bool
	}{
		"users still loading":        {usersLoading: true, want: true},
		"games without users":        {games: games, want: true},
		"games and users both ready": {games: games, users: seasonUsers, want: false},
		"nothing loaded at all":      {want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := WaitingForUsers(tc.usersLoading, tc.games, tc.users)
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
