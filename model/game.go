package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type GameStatus string

const (
	GameScheduled GameStatus = "scheduled"
	GameCompleted GameStatus = "completed"
)

type GameType string

const (
	GameTournament GameType = "tournament"
	GameCash       GameType = "cash"
)

type RSVPStatus string

const (
	RSVPYes     RSVPStatus = "yes"
	RSVPNo      RSVPStatus = "no"
	RSVPPending RSVPStatus = "pending"
)

func ParseGameType(t string) (GameType, error) {
	switch strings.ToLower(t) {
	case "tournament":
		return GameTournament, nil
	case "cash":
		return GameCash, nil
	default:
		return "", fmt.Errorf("unknown game type: %s", t)
	}
}

func ParseRSVPStatus(s string) (RSVPStatus, error) {
	switch strings.ToLower(s) {
	case "yes":
		return RSVPYes, nil
	case "no":
		return RSVPNo, nil
	case "pending":
		return RSVPPending, nil
	default:
		return "", fmt.Errorf("unknown rsvp status: %s", s)
	}
}

type Game struct {
	ID        string       `json:"id"`
	GroupID   string       `json:"groupId"`
	Date      time.Time    `json:"date"`
	StartTime string       `json:"startTime,omitempty"` // optional, "19:30"
	Status    GameStatus   `json:"status"`
	Type      GameType     `json:"type"`
	BuyIn     float64      `json:"buyIn"` // 0 means the configured default applies
	Results   []GameResult `json:"results,omitempty"`
	Created   time.Time    `json:"created"`
	Updated   time.Time    `json:"updated"`
}

// TournamentFinish is the outcome of one tournament entrant. Ties are
// allowed: multiple finishes in a game may share a position.
type TournamentFinish struct {
	Position int     `json:"position"`
	Winnings float64 `json:"winnings"`
	Rebuys   int     `json:"rebuys"`
}

// CashFinish is the outcome of one cash-game seat.
type CashFinish struct {
	BuyInAmount   float64 `json:"buyInAmount"`
	CashOutAmount float64 `json:"cashOutAmount"`
}

// GameResult is one participant's entry in a game. Exactly one of
// Tournament or Cash is set, matching the game's type.
type GameResult struct {
	UserID              string            `json:"userId"`
	RSVP                RSVPStatus        `json:"rsvp,omitempty"`
	BestHandParticipant bool              `json:"bestHandParticipant"`
	BestHandWinner      bool              `json:"bestHandWinner"`
	Tournament          *TournamentFinish `json:"tournament,omitempty"`
	Cash                *CashFinish       `json:"cash,omitempty"`
}

// ValidateResults checks the invariants that must hold before a game's
// results are stored. The standings code assumes these and does not
// re-check them.
func (g *Game) ValidateResults() error {
	if len(g.Results) == 0 {
		return errors.New("a completed game must have at least one result")
	}

	for i, r := range g.Results {
		if r.UserID == "" {
			return fmt.Errorf("result %d is missing a user id", i)
		}
		if r.BestHandWinner && !r.BestHandParticipant {
			return fmt.Errorf("result %d: best hand winner must be a best hand participant", i)
		}

		switch g.Type {
		case GameTournament:
			if r.Tournament == nil || r.Cash != nil {
				return fmt.Errorf("result %d: tournament game requires a tournament finish", i)
			}
			if r.Tournament.Position < 1 {
				return fmt.Errorf("result %d: position must be 1 or greater, got %d", i, r.Tournament.Position)
			}
			if r.Tournament.Rebuys < 0 {
				return fmt.Errorf("result %d: rebuys must not be negative, got %d", i, r.Tournament.Rebuys)
			}
		case GameCash:
			if r.Cash == nil || r.Tournament != nil {
				return fmt.Errorf("result %d: cash game requires a cash finish", i)
			}
			if r.Cash.BuyInAmount < 0 {
				return fmt.Errorf("result %d: cash buy-in must not be negative", i)
			}
		default:
			return fmt.Errorf("unknown game type: %s", g.Type)
		}
	}
	return nil
}
