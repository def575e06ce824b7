package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jthomisee/changing-500-sub000/model"
)

func (c *controller) ScheduleGame(ctx context.Context, groupID string, date time.Time, startTime string, gameType model.GameType, buyIn float64) (*model.Game, error) {
	if _, err := c.db.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("error getting group %s: %w", groupID, err)
	}

	if date.IsZero() {
		return nil, errors.New("a game date must be provided")
	}
	if gameType != model.GameTournament && gameType != model.GameCash {
		return nil, fmt.Errorf("unknown game type: %s", gameType)
	}
	if buyIn < 0 {
		return nil, errors.New("buy-in must not be negative")
	}

	g := &model.Game{
		ID:        uuid.NewString(),
		GroupID:   groupID,
		Date:      date,
		StartTime: startTime,
		Status:    model.GameScheduled,
		Type:      gameType,
		BuyIn:     buyIn,
	}
	if err := c.db.AddGame(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (c *controller) GetGame(ctx context.Context, id string) (*model.Game, error) {
	return c.db.GetGame(ctx, id)
}

func (c *controller) ListGames(ctx context.Context, groupID string) ([]model.Game, error) {
	return c.db.ListGames(ctx, groupID)
}

func (c *controller) UpcomingGames(ctx context.Context, groupID string) ([]model.Game, error) {
	games, err := c.db.ListGames(ctx, groupID)
	if err != nil {
		return nil, err
	}

	today := c.clock.Now().UTC().Truncate(24 * time.Hour)
	upcoming := make([]model.Game, 0, len(games))
	for _, g := range games {
		if g.Status == model.GameScheduled && !g.Date.Before(today) {
			upcoming = append(upcoming, g)
		}
	}
	return upcoming, nil
}

func (c *controller) UpdateRSVP(ctx context.Context, gameID, userID string, rsvp model.RSVPStatus) error {
	g, err := c.db.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if g.Status != model.GameScheduled {
		return errors.New("rsvp is only possible for scheduled games")
	}

	members, err := c.db.ListMembers(ctx, g.GroupID)
	if err != nil {
		return err
	}
	member := false
	for _, m := range members {
		if m.ID == userID {
			member = true
			break
		}
	}
	if !member {
		return fmt.Errorf("user %s is not a member of group %s", userID, g.GroupID)
	}

	return c.db.UpdateRSVP(ctx, gameID, userID, rsvp)
}

func (c *controller) RecordResults(ctx context.Context, gameID string, results []model.GameResult) (*model.Game, error) {
	g, err := c.db.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	g.Results = results
	if err := g.ValidateResults(); err != nil {
		return nil, fmt.Errorf("invalid results for game %s: %w", gameID, err)
	}

	if err := c.db.SaveResults(ctx, gameID, model.GameCompleted, results); err != nil {
		return nil, err
	}

	return c.db.GetGame(ctx, gameID)
}
