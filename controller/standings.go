package controller

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jthomisee/changing-500-sub000/model"
	"github.com/jthomisee/changing-500-sub000/standings"
)

// Standings computes the ranked, sorted standings table for a group.
// Games and members are loaded concurrently; completed games feed the
// aggregation while scheduled ones are ignored.
func (c *controller) Standings(ctx context.Context, groupID string, field standings.SortField, dir standings.Direction) ([]*standings.PlayerStanding, error) {
	var (
		games   []model.Game
		members []model.User
	)

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		games, err = c.db.ListGames(gctx, groupID)
		if err != nil {
			return fmt.Errorf("error loading games for standings: %w", err)
		}
		return nil
	})
	grp.Go(func() error {
		var err error
		members, err = c.db.ListMembers(gctx, groupID)
		if err != nil {
			return fmt.Errorf("error loading members for standings: %w", err)
		}
		return nil
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	if standings.WaitingForUsers(false, games, members) {
		return nil, fmt.Errorf("no members found for group %s", groupID)
	}

	rows := standings.Aggregate(games, members, c.cfg)
	standings.AssignRanks(rows)
	standings.SortStandings(rows, field, dir)
	return rows, nil
}

// GamePoints returns the points each player earned from a single game,
// keyed by user id.
func (c *controller) GamePoints(ctx context.Context, gameID string) (map[string]float64, error) {
	g, err := c.db.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return standings.GamePointsByUser(g), nil
}
