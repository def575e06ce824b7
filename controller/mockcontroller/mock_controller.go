package mockcontroller

import (
	"context"
	"io"
	"time"

	"github.com/jthomisee/changing-500-sub000/model"
	"github.com/jthomisee/changing-500-sub000/standings"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) CreateGroup(ctx context.Context, name string) (*model.Group, error) {
	args := c.Called(ctx, name)

	var g *model.Group
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Group)
	}
	return g, args.Error(1)
}

func (c *C) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	args := c.Called(ctx, id)

	var g *model.Group
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Group)
	}
	return g, args.Error(1)
}

func (c *C) ListGroups(ctx context.Context) ([]model.Group, error) {
	args := c.Called(ctx)

	var groups []model.Group
	if args.Get(0) != nil {
		groups = args.Get(0).([]model.Group)
	}
	return groups, args.Error(1)
}

func (c *C) AddMember(ctx context.Context, groupID string, u *model.User) (*model.User, error) {
	args := c.Called(ctx, groupID, u)

	var member *model.User
	if args.Get(0) != nil {
		member = args.Get(0).(*model.User)
	}
	return member, args.Error(1)
}

func (c *C) RemoveMember(ctx context.Context, groupID, userID string) error {
	args := c.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (c *C) ListMembers(ctx context.Context, groupID string) ([]model.User, error) {
	args := c.Called(ctx, groupID)

	var users []model.User
	if args.Get(0) != nil {
		users = args.Get(0).([]model.User)
	}
	return users, args.Error(1)
}

func (c *C) ScheduleGame(ctx context.Context, groupID string, date time.Time, startTime string, gameType model.GameType, buyIn float64) (*model.Game, error) {
	args := c.Called(ctx, groupID, date, startTime, gameType, buyIn)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (c *C) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := c.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (c *C) ListGames(ctx context.Context, groupID string) ([]model.Game, error) {
	args := c.Called(ctx, groupID)

	var games []model.Game
	if args.Get(0) != nil {
		games = args.Get(0).([]model.Game)
	}
	return games, args.Error(1)
}

func (c *C) UpcomingGames(ctx context.Context, groupID string) ([]model.Game, error) {
	args := c.Called(ctx, groupID)

	var games []model.Game
	if args.Get(0) != nil {
		games = args.Get(0).([]model.Game)
	}
	return games, args.Error(1)
}

func (c *C) UpdateRSVP(ctx context.Context, gameID, userID string, rsvp model.RSVPStatus) error {
	args := c.Called(ctx, gameID, userID, rsvp)
	return args.Error(0)
}

func (c *C) RecordResults(ctx context.Context, gameID string, results []model.GameResult) (*model.Game, error) {
	args := c.Called(ctx, gameID, results)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (c *C) ImportResultsCSV(ctx context.Context, gameID string, r io.Reader) (*model.Game, error) {
	args := c.Called(ctx, gameID, r)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (c *C) Standings(ctx context.Context, groupID string, field standings.SortField, dir standings.Direction) ([]*standings.PlayerStanding, error) {
	args := c.Called(ctx, groupID, field, dir)

	var rows []*standings.PlayerStanding
	if args.Get(0) != nil {
		rows = args.Get(0).([]*standings.PlayerStanding)
	}
	return rows, args.Error(1)
}

func (c *C) GamePoints(ctx context.Context, gameID string) (map[string]float64, error) {
	args := c.Called(ctx, gameID)

	var points map[string]float64
	if args.Get(0) != nil {
		points = args.Get(0).(map[string]float64)
	}
	return points, args.Error(1)
}
