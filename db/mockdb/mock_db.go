package mockdb

import (
	"context"

	"github.com/jthomisee/changing-500-sub000/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) AddGroup(ctx context.Context, g *model.Group) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	args := db.Called(ctx, id)

	var g *model.Group
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Group)
	}
	return g, args.Error(1)
}

func (db *DB) ListGroups(ctx context.Context) ([]model.Group, error) {
	args := db.Called(ctx)

	var groups []model.Group
	if args.Get(0) != nil {
		groups = args.Get(0).([]model.Group)
	}
	return groups, args.Error(1)
}

func (db *DB) AddUser(ctx context.Context, u *model.User) error {
	args := db.Called(ctx, u)
	return args.Error(0)
}

func (db *DB) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := db.Called(ctx, id)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := db.Called(ctx, email)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) AddMember(ctx context.Context, groupID, userID string) error {
	args := db.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (db *DB) RemoveMember(ctx context.Context, groupID, userID string) error {
	args := db.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (db *DB) ListMembers(ctx context.Context, groupID string) ([]model.User, error) {
	args := db.Called(ctx, groupID)

	var users []model.User
	if args.Get(0) != nil {
		users = args.Get(0).([]model.User)
	}
	return users, args.Error(1)
}

func (db *DB) AddGame(ctx context.Context, g *model.Game) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := db.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) ListGames(ctx context.Context, groupID string) ([]model.Game, error) {
	args := db.Called(ctx, groupID)

	var games []model.Game
	if args.Get(0) != nil {
		games = args.Get(0).([]model.Game)
	}
	return games, args.Error(1)
}

func (db *DB) SaveResults(ctx context.Context, gameID string, status model.GameStatus, results []model.GameResult) error {
	args := db.Called(ctx, gameID, status, results)
	return args.Error(0)
}

func (db *DB) UpdateRSVP(ctx context.Context, gameID, userID string, rsvp model.RSVPStatus) error {
	args := db.Called(ctx, gameID, userID, rsvp)
	return args.Error(0)
}
