package db

import (
	"context"

	"github.com/jthomisee/changing-500-sub000/model"
)

type DB interface {
	AddGroup(ctx context.Context, g *model.Group) error
	GetGroup(ctx context.Context, id string) (*model.Group, error)
	ListGroups(ctx context.Context) ([]model.Group, error)

	AddUser(ctx context.Context, u *model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	// GetUserByEmail looks a user up case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	AddMember(ctx context.Context, groupID, userID string) error
	RemoveMember(ctx context.Context, groupID, userID string) error
	ListMembers(ctx context.Context, groupID string) ([]model.User, error)

	AddGame(ctx context.Context, g *model.Game) error
	GetGame(ctx context.Context, id string) (*model.Game, error)
	// ListGames returns a group's games ordered by date, oldest first,
	// with their results attached.
	ListGames(ctx context.Context, groupID string) ([]model.Game, error)
	// SaveResults replaces a game's results and updates its status in
	// one transaction.
	SaveResults(ctx context.Context, gameID string, status model.GameStatus, results []model.GameResult) error
	UpdateRSVP(ctx context.Context, gameID, userID string, rsvp model.RSVPStatus) error
}
