package controller

import (
	"context"
	"io"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jthomisee/changing-500-sub000/db"
	"github.com/jthomisee/changing-500-sub000/model"
	"github.com/jthomisee/changing-500-sub000/standings"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	CreateGroup(ctx context.Context, name string) (*model.Group, error)
	GetGroup(ctx context.Context, id string) (*model.Group, error)
	ListGroups(ctx context.Context) ([]model.Group, error)

	// AddMember adds a user to a group, creating the user record if no
	// user with the given email exists yet.
	AddMember(ctx context.Context, groupID string, u *model.User) (*model.User, error)
	RemoveMember(ctx context.Context, groupID, userID string) error
	ListMembers(ctx context.Context, groupID string) ([]model.User, error)

	ScheduleGame(ctx context.Context, groupID string, date time.Time, startTime string, gameType model.GameType, buyIn float64) (*model.Game, error)
	GetGame(ctx context.Context, id string) (*model.Game, error)
	ListGames(ctx context.Context, groupID string) ([]model.Game, error)
	// UpcomingGames lists a group's scheduled games from today onward.
	UpcomingGames(ctx context.Context, groupID string) ([]model.Game, error)
	UpdateRSVP(ctx context.Context, gameID, userID string, rsvp model.RSVPStatus) error

	// RecordResults validates and stores a game's results and marks the
	// game completed. Returns the updated game.
	RecordResults(ctx context.Context, gameID string, results []model.GameResult) (*model.Game, error)
	// ImportResultsCSV reads a game's results from a CSV file keyed by
	// member email. Returns the updated game.
	ImportResultsCSV(ctx context.Context, gameID string, r io.Reader) (*model.Game, error)

	// Standings computes the season table for a group, ranked by points
	// and ordered by the requested sort.
	Standings(ctx context.Context, groupID string, field standings.SortField, dir standings.Direction) ([]*standings.PlayerStanding, error)
	// GamePoints returns the point award for each result of a game,
	// keyed by user id.
	GamePoints(ctx context.Context, gameID string) (map[string]float64, error)
}

type controller struct {
	clock clock.Clock
	db    db.DB
	cfg   standings.Config
}

func New(clock clock.Clock, db db.DB, cfg standings.Config) (C, error) {
	c := &controller{
		clock: clock,
		db:    db,
		cfg:   cfg,
	}
	return c, nil
}
