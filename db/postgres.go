package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jthomisee/changing-500-sub000/model"
)

var (
	ErrGroupNotFound error = errors.New("group not found")
	ErrUserNotFound  error = errors.New("user not found")
	ErrGameNotFound  error = errors.New("game not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) AddGroup(ctx context.Context, g *model.Group) error {
	const query = `INSERT INTO groups (id, name, created, updated)
		VALUES (@id, @name, @now, @now)`

	now := db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"id":   g.ID,
		"name": g.Name,
		"now":  timestamptz(now),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting group (%s): %w", g.Name, err)
	}
	g.Created = now
	g.Updated = now
	return nil
}

func (db *postgresDB) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	const query = `SELECT id, name, created, updated FROM groups WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	g, err := scanGroup(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("error scanning group %s: %w", id, err)
	}

	members, err := db.ListMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading members for group %s: %w", id, err)
	}
	g.Members = members

	return g, nil
}

func (db *postgresDB) ListGroups(ctx context.Context) ([]model.Group, error) {
	const query = `SELECT id, name, created, updated FROM groups ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing groups: %w", err)
	}

	groups := make([]model.Group, 0, 8)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *g)
	}
	return groups, nil
}

func (db *postgresDB) AddUser(ctx context.Context, u *model.User) error {
	const query = `INSERT INTO users (id, name_first, name_last, email, created, updated)
		VALUES (@id, @nameFirst, @nameLast, @email, @now, @now)`

	now := db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"id":        u.ID,
		"nameFirst": u.FirstName,
		"nameLast":  u.LastName,
		"email": sql.NullString{
			String: u.Email,
			Valid:  u.Email != "",
		},
		"now": timestamptz(now),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting user (%s %s): %w", u.FirstName, u.LastName, err)
	}
	u.Created = now
	u.Updated = now
	return nil
}

func (db *postgresDB) GetUser(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT id, name_first, name_last, email, created, updated
		FROM users WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user %s: %w", id, err)
	}
	return u, nil
}

func (db *postgresDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name_first, name_last, email, created, updated
		FROM users WHERE email ILIKE @email`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"email": email})
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user by email: %w", err)
	}
	return u, nil
}

func (db *postgresDB) AddMember(ctx context.Context, groupID, userID string) error {
	const query = `INSERT INTO group_members (group_id, user_id, added)
		VALUES (@groupID, @userID, @now)
		ON CONFLICT (group_id, user_id) DO NOTHING`

	args := pgx.NamedArgs{
		"groupID": groupID,
		"userID":  userID,
		"now":     timestamptz(db.clock.Now().UTC()),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error adding member %s to group %s: %w", userID, groupID, err)
	}
	return nil
}

// RemoveMember drops the membership only. The user row and any recorded
// results stay so old games keep their totals; standings show the user
// as a placeholder from then on.
func (db *postgresDB) RemoveMember(ctx context.Context, groupID, userID string) error {
	const query = `DELETE FROM group_members WHERE group_id=@groupID AND user_id=@userID`

	args := pgx.NamedArgs{
		"groupID": groupID,
		"userID":  userID,
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error removing member %s from group %s: %w", userID, groupID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (db *postgresDB) ListMembers(ctx context.Context, groupID string) ([]model.User, error) {
	const query = `SELECT u.id, u.name_first, u.name_last, u.email, u.created, u.updated
		FROM users u
		JOIN group_members m ON m.user_id = u.id
		WHERE m.group_id=@groupID
		ORDER BY u.name_first, u.name_last`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"groupID": groupID})
	if err != nil {
		return nil, fmt.Errorf("error listing members for group %s: %w", groupID, err)
	}

	members := make([]model.User, 0, 8)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *u)
	}
	return members, nil
}

func (db *postgresDB) AddGame(ctx context.Context, g *model.Game) error {
	const query = `INSERT INTO games (id, group_id, game_date, start_time, status, game_type, buy_in, created, updated)
		VALUES (@id, @groupID, @gameDate, @startTime, @status, @gameType, @buyIn, @now, @now)`

	now := db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"id":       g.ID,
		"groupID":  g.GroupID,
		"gameDate": pgtype.Date{Time: g.Date, Valid: true},
		"startTime": sql.NullString{
			String: g.StartTime,
			Valid:  g.StartTime != "",
		},
		"status":   string(g.Status),
		"gameType": string(g.Type),
		"buyIn":    g.BuyIn,
		"now":      timestamptz(now),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting game for group %s: %w", g.GroupID, err)
	}
	g.Created = now
	g.Updated = now
	return nil
}

func (db *postgresDB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	const query = `SELECT id, group_id, game_date, start_time, status, game_type, buy_in, created, updated
		FROM games WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error scanning game %s: %w", id, err)
	}

	results, err := db.getResults(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading results for game %s: %w", id, err)
	}
	g.Results = results

	return g, nil
}

func (db *postgresDB) ListGames(ctx context.Context, groupID string) ([]model.Game, error) {
	const query = `SELECT id, group_id, game_date, start_time, status, game_type, buy_in, created, updated
		FROM games WHERE group_id=@groupID ORDER BY game_date, id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"groupID": groupID})
	if err != nil {
		return nil, fmt.Errorf("error listing games for group %s: %w", groupID, err)
	}

	games := make([]model.Game, 0, 16)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		games = append(games, *g)
	}
	rows.Close()

	for i := range games {
		results, err := db.getResults(ctx, games[i].ID)
		if err != nil {
			return nil, fmt.Errorf("error loading results for game %s: %w", games[i].ID, err)
		}
		games[i].Results = results
	}

	return games, nil
}

func (db *postgresDB) SaveResults(ctx context.Context, gameID string, status model.GameStatus, results []model.GameResult) error {
	const deleteOld = `DELETE FROM game_results WHERE game_id=@gameID`

	const insertResult = `INSERT INTO game_results (
		game_id, user_id, rsvp, position, winnings, rebuys,
		cash_buy_in, cash_out, best_hand_participant, best_hand_winner
	) VALUES (
		@gameID, @userID, @rsvp, @position, @winnings, @rebuys,
		@cashBuyIn, @cashOut, @bestHandParticipant, @bestHandWinner
	)`

	const updateStatus = `UPDATE games SET status=@status, updated=@updated WHERE id=@gameID`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deleteOld, pgx.NamedArgs{"gameID": gameID}); err != nil {
		return fmt.Errorf("error clearing results for game %s: %w", gameID, err)
	}

	for _, r := range results {
		if _, err := tx.Exec(ctx, insertResult, namedArgsForResult(gameID, &r)); err != nil {
			return fmt.Errorf("error inserting result for %s in game %s: %w", r.UserID, gameID, err)
		}
	}

	args := pgx.NamedArgs{
		"gameID":  gameID,
		"status":  string(status),
		"updated": timestamptz(db.clock.Now().UTC()),
	}
	tag, err := tx.Exec(ctx, updateStatus, args)
	if err != nil {
		return fmt.Errorf("error updating status of game %s: %w", gameID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing results for game %s: %w", gameID, err)
	}
	return nil
}

func (db *postgresDB) UpdateRSVP(ctx context.Context, gameID, userID string, rsvp model.RSVPStatus) error {
	const update = `UPDATE game_results SET rsvp=@rsvp WHERE game_id=@gameID AND user_id=@userID`

	const insert = `INSERT INTO game_results (game_id, user_id, rsvp)
		VALUES (@gameID, @userID, @rsvp)`

	args := pgx.NamedArgs{
		"gameID": gameID,
		"userID": userID,
		"rsvp":   string(rsvp),
	}
	tag, err := db.pool.Exec(ctx, update, args)
	if err != nil {
		return fmt.Errorf("error updating rsvp for %s in game %s: %w", userID, gameID, err)
	}
	if tag.RowsAffected() == 0 {
		// First response from this user, create their entry.
		if _, err := db.pool.Exec(ctx, insert, args); err != nil {
			return fmt.Errorf("error inserting rsvp for %s in game %s: %w", userID, gameID, err)
		}
	}
	return nil
}

func (db *postgresDB) getResults(ctx context.Context, gameID string) ([]model.GameResult, error) {
	const query = `SELECT user_id, rsvp, position, winnings, rebuys,
			cash_buy_in, cash_out, best_hand_participant, best_hand_winner
		FROM game_results WHERE game_id=@gameID ORDER BY position NULLS LAST, user_id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"gameID": gameID})
	if err != nil {
		return nil, err
	}

	results := make([]model.GameResult, 0, 8)
	for rows.Next() {
		var r model.GameResult
		var rsvp string
		var position, rebuys sql.NullInt32
		var winnings, cashBuyIn, cashOut sql.NullFloat64
		err := rows.Scan(
			&r.UserID,
			&rsvp,
			&position,
			&winnings,
			&rebuys,
			&cashBuyIn,
			&cashOut,
			&r.BestHandParticipant,
			&r.BestHandWinner)
		if err != nil {
			return nil, fmt.Errorf("error scanning game result: %w", err)
		}

		r.RSVP = model.RSVPStatus(rsvp)
		if position.Valid {
			r.Tournament = &model.TournamentFinish{
				Position: int(position.Int32),
				Winnings: winnings.Float64,
				Rebuys:   int(rebuys.Int32),
			}
		} else if cashBuyIn.Valid || cashOut.Valid {
			r.Cash = &model.CashFinish{
				BuyInAmount:   cashBuyIn.Float64,
				CashOutAmount: cashOut.Float64,
			}
		}

		results = append(results, r)
	}
	return results, nil
}

func scanGroup(row pgx.Row) (*model.Group, error) {
	var g model.Group
	var created, updated pgtype.Timestamptz
	if err := row.Scan(&g.ID, &g.Name, &created, &updated); err != nil {
		return nil, err
	}
	g.Created = created.Time
	g.Updated = updated.Time
	return &g, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	var email sql.NullString
	var created, updated pgtype.Timestamptz
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &email, &created, &updated); err != nil {
		return nil, err
	}
	u.Email = valueOrEmpty(email)
	u.Created = created.Time
	u.Updated = updated.Time
	return &u, nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var g model.Game
	var gameDate pgtype.Date
	var startTime sql.NullString
	var status, gameType string
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&g.ID,
		&g.GroupID,
		&gameDate,
		&startTime,
		&status,
		&gameType,
		&g.BuyIn,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}
	g.Date = gameDate.Time
	g.StartTime = valueOrEmpty(startTime)
	g.Status = model.GameStatus(status)
	g.Type = model.GameType(gameType)
	g.Created = created.Time
	g.Updated = updated.Time
	return &g, nil
}

func namedArgsForResult(gameID string, r *model.GameResult) pgx.NamedArgs {
	rsvp := string(r.RSVP)
	if rsvp == "" {
		rsvp = string(model.RSVPYes)
	}

	args := pgx.NamedArgs{
		"gameID":              gameID,
		"userID":              r.UserID,
		"rsvp":                rsvp,
		"position":            sql.NullInt32{},
		"winnings":            sql.NullFloat64{},
		"rebuys":              sql.NullInt32{},
		"cashBuyIn":           sql.NullFloat64{},
		"cashOut":             sql.NullFloat64{},
		"bestHandParticipant": r.BestHandParticipant,
		"bestHandWinner":      r.BestHandWinner,
	}
	if r.Tournament != nil {
		args["position"] = sql.NullInt32{Int32: int32(r.Tournament.Position), Valid: true}
		args["winnings"] = sql.NullFloat64{Float64: r.Tournament.Winnings, Valid: true}
		args["rebuys"] = sql.NullInt32{Int32: int32(r.Tournament.Rebuys), Valid: true}
	}
	if r.Cash != nil {
		args["cashBuyIn"] = sql.NullFloat64{Float64: r.Cash.BuyInAmount, Valid: true}
		args["cashOut"] = sql.NullFloat64{Float64: r.Cash.CashOutAmount, Valid: true}
	}
	return args
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             t,
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
