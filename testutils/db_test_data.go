package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jthomisee/changing-500-sub000/containers"
	"github.com/jthomisee/changing-500-sub000/db"
	"github.com/jthomisee/changing-500-sub000/model"
)

var (
	Alice = &model.User{
		ID:        "11111111-aaaa-4aaa-8aaa-111111111111",
		FirstName: "Alice",
		LastName:  "Anderson",
		Email:     "alice@example.com",
	}
	Bob = &model.User{
		ID:        "22222222-bbbb-4bbb-8bbb-222222222222",
		FirstName: "Bob",
		LastName:  "Baker",
		Email:     "bob@example.com",
	}
	Carol = &model.User{
		ID:        "33333333-cccc-4ccc-8ccc-333333333333",
		FirstName: "Carol",
		LastName:  "Chen",
		Email:     "carol@example.com",
	}
	Dave = &model.User{
		ID:        "44444444-dddd-4ddd-8ddd-444444444444",
		FirstName: "Dave",
		LastName:  "Diaz",
		Email:     "dave@example.com",
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestUsers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestUsers(db db.DB) error {
	users := []*model.User{
		Alice,
		Bob,
		Carol,
		Dave,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, u := range users {
		err := db.AddUser(ctx, u)
		if err != nil {
			return err
		}
	}

	return nil
}
