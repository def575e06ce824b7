package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jthomisee/changing-500-sub000/db"
	"github.com/jthomisee/changing-500-sub000/model"
)

func (c *controller) CreateGroup(ctx context.Context, name string) (*model.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("group name must be provided")
	}

	g := &model.Group{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := c.db.AddGroup(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (c *controller) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	return c.db.GetGroup(ctx, id)
}

func (c *controller) ListGroups(ctx context.Context) ([]model.Group, error) {
	return c.db.ListGroups(ctx)
}

func (c *controller) AddMember(ctx context.Context, groupID string, u *model.User) (*model.User, error) {
	if _, err := c.db.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("error getting group %s: %w", groupID, err)
	}

	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Email = strings.TrimSpace(u.Email)
	if u.FirstName == "" && u.Email == "" {
		return nil, errors.New("a member needs at least a first name or an email")
	}

	// Reuse an existing user with the same email rather than creating a
	// duplicate, so one person can belong to several groups.
	member := u
	if u.Email != "" {
		existing, err := c.db.GetUserByEmail(ctx, u.Email)
		if err != nil && !errors.Is(err, db.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil {
			member = existing
		}
	}

	if member.ID == "" {
		member.ID = uuid.NewString()
		if err := c.db.AddUser(ctx, member); err != nil {
			return nil, err
		}
	}

	if err := c.db.AddMember(ctx, groupID, member.ID); err != nil {
		return nil, err
	}
	return member, nil
}

func (c *controller) RemoveMember(ctx context.Context, groupID, userID string) error {
	return c.db.RemoveMember(ctx, groupID, userID)
}

func (c *controller) ListMembers(ctx context.Context, groupID string) ([]model.User, error) {
	return c.db.ListMembers(ctx, groupID)
}
