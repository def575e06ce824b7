package model

import (
	"strings"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email,omitempty"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`
}

func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

type Group struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Members []User    `json:"members,omitempty"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}
