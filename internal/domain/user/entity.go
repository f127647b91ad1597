package user

import (
	"database/sql"
	"time"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// User represents the users table
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	DisplayName  string
	IsAdmin      bool
	AvatarURL    sql.NullString
	Status       string
	LastSeen     time.Time
	CreatedAt    time.Time
}

// Contact is a row of the contacts table joined to the contact's profile.
type Contact struct {
	ID               int64
	Login            string
	DisplayName      string
	AvatarURL        sql.NullString
	Status           string
	SecondsSinceSeen int64
}

// ProfileUpdate carries the mutable user fields. An empty Password keeps the stored hash.
type ProfileUpdate struct {
	UserID       int64
	DisplayName  string
	PasswordHash string
}
