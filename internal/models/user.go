package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the full users row. The API only ever reads it through
// UserSummary or UserDetail.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID        string    `bun:"id,pk" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email,unique,notnull" json:"email"`
	Bio       *string   `bun:"bio" json:"bio"`
	Location  *string   `bun:"location" json:"location"`
	Website   *string   `bun:"website" json:"website"`
	Company   *string   `bun:"company" json:"company"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"-"`
}

// UserSummary is the list projection.
type UserSummary struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       string  `bun:"id,pk" json:"id"`
	Name     string  `bun:"name" json:"name"`
	Email    string  `bun:"email" json:"email"`
	Bio      *string `bun:"bio" json:"bio"`
	Location *string `bun:"location" json:"location"`
}

// UserDetail is the single-user projection: the summary fields plus
// website and company.
type UserDetail struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       string  `bun:"id,pk" json:"id"`
	Name     string  `bun:"name" json:"name"`
	Email    string  `bun:"email" json:"email"`
	Bio      *string `bun:"bio" json:"bio"`
	Location *string `bun:"location" json:"location"`
	Website  *string `bun:"website" json:"website"`
	Company  *string `bun:"company" json:"company"`
}

// Summary narrows a detail record to the list projection.
func (d UserDetail) Summary() UserSummary {
	return UserSummary{
		ID:       d.ID,
		Name:     d.Name,
		Email:    d.Email,
		Bio:      d.Bio,
		Location: d.Location,
	}
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
