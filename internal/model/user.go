package model

import "time"

// User is the profile record behind the account pages.
// Authentication itself is owned by the upstream identity provider;
// this record only carries displayable profile fields.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Headline  string    `json:"headline"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
