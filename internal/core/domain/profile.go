package domain

import "time"

// ProfileRecord is the document mirrored into the profile store for every
// identity. Timestamps are assigned by the store on write, so CreatedAt and
// UpdatedAt are only populated on reads.
type ProfileRecord struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Owner     bool      `json:"owner"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
