package domain

import "time"

// User is the full identity record as persisted. The Digest field never
// leaves the service layer; callers only ever see UserSummary.
type User struct {
	ID        string
	Email     string // case-normalized, unique
	Name      string
	Role      Role
	Digest    string // derived credential, never the plaintext
	CreatedAt time.Time
}

// Summary strips the credential digest for client-facing views.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// UserSummary is the only user view exposed to callers, even admins.
type UserSummary struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
