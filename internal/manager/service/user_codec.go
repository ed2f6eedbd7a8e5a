package service

import (
	"encoding/json"
	"time"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
)

// storedUser is the persistence shape of a user record. domain.User carries
// no JSON tags on purpose: the digest must never ride along when a User is
// accidentally marshalled into a response.
type storedUser struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	Digest    string      `json:"digest"`
	CreatedAt time.Time   `json:"createdAt"`
}

func encodeUser(u domain.User) ([]byte, error) {
	return json.Marshal(storedUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Digest:    u.Digest,
		CreatedAt: u.CreatedAt,
	})
}

func decodeUser(raw []byte) (domain.User, error) {
	var su storedUser
	if err := json.Unmarshal(raw, &su); err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:        su.ID,
		Email:     su.Email,
		Name:      su.Name,
		Role:      su.Role,
		Digest:    su.Digest,
		CreatedAt: su.CreatedAt,
	}, nil
}
