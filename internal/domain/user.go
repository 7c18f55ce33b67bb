package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account owned by the external auth service. This service keeps
// only enough of it to anchor habits and points and to label leaderboard rows.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

// DisplayName is how other users see this account on the leaderboard: the
// username, or the local part of the email when no username was chosen.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.Username); name != "" {
		return name
	}
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}
