package users

import (
	"time"
)

const (
	emailConflictMsg    = "email is already registered"
	usernameConflictMsg = "username is already taken"
)

// candidate is the slice of a user row relevant to the conflict policy.
type candidate struct {
	Email      string
	Username   string
	IsVerified bool
	CreatedAt  time.Time
}

// conflictMessages applies the registration conflict policy to up to two
// candidate rows (one matching by email, one by username, possibly the
// same row). An unverified candidate older than gracePeriod stopped
// reserving its email/username and is ignored; every other match emits
// a message per colliding attribute.
func conflictMessages(candidates []candidate, email, username string, gracePeriod time.Duration, now time.Time) []string {
	msgs := make([]string, 0, 2)

	for _, c := range candidates {
		if !c.IsVerified && now.Sub(c.CreatedAt) > gracePeriod {
			continue
		}
		if c.Email == email {
			msgs = append(msgs, emailConflictMsg)
		}
		if c.Username == username {
			msgs = append(msgs, usernameConflictMsg)
		}
	}

	return msgs
}
