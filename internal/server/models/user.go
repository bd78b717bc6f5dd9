package models

import "time"

// User is a single identity record. PasswordHash is the PHC-encoded
// Argon2id hash; the plaintext password never reaches this struct.
type User struct {
	ID               string
	Name             string
	Email            string
	Username         string
	PasswordHash     string
	IsVerified       bool
	VerificationCode string
	CreatedAt        time.Time
}

// UserRegistered is the cross-context fact published for the profile
// bounded context once a registration completes (the user verified
// their email).
type UserRegistered struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Username string `json:"username"`
}
