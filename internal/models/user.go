package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public is the shape returned by auth responses: never the hash.
func (u User) Public() map[string]string {
	return map[string]string{"id": u.ID, "username": u.Username, "email": u.Email}
}
