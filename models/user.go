package models

import "time"

// User is a phone-first account created on the first successful OTP login.
type User struct {
	ID          string    `bson:"id" json:"id"`
	PhoneNumber string    `bson:"phone_number" json:"phone_number"`
	Name        string    `bson:"name,omitempty" json:"name"`
	Email       string    `bson:"email,omitempty" json:"email"`
	TokenHash   string    `bson:"token_hash,omitempty" json:"-"` // hash of the active JWT, DB fallback for the auth cache
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// AuthResult is returned after a successful OTP verification.
type AuthResult struct {
	Token        string `json:"token"`
	User         User   `json:"user"`
	IsFirstLogin bool   `json:"is_first_login"`
}
