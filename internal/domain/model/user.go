package model

import (
	"time"

	"github.com/google/uuid"
)

// Address is the optional postal address stored on a user profile.
// Persisted as a jsonb column.
type Address struct {
	Street     string `json:"street,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
}

// User is a stored account row. The password hash never leaves the data and
// service layers; handlers respond with PublicUser.
type User struct {
	ID             uuid.UUID  `db:"id"              json:"id"`
	Name           string     `db:"name"            json:"name"`
	Email          string     `db:"email"           json:"email"`
	PasswordHash   string     `db:"password_hash"   json:"-"`
	ProfilePicture *string    `db:"profile_picture" json:"profilePicture,omitempty"`
	Age            *int       `db:"age"             json:"age,omitempty"`
	Hobbies        []string   `db:"hobbies"         json:"hobbies,omitempty"`
	Address        *Address   `db:"address"         json:"address,omitempty"`
	CreatedAt      time.Time  `db:"created_at"      json:"createdAt"`
	UpdatedAt      *time.Time `db:"updated_at"      json:"updatedAt,omitempty"`
}

// PublicUser is the externally visible shape of a user account.
type PublicUser struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	ProfilePicture *string    `json:"profilePicture,omitempty"`
	Age            *int       `json:"age,omitempty"`
	Hobbies        []string   `json:"hobbies,omitempty"`
	Address        *Address   `json:"address,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// Public strips the password hash from a user row.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		Age:            u.Age,
		Hobbies:        u.Hobbies,
		Address:        u.Address,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// CreateUserParams carries the fields needed to insert a new account.
// Email must already be normalized to lowercase by the caller.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
}

// UpdateUserFields applies a partial update to a user row. Nil pointers leave
// the column untouched; RemovePicture clears profile_picture explicitly.
type UpdateUserFields struct {
	Name           *string
	ProfilePicture *string
	RemovePicture  bool
	Age            *int
	Hobbies        *[]string
	Address        *Address
}

// IsEmpty reports whether the update would touch no columns.
func (f UpdateUserFields) IsEmpty() bool {
	return f.Name == nil && f.ProfilePicture == nil && !f.RemovePicture &&
		f.Age == nil && f.Hobbies == nil && f.Address == nil
}
