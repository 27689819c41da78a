package domain

import "github.com/google/uuid"

// User is an identified account holder. It is built only from validated
// value objects; construct-and-replace, never mutate in place.
type User struct {
	ID    string
	Email Email
	Name  Name
}

// NewUser builds a user with a generated id.
func NewUser(email Email, name Name) User {
	return User{
		ID:    uuid.New().String(),
		Email: email,
		Name:  name,
	}
}

// WithName returns a copy carrying the new name.
func (u User) WithName(name Name) User {
	u.Name = name
	return u
}

// WithEmail returns a copy carrying the new email.
func (u User) WithEmail(email Email) User {
	u.Email = email
	return u
}
