// Package application hosts the use cases of the message board: one
// command or query per external intent, one handler per use case.
// Handlers validate the request shape, invoke a single domain-service
// call and map the result; business invariants belong to the services.
package application

import "time"

// UserResponse is the external shape of a user. Value objects are never
// exposed directly; both strings carry normalized values.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// MessageResponse is the external shape of a message.
type MessageResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
