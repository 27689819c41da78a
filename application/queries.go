package application

import (
	"message-board/errors"
	"message-board/repositories"
)

// Queries are read-only and go straight to the repository contract;
// there is no invariant to enforce, so no service sits in between.

type GetUserQuery struct {
	UserID string `validate:"required"`
}

type GetUserHandler struct {
	users repositories.IUserRepository
}

func NewGetUserHandler(users repositories.IUserRepository) GetUserHandler {
	return GetUserHandler{users: users}
}

func (h GetUserHandler) Handle(query GetUserQuery) (UserResponse, error) {
	if err := validateShape(query); err != nil {
		return UserResponse{}, err
	}
	user, err := h.users.FindByID(query.UserID)
	if err != nil {
		return UserResponse{}, err
	}
	if user == nil {
		return UserResponse{}, errors.NewEntityNotFound("User", query.UserID)
	}
	return ToUserResponse(*user), nil
}

type GetAllMessagesQuery struct {
	UserID string `validate:"required"`
}

type GetAllMessagesHandler struct {
	users repositories.IUserRepository
}

func NewGetAllMessagesHandler(users repositories.IUserRepository) GetAllMessagesHandler {
	return GetAllMessagesHandler{users: users}
}

// Handle re-verifies the user exists before listing: an empty feed for
// a real user and a feed for a deleted user must not look alike.
func (h GetAllMessagesHandler) Handle(query GetAllMessagesQuery) ([]MessageResponse, error) {
	if err := validateShape(query); err != nil {
		return nil, err
	}
	user, err := h.users.FindByID(query.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewEntityNotFound("User", query.UserID)
	}
	messages, err := h.users.GetAllMessages(query.UserID)
	if err != nil {
		return nil, err
	}
	return ToMessageResponses(messages), nil
}
