package application

import (
	"message-board/errors"
	"message-board/services"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateShape turns struct-tag violations into classified InvalidInput
// failures, so malformed requests never reach the domain layer.
func validateShape(request any) error {
	if err := validate.Struct(request); err != nil {
		return errors.NewInvalidInput(err.Error())
	}
	return nil
}

type CreateUserCommand struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type CreateUserHandler struct {
	users services.IUserService
}

func NewCreateUserHandler(users services.IUserService) CreateUserHandler {
	return CreateUserHandler{users: users}
}

func (h CreateUserHandler) Handle(command CreateUserCommand) (UserResponse, error) {
	if err := validateShape(command); err != nil {
		return UserResponse{}, err
	}
	user, err := h.users.CreateUser(command.Email, command.Name)
	if err != nil {
		return UserResponse{}, err
	}
	return ToUserResponse(user), nil
}

// UpdateUserCommand carries partial-update semantics: nil fields are
// left untouched.
type UpdateUserCommand struct {
	UserID string  `json:"-" validate:"required"`
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Email  *string `json:"email" validate:"omitempty,email"`
}

type UpdateUserHandler struct {
	users services.IUserService
}

func NewUpdateUserHandler(users services.IUserService) UpdateUserHandler {
	return UpdateUserHandler{users: users}
}

func (h UpdateUserHandler) Handle(command UpdateUserCommand) (UserResponse, error) {
	if err := validateShape(command); err != nil {
		return UserResponse{}, err
	}
	user, err := h.users.UpdateUser(command.UserID, command.Name, command.Email)
	if err != nil {
		return UserResponse{}, err
	}
	return ToUserResponse(user), nil
}

type RemoveUserCommand struct {
	UserID string `validate:"required"`
}

type RemoveUserHandler struct {
	users services.IUserService
}

func NewRemoveUserHandler(users services.IUserService) RemoveUserHandler {
	return RemoveUserHandler{users: users}
}

func (h RemoveUserHandler) Handle(command RemoveUserCommand) (bool, error) {
	if err := validateShape(command); err != nil {
		return false, err
	}
	return h.users.RemoveUser(command.UserID)
}

type CreateMessageCommand struct {
	Content string `json:"content" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

type CreateMessageHandler struct {
	messages services.IMessageService
}

func NewCreateMessageHandler(messages services.IMessageService) CreateMessageHandler {
	return CreateMessageHandler{messages: messages}
}

func (h CreateMessageHandler) Handle(command CreateMessageCommand) (MessageResponse, error) {
	if err := validateShape(command); err != nil {
		return MessageResponse{}, err
	}
	message, err := h.messages.CreateMessage(command.Content, command.UserID)
	if err != nil {
		return MessageResponse{}, err
	}
	return ToMessageResponse(message), nil
}

type RemoveMessageCommand struct {
	MessageID string `validate:"required"`
}

type RemoveMessageHandler struct {
	messages services.IMessageService
}

func NewRemoveMessageHandler(messages services.IMessageService) RemoveMessageHandler {
	return RemoveMessageHandler{messages: messages}
}

func (h RemoveMessageHandler) Handle(command RemoveMessageCommand) (bool, error) {
	if err := validateShape(command); err != nil {
		return false, err
	}
	return h.messages.DeleteMessage(command.MessageID)
}
