package application

import (
	"message-board/repositories"
	"message-board/services"
)

// Handlers groups every use case handler. It is wired once at process
// start by the composition root; no runtime registry or mediator is
// involved, a use case invocation is a direct method call.
type Handlers struct {
	CreateUser     CreateUserHandler
	UpdateUser     UpdateUserHandler
	RemoveUser     RemoveUserHandler
	CreateMessage  CreateMessageHandler
	RemoveMessage  RemoveMessageHandler
	GetUser        GetUserHandler
	GetAllMessages GetAllMessagesHandler
}

func NewHandlers(
	users services.IUserService,
	messages services.IMessageService,
	userRepository repositories.IUserRepository,
) Handlers {
	return Handlers{
		CreateUser:     NewCreateUserHandler(users),
		UpdateUser:     NewUpdateUserHandler(users),
		RemoveUser:     NewRemoveUserHandler(users),
		CreateMessage:  NewCreateMessageHandler(messages),
		RemoveMessage:  NewRemoveMessageHandler(messages),
		GetUser:        NewGetUserHandler(userRepository),
		GetAllMessages: NewGetAllMessagesHandler(userRepository),
	}
}
