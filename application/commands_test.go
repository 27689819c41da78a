package application

import (
	"testing"

	"message-board/domain"
	"message-board/errors"
	"message-board/mocks"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validatedUser(t *testing.T, id, email, name string) domain.User {
	t.Helper()
	emailVO, err := domain.NewEmail(email)
	require.NoError(t, err)
	nameVO, err := domain.NewName(name)
	require.NoError(t, err)
	return domain.User{ID: id, Email: emailVO, Name: nameVO}
}

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUsers := mocks.NewMockIUserService(ctrl)
	handler := NewCreateUserHandler(mockUsers)

	t.Run("should map the created user to its response shape", func(t *testing.T) {
		req := require.New(t)

		user := validatedUser(t, "uuid-1", "john@example.com", "John Doe")
		mockUsers.EXPECT().
			CreateUser("John@Example.com", "John Doe").
			Return(user, nil).
			Times(1)

		response, err := handler.Handle(CreateUserCommand{Name: "John Doe", Email: "John@Example.com"})

		req.NoError(err)
		req.Equal(UserResponse{ID: "uuid-1", Email: "john@example.com", Name: "John Doe"}, response)
	})

	t.Run("should reject malformed shapes before calling the service", func(t *testing.T) {
		cases := []struct {
			name    string
			command CreateUserCommand
		}{
			{"missing name", CreateUserCommand{Email: "john@example.com"}},
			{"missing email", CreateUserCommand{Name: "John"}},
			{"malformed email", CreateUserCommand{Name: "John", Email: "nope"}},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				req := require.New(t)
				mockUsers.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

				_, err := handler.Handle(c.command)

				req.ErrorIs(err, errors.ErrInvalidInput)
			})
		}
	})

	t.Run("should propagate domain failures unchanged", func(t *testing.T) {
		req := require.New(t)

		domainErr := errors.NewEntityAlreadyExists("User", "email")
		mockUsers.EXPECT().
			CreateUser("john@example.com", "John").
			Return(domain.User{}, domainErr).
			Times(1)

		_, err := handler.Handle(CreateUserCommand{Name: "John", Email: "john@example.com"})

		req.ErrorIs(err, errors.ErrEntityAlreadyExists)
		req.EqualError(err, "User with this email already exists")
	})
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUsers := mocks.NewMockIUserService(ctrl)
	handler := NewUpdateUserHandler(mockUsers)

	t.Run("should forward optional fields as-is", func(t *testing.T) {
		req := require.New(t)

		name := lo.ToPtr("Johnny")
		user := validatedUser(t, "uuid-1", "john@example.com", "Johnny")
		mockUsers.EXPECT().
			UpdateUser("uuid-1", name, nil).
			Return(user, nil).
			Times(1)

		response, err := handler.Handle(UpdateUserCommand{UserID: "uuid-1", Name: name})

		req.NoError(err)
		req.Equal("Johnny", response.Name)
	})

	t.Run("should require a user id", func(t *testing.T) {
		req := require.New(t)
		mockUsers.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := handler.Handle(UpdateUserCommand{Name: lo.ToPtr("Johnny")})

		req.ErrorIs(err, errors.ErrInvalidInput)
	})
}

func TestRemoveUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUsers := mocks.NewMockIUserService(ctrl)
	handler := NewRemoveUserHandler(mockUsers)

	t.Run("should return the store's success boolean", func(t *testing.T) {
		req := require.New(t)
		mockUsers.EXPECT().RemoveUser("uuid-1").Return(true, nil).Times(1)

		deleted, err := handler.Handle(RemoveUserCommand{UserID: "uuid-1"})

		req.NoError(err)
		req.True(deleted)
	})

	t.Run("should propagate not-found unchanged", func(t *testing.T) {
		req := require.New(t)
		mockUsers.EXPECT().
			RemoveUser("ghost").
			Return(false, errors.NewEntityNotFound("User", "ghost")).
			Times(1)

		_, err := handler.Handle(RemoveUserCommand{UserID: "ghost"})

		req.ErrorIs(err, errors.ErrEntityNotFound)
	})
}

func TestCreateMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMessages := mocks.NewMockIMessageService(ctrl)
	handler := NewCreateMessageHandler(mockMessages)

	t.Run("should map the created message", func(t *testing.T) {
		req := require.New(t)

		message := domain.NewMessage("hi", "uuid-1")
		mockMessages.EXPECT().CreateMessage("hi", "uuid-1").Return(message, nil).Times(1)

		response, err := handler.Handle(CreateMessageCommand{Content: "hi", UserID: "uuid-1"})

		req.NoError(err)
		req.Equal(message.ID, response.ID)
		req.Equal("hi", response.Content)
		req.Equal("uuid-1", response.UserID)
		req.True(message.CreatedAt.Equal(response.CreatedAt))
	})

	t.Run("should reject empty content before calling the service", func(t *testing.T) {
		req := require.New(t)
		mockMessages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Times(0)

		_, err := handler.Handle(CreateMessageCommand{UserID: "uuid-1"})

		req.ErrorIs(err, errors.ErrInvalidInput)
	})
}

func TestRemoveMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMessages := mocks.NewMockIMessageService(ctrl)
	handler := NewRemoveMessageHandler(mockMessages)

	t.Run("should delete by id", func(t *testing.T) {
		req := require.New(t)
		mockMessages.EXPECT().DeleteMessage("m1").Return(true, nil).Times(1)

		deleted, err := handler.Handle(RemoveMessageCommand{MessageID: "m1"})

		req.NoError(err)
		req.True(deleted)
	})
}
