package application

import (
	"message-board/domain"

	"github.com/samber/lo"
)

// ToUserResponse converts a user entity to its external shape.
func ToUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email.Value(),
		Name:  user.Name.Value(),
	}
}

// ToMessageResponse converts a message entity to its external shape.
func ToMessageResponse(message domain.Message) MessageResponse {
	return MessageResponse{
		ID:        message.ID,
		Content:   message.Content,
		UserID:    message.UserID,
		CreatedAt: message.CreatedAt,
	}
}

// ToMessageResponses maps a list of messages, preserving order.
// It always returns a non-nil slice so an empty list serializes as [].
func ToMessageResponses(messages []domain.Message) []MessageResponse {
	if messages == nil {
		return []MessageResponse{}
	}
	return lo.Map(messages, func(message domain.Message, _ int) MessageResponse {
		return ToMessageResponse(message)
	})
}
