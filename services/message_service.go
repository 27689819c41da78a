//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"message-board/domain"
	"message-board/errors"
	"message-board/repositories"
)

type IMessageService interface {
	CreateMessage(content, userID string) (domain.Message, error)
	DeleteMessage(id string) (bool, error)
}

// MessageService enforces the single message invariant: a message must
// reference an existing user at creation time. Nothing is re-checked
// afterwards.
type MessageService struct {
	messageRepository repositories.IMessageRepository
	userRepository    repositories.IUserRepository
}

func NewMessageService(
	messageRepository repositories.IMessageRepository,
	userRepository repositories.IUserRepository,
) IMessageService {
	return &MessageService{
		messageRepository: messageRepository,
		userRepository:    userRepository,
	}
}

func (s *MessageService) CreateMessage(content, userID string) (domain.Message, error) {
	// 1. The referenced author must exist
	user, err := s.userRepository.FindByID(userID)
	if err != nil {
		return domain.Message{}, err
	}
	if user == nil {
		return domain.Message{}, errors.NewEntityNotFound("User", userID)
	}

	// 2. Persist the new message
	return s.messageRepository.Create(domain.NewMessage(content, userID))
}

func (s *MessageService) DeleteMessage(id string) (bool, error) {
	message, err := s.messageRepository.FindByID(id)
	if err != nil {
		return false, err
	}
	if message == nil {
		return false, errors.NewEntityNotFound("Message", id)
	}

	return s.messageRepository.Delete(message.ID)
}
