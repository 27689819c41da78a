//go:generate go run go.uber.org/mock/mockgen -source=user_service.go -destination=../mocks/mock_user_service.go -package=mocks
package services

import (
	"message-board/domain"
	"message-board/errors"
	"message-board/repositories"
)

type IUserService interface {
	CreateUser(email, name string) (domain.User, error)
	UpdateUser(userID string, name, email *string) (domain.User, error)
	RemoveUser(userID string) (bool, error)
}

// UserService enforces the user invariants: validated value objects and
// a unique normalized email across all users. It holds no state besides
// its repository contract, so concurrent calls are independent.
type UserService struct {
	userRepository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{userRepository: repository}
}

func (s *UserService) CreateUser(emailStr, nameStr string) (domain.User, error) {
	// 1. Validate primitives through value objects
	email, err := domain.NewEmail(emailStr)
	if err != nil {
		return domain.User{}, err
	}
	name, err := domain.NewName(nameStr)
	if err != nil {
		return domain.User{}, err
	}

	// 2. Reject duplicated emails before persisting
	existing, err := s.userRepository.FindByEmail(email.Value())
	if err != nil {
		return domain.User{}, err
	}
	if existing != nil {
		return domain.User{}, errors.NewEntityAlreadyExists("User", "email")
	}

	// 3. Persist the new user
	return s.userRepository.Create(domain.NewUser(email, name))
}

// UpdateUser applies partial-update semantics: nil fields are left
// untouched, supplied fields are re-validated and replaced on a copy of
// the loaded entity.
func (s *UserService) UpdateUser(userID string, nameStr, emailStr *string) (domain.User, error) {
	user, err := s.userRepository.FindByID(userID)
	if err != nil {
		return domain.User{}, err
	}
	if user == nil {
		return domain.User{}, errors.NewEntityNotFound("User", userID)
	}

	updated := *user
	if nameStr != nil {
		name, err := domain.NewName(*nameStr)
		if err != nil {
			return domain.User{}, err
		}
		updated = updated.WithName(name)
	}

	if emailStr != nil {
		email, err := domain.NewEmail(*emailStr)
		if err != nil {
			return domain.User{}, err
		}

		// The same user keeping its own email is not a conflict.
		owner, err := s.userRepository.FindByEmail(email.Value())
		if err != nil {
			return domain.User{}, err
		}
		if owner != nil && owner.ID != userID {
			return domain.User{}, errors.NewEntityAlreadyExists("User", "email")
		}
		updated = updated.WithEmail(email)
	}

	return s.userRepository.Update(updated)
}

func (s *UserService) RemoveUser(userID string) (bool, error) {
	user, err := s.userRepository.FindByID(userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, errors.NewEntityNotFound("User", userID)
	}

	return s.userRepository.Delete(user.ID)
}
