//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"message-board/domain"
	"message-board/errors"

	"github.com/dgraph-io/badger/v4"
)

// IUserRepository is the persistence contract the domain services
// depend on. A nil entity with a nil error means "not found"; only
// infrastructure failures travel through the error value.
type IUserRepository interface {
	FindByID(id string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	GetAllMessages(userID string) ([]domain.Message, error)
	Create(user domain.User) (domain.User, error)
	Update(user domain.User) (domain.User, error)
	Delete(id string) (bool, error)
}

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) IUserRepository {
	return &UserRepository{db: db, log: log}
}

// userRecord is the persisted representation of a user. Both strings
// are already normalized by the value objects before they get here.
type userRecord struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func userKey(id string) []byte {
	return []byte("user:" + id)
}

// userEmailKey is the uniqueness index: one key per normalized email,
// holding the owning user's id.
func userEmailKey(email string) []byte {
	return []byte("user_email:" + email)
}

// FindByID retrieves a user by id, or nil when absent.
func (r *UserRepository) FindByID(id string) (*domain.User, error) {
	var record userRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toUser(record)
}

// FindByEmail resolves the email index, then loads the owning user.
func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	var record userRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userEmailKey(email))
		if err != nil {
			return err
		}
		var ownerID string
		if err = item.Value(func(val []byte) error {
			ownerID = string(val)
			return nil
		}); err != nil {
			return err
		}
		item, err = txn.Get(userKey(ownerID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toUser(record)
}

// GetAllMessages scans the per-user message prefix. Thanks to the
// padded timestamp in the key, messages come back in chronological
// order without sorting.
func (r *UserRepository) GetAllMessages(userID string) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := messageUserPrefix(userID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record messageRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			messages = append(messages, toMessage(record))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Create persists a new user. The email index is re-checked inside the
// write transaction, so a duplicate that slipped past the service-level
// check still surfaces as EntityAlreadyExists, never as an unclassified
// failure.
func (r *UserRepository) Create(user domain.User) (domain.User, error) {
	err := r.db.Update(func(txn *badger.Txn) error {
		emailKey := userEmailKey(user.Email.Value())
		if _, err := txn.Get(emailKey); err == nil {
			return errors.NewEntityAlreadyExists("User", "email")
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		data, err := json.Marshal(fromUser(user))
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		if err = txn.Set(userKey(user.ID), data); err != nil {
			return err
		}
		return txn.Set(emailKey, []byte(user.ID))
	})
	if err != nil {
		return domain.User{}, err
	}
	r.log.Debug("user created", "id", user.ID)
	return user, nil
}

// Update replaces the stored record and moves the email index when the
// address changed, all in one transaction.
func (r *UserRepository) Update(user domain.User) (domain.User, error) {
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(user.ID))
		if err == badger.ErrKeyNotFound {
			return errors.NewEntityNotFound("User", user.ID)
		}
		if err != nil {
			return err
		}
		var current userRecord
		if err = item.Value(func(val []byte) error {
			return json.Unmarshal(val, &current)
		}); err != nil {
			return err
		}

		if current.Email != user.Email.Value() {
			newKey := userEmailKey(user.Email.Value())
			if existing, err := txn.Get(newKey); err == nil {
				var ownerID string
				if err = existing.Value(func(val []byte) error {
					ownerID = string(val)
					return nil
				}); err != nil {
					return err
				}
				if ownerID != user.ID {
					return errors.NewEntityAlreadyExists("User", "email")
				}
			} else if err != badger.ErrKeyNotFound {
				return err
			}
			if err = txn.Delete(userEmailKey(current.Email)); err != nil {
				return err
			}
			if err = txn.Set(newKey, []byte(user.ID)); err != nil {
				return err
			}
		}

		data, err := json.Marshal(fromUser(user))
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set(userKey(user.ID), data)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Delete removes the user and its email index. Returns false without
// error when the user does not exist.
func (r *UserRepository) Delete(id string) (bool, error) {
	deleted := false
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		var record userRecord
		if err = item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		}); err != nil {
			return err
		}
		if err = txn.Delete(userEmailKey(record.Email)); err != nil {
			return err
		}
		if err = txn.Delete(userKey(id)); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func fromUser(user domain.User) userRecord {
	return userRecord{
		ID:    user.ID,
		Email: user.Email.Value(),
		Name:  user.Name.Value(),
	}
}

// toUser rebuilds the entity through the value objects. Stored values
// were validated on the way in, so a failure here means a corrupt
// record, not user input.
func toUser(record userRecord) (*domain.User, error) {
	email, err := domain.NewEmail(record.Email)
	if err != nil {
		return nil, fmt.Errorf("corrupt user record %s: %w", record.ID, err)
	}
	name, err := domain.NewName(record.Name)
	if err != nil {
		return nil, fmt.Errorf("corrupt user record %s: %w", record.ID, err)
	}
	return &domain.User{ID: record.ID, Email: email, Name: name}, nil
}
