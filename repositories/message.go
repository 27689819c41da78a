//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"message-board/domain"

	"github.com/dgraph-io/badger/v4"
)

// IMessageRepository is the persistence contract for messages. Same
// sentinel convention as IUserRepository: nil entity, nil error means
// "not found".
type IMessageRepository interface {
	FindByID(id string) (*domain.Message, error)
	Create(message domain.Message) (domain.Message, error)
	Delete(id string) (bool, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) IMessageRepository {
	return &MessageRepository{db: db, log: log}
}

// messageRecord is the persisted representation of a message.
// CreatedAt is stored as nanoseconds since epoch.
type messageRecord struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	UserID    string `json:"userId"`
	CreatedAt int64  `json:"createdAt"`
}

// messageKey is formatted as "msg:{user_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order) within a user's prefix.
//  2. Prevent key collisions if two messages arrive at the same
//     nanosecond, using the message id as disconnector.
func messageKey(message domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s",
		message.UserID,
		message.CreatedAt.UnixNano(),
		message.ID,
	))
}

func messageUserPrefix(userID string) []byte {
	return []byte(fmt.Sprintf("msg:%s:", userID))
}

// messageIDKey is the secondary index resolving a message id to its
// primary key, needed for read-by-id and delete.
func messageIDKey(id string) []byte {
	return []byte("msg_id:" + id)
}

// FindByID resolves the id index, then loads the message itself.
func (m *MessageRepository) FindByID(id string) (*domain.Message, error) {
	var record messageRecord
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(messageIDKey(id))
		if err != nil {
			return err
		}
		var primaryKey []byte
		if err = item.Value(func(val []byte) error {
			primaryKey = append([]byte{}, val...)
			return nil
		}); err != nil {
			return err
		}
		item, err = txn.Get(primaryKey)
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
	message := toMessage(record)
	return &message, nil
}

// Create persists the message under its chronological key and indexes
// it by id in the same transaction.
func (m *MessageRepository) Create(message domain.Message) (domain.Message, error) {
	data, err := json.Marshal(fromMessage(message))
	if err != nil {
		return domain.Message{}, fmt.Errorf("marshal failed: %w", err)
	}
	key := messageKey(message)
	err = m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(messageIDKey(message.ID), key)
	})
	if err != nil {
		return domain.Message{}, err
	}
	m.log.Debug("message created", "id", message.ID, "userId", message.UserID)
	return message, nil
}

// Delete removes the message and its id index. Returns false without
// error when the message does not exist.
func (m *MessageRepository) Delete(id string) (bool, error) {
	deleted := false
	err := m.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(messageIDKey(id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		var primaryKey []byte
		if err = item.Value(func(val []byte) error {
			primaryKey = append([]byte{}, val...)
			return nil
		}); err != nil {
			return err
		}
		if err = txn.Delete(primaryKey); err != nil {
			return err
		}
		if err = txn.Delete(messageIDKey(id)); err != nil {
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

func fromMessage(message domain.Message) messageRecord {
	return messageRecord{
		ID:        message.ID,
		Content:   message.Content,
		UserID:    message.UserID,
		CreatedAt: message.CreatedAt.UnixNano(),
	}
}

func toMessage(record messageRecord) domain.Message {
	return domain.Message{
		ID:        record.ID,
		Content:   record.Content,
		UserID:    record.UserID,
		CreatedAt: time.Unix(0, record.CreatedAt).UTC(),
	}
}
