package repositories

import (
	"log/slog"
	"testing"
	"time"

	"message-board/domain"
	"message-board/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func mustUser(t *testing.T, email, name string) domain.User {
	t.Helper()
	emailVO, err := domain.NewEmail(email)
	require.NoError(t, err)
	nameVO, err := domain.NewName(name)
	require.NoError(t, err)
	return domain.NewUser(emailVO, nameVO)
}

func Test_Create_And_Find_User(t *testing.T) {
	req := require.New(t)
	db := openTestBadger(t)
	repository := NewUserRepository(db, slog.Default())

	user := mustUser(t, "john@example.com", "John Doe")
	created, err := repository.Create(user)
	req.NoError(err)
	req.Equal(user, created)

	byID, err := repository.FindByID(user.ID)
	req.NoError(err)
	req.NotNil(byID)
	req.Equal(user, *byID)

	byEmail, err := repository.FindByEmail("john@example.com")
	req.NoError(err)
	req.NotNil(byEmail)
	req.Equal(user.ID, byEmail.ID)
}

func Test_Find_Unknown_User_Returns_Nil(t *testing.T) {
	req := require.New(t)
	db := openTestBadger(t)
	repository := NewUserRepository(db, slog.Default())

	byID, err := repository.FindByID("nonexistent")
	req.NoError(err)
	req.Nil(byID)

	byEmail, err := repository.FindByEmail("ghost@example.com")
	req.NoError(err)
	req.Nil(byEmail)
}

func Test_Create_Duplicate_Email_Is_Classified(t *testing.T) {
	req := require.New(t)
	db := openTestBadger(t)
	repository := NewUserRepository(db, slog.Default())

	_, err := repository.Create(mustUser(t, "john@example.com", "John"))
	req.NoError(err)

	// Same normalized email, different id: the store must classify the
	// duplicate itself, even when the service-level check was skipped.
	_, err = repository.Create(mustUser(t, "john@example.com", "Impostor"))
	req.ErrorIs(err, errors.ErrEntityAlreadyExists)
}

func Test_Update_Moves_Email_Index(t *testing.T) {
	req := require.New(t)
	db := openTestBadger(t)
	repository := NewUserRepository(db, slog.Default())

	user, err := repository.Create(mustUser(t, "john@example.com", "John"))
	req.NoError(err)

	newEmail, err := domain.NewEmail("john.doe@example.com")
	req.NoError(err)
	updated, err := repository.Update(user.WithEmail(newEmail))
	req.NoError(err)
	req.Equal("john.doe@example.com", updated.Email.Value())

	// Old index gone, new one resolves.
	old, err := repository.FindByEmail("john@example.com")
	req.NoError(err)
	req.Nil(old)

	current, err := repository.FindByEmail("john.doe@example.com")
	req.NoError(err)
	req.NotNil(current)
	req.Equal(user.ID, current.ID)
}

func Test_Update_Rejects_Email_Owned_By_Another_User(t *testing.T) {
	req := require.New(t)
	db := openTestBadger(t)
	repository := NewUserRepository(db, slog.Default())

	_, err := repository.Create(mustUser(t, "john@example.com", "John"))
	req.NoError(err)
	jane, err := repository.Create(mustUser(t, "jane@example.com", "Jane"))
	req.NoError(err)

	taken, err := domain.NewEmail("john@example.com")
	req.NoError(err)
	_, err = repository.Update(jane.WithEmail(taken))
	req.ErrorIs(err, errors.ErrEntityAlreadyExists)
}

func Test_Update_Same_Email_Is_Not_A_Conflict(t *testing.T) {
	req := require.New(t)
	db := openTestBadger(t)
	repository := NewUserRepository(db, slog.Default())

	user, err := repository.Create(mustUser(t, "john@example.com", "John"))
	req.NoError(err)

	renamed, err := domain.NewName("Johnny")
	req.NoError(err)
	updated, err := repository.Update(user.WithName(renamed))
	req.NoError(err)
	req.Equal("Johnny", updated.Name.Value())
	req.Equal("john@example.com", updated.Email.Value())
}

func Test_Delete_User(t *testing.T) {
	req := require.New(t)
	db := openTestBadger(t)
	repository := NewUserRepository(db, slog.Default())

	user, err := repository.Create(mustUser(t, "john@example.com", "John"))
	req.NoError(err)

	deleted, err := repository.Delete(user.ID)
	req.NoError(err)
	req.True(deleted)

	byID, err := repository.FindByID(user.ID)
	req.NoError(err)
	req.Nil(byID)

	// Email index must be gone too, freeing the address.
	byEmail, err := repository.FindByEmail("john@example.com")
	req.NoError(err)
	req.Nil(byEmail)

	again, err := repository.Delete(user.ID)
	req.NoError(err)
	req.False(again)
}

func Test_GetAllMessages_Is_Chronological_Per_User(t *testing.T) {
	req := require.New(t)
	db := openTestBadger(t)
	userRepository := NewUserRepository(db, slog.Default())
	messageRepository := NewMessageRepository(db, slog.Default())

	john := mustUser(t, "john@example.com", "John")
	jane := mustUser(t, "jane@example.com", "Jane")
	at := time.Now().UTC().Truncate(time.Nanosecond)

	messages := []domain.Message{
		{ID: "m1", Content: "first", UserID: john.ID, CreatedAt: at},
		{ID: "m2", Content: "second", UserID: john.ID, CreatedAt: at.Add(1 * time.Minute)},
		{ID: "m3", Content: "third", UserID: john.ID, CreatedAt: at.Add(2 * time.Minute)},
		{ID: "m4", Content: "other feed", UserID: jane.ID, CreatedAt: at},
	}
	for _, message := range messages {
		_, err := messageRepository.Create(message)
		req.NoError(err)
	}

	fetched, err := userRepository.GetAllMessages(john.ID)
	req.NoError(err)
	req.Equal([]domain.Message{messages[0], messages[1], messages[2]}, fetched)

	empty, err := userRepository.GetAllMessages("nobody")
	req.NoError(err)
	req.Empty(empty)
}
