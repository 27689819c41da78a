package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"message-board/application"
	"message-board/infrastructure/api"
	"message-board/repositories"
	"message-board/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// baseURL resolves the target instance: an external one via E2E_BASE_URL,
// or a full in-process stack over a throwaway badger directory.
func baseURL(t *testing.T) (string, Config) {
	t.Helper()
	req := require.New(t)

	_ = godotenv.Load()
	cfg, err := LoadConfig()
	req.NoError(err)

	if cfg.BaseURL != "" {
		return cfg.BaseURL, cfg
	}

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromString("INFO")
	userRepository := repositories.NewUserRepository(db, log)
	messageRepository := repositories.NewMessageRepository(db, log)
	userService := services.NewUserService(userRepository)
	messageService := services.NewMessageService(messageRepository, userRepository)
	handlers := application.NewHandlers(userService, messageService, userRepository)
	server := httptest.NewServer(api.NewServer(log, handlers).Router(nil))
	t.Cleanup(server.Close)

	return server.URL, cfg
}

type client struct {
	t       *testing.T
	baseURL string
	cfg     Config
}

func (c client) do(method, path string, body any) (int, []byte) {
	c.t.Helper()
	req := require.New(c.t)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		req.NoError(err)
		reader = bytes.NewReader(data)
	}
	request, err := http.NewRequest(method, c.baseURL+path, reader)
	req.NoError(err)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := http.DefaultClient.Do(request)
	req.NoError(err)
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	req.NoError(err)
	if c.cfg.DebugJSON {
		fmt.Printf("%s %s -> %d %s\n", method, path, response.StatusCode, payload)
	}
	return response.StatusCode, payload
}

func Test_Scenario(t *testing.T) {
	req := require.New(t)
	url, cfg := baseURL(t)
	c := client{t: t, baseURL: url, cfg: cfg}

	// Unique address per run so the scenario can replay against a
	// long-lived external instance.
	address := fmt.Sprintf("john.doe+%d@Example.com", time.Now().UnixNano())

	// 1. Create a user; the stored email must come back normalized.
	status, payload := c.do(http.MethodPost, "/users", map[string]string{
		"name":  "John Doe",
		"email": address,
	})
	req.Equal(http.StatusCreated, status, string(payload))

	var user application.UserResponse
	req.NoError(json.Unmarshal(payload, &user))
	req.NotEmpty(user.ID)
	req.Equal("John Doe", user.Name)
	req.NotContains(user.Email, "J")

	// 2. Same normalized email again: conflict.
	status, payload = c.do(http.MethodPost, "/users", map[string]string{
		"name":  "X",
		"email": user.Email,
	})
	req.Equal(http.StatusConflict, status, string(payload))
	req.Contains(string(payload), "User with this email already exists")

	// 3. Read it back.
	status, payload = c.do(http.MethodGet, "/users/"+user.ID, nil)
	req.Equal(http.StatusOK, status)
	var fetched application.UserResponse
	req.NoError(json.Unmarshal(payload, &fetched))
	req.Equal(user, fetched)

	// 4. Post a message as that user.
	status, payload = c.do(http.MethodPost, "/messages", map[string]string{
		"content": "hi",
		"userId":  user.ID,
	})
	req.Equal(http.StatusCreated, status, string(payload))
	var message application.MessageResponse
	req.NoError(json.Unmarshal(payload, &message))
	req.NotEmpty(message.ID)
	req.Equal("hi", message.Content)
	req.Equal(user.ID, message.UserID)
	req.WithinDuration(time.Now().UTC(), message.CreatedAt, time.Minute)

	// 5. A message for a nonexistent author is refused.
	status, payload = c.do(http.MethodPost, "/messages", map[string]string{
		"content": "hi",
		"userId":  "nonexistent",
	})
	req.Equal(http.StatusNotFound, status)
	req.Contains(string(payload), "User with ID nonexistent not found")

	// 6. The user's feed holds exactly the message we just wrote.
	status, payload = c.do(http.MethodGet, "/users/"+user.ID+"/messages", nil)
	req.Equal(http.StatusOK, status)
	var feed []application.MessageResponse
	req.NoError(json.Unmarshal(payload, &feed))
	req.Len(feed, 1)
	req.Equal(message.ID, feed[0].ID)

	// 7. Partial update: rename without touching the email.
	status, payload = c.do(http.MethodPut, "/users/"+user.ID, map[string]string{
		"name": "Johnny",
	})
	req.Equal(http.StatusOK, status, string(payload))
	var renamed application.UserResponse
	req.NoError(json.Unmarshal(payload, &renamed))
	req.Equal("Johnny", renamed.Name)
	req.Equal(user.Email, renamed.Email)

	// 8. Delete the message, then the user.
	status, payload = c.do(http.MethodDelete, "/messages/"+message.ID, nil)
	req.Equal(http.StatusOK, status)
	req.Contains(string(payload), "Message deleted successfully")

	status, _ = c.do(http.MethodDelete, "/messages/"+message.ID, nil)
	req.Equal(http.StatusNotFound, status)

	status, _ = c.do(http.MethodDelete, "/users/"+user.ID, nil)
	req.Equal(http.StatusOK, status)

	status, _ = c.do(http.MethodGet, "/users/"+user.ID, nil)
	req.Equal(http.StatusNotFound, status)
}
