package api

import (
	"encoding/json"
	"net/http"

	"message-board/application"
	"message-board/errors"

	"github.com/go-chi/chi/v5"
)

// POST /users
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var command application.CreateUserCommand
	if err := json.NewDecoder(r.Body).Decode(&command); err != nil {
		s.respondError(w, errors.NewInvalidInput("malformed request body"))
		return
	}
	response, err := s.handlers.CreateUser.Handle(command)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, response)
}

// GET /users/{id}
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	response, err := s.handlers.GetUser.Handle(application.GetUserQuery{
		UserID: chi.URLParam(r, "id"),
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, response)
}

// PUT /users/{id}
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var command application.UpdateUserCommand
	if err := json.NewDecoder(r.Body).Decode(&command); err != nil {
		s.respondError(w, errors.NewInvalidInput("malformed request body"))
		return
	}
	command.UserID = chi.URLParam(r, "id")
	response, err := s.handlers.UpdateUser.Handle(command)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, response)
}

// DELETE /users/{id}
func (s *Server) handleRemoveUser(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.handlers.RemoveUser.Handle(application.RemoveUserCommand{
		UserID: chi.URLParam(r, "id"),
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deleted)
}

// GET /users/{id}/messages
func (s *Server) handleGetAllMessages(w http.ResponseWriter, r *http.Request) {
	responses, err := s.handlers.GetAllMessages.Handle(application.GetAllMessagesQuery{
		UserID: chi.URLParam(r, "id"),
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, responses)
}

// POST /messages
func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var command application.CreateMessageCommand
	if err := json.NewDecoder(r.Body).Decode(&command); err != nil {
		s.respondError(w, errors.NewInvalidInput("malformed request body"))
		return
	}
	response, err := s.handlers.CreateMessage.Handle(command)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, response)
}

// DELETE /messages/{id}
func (s *Server) handleRemoveMessage(w http.ResponseWriter, r *http.Request) {
	_, err := s.handlers.RemoveMessage.Handle(application.RemoveMessageCommand{
		MessageID: chi.URLParam(r, "id"),
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}
