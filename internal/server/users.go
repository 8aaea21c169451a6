package server

import (
	"net/http"

	"plantcare/internal/service"
)

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "createUser")

	var input service.UserInput
	if err := decodeBody(r, &input); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), input)
	if err != nil {
		log.WithError(err).Warn("failed to register user")
		writeError(w, err)
		return
	}

	log.WithField("user_id", user.ID).Info("user registered")
	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "getUser")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}
	user, err := s.users.GetUser(r.Context(), id)
	if err != nil {
		log.WithError(err).WithField("user_id", id).Warn("failed to get user")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "updateUser")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}
	var update service.UserUpdate
	if err := decodeBody(r, &update); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	user, err := s.users.UpdateUser(r.Context(), id, update)
	if err != nil {
		log.WithError(err).WithField("user_id", id).Warn("failed to update user")
		writeError(w, err)
		return
	}

	log.WithField("user_id", id).Info("user updated")
	writeJSON(w, http.StatusOK, user)
}
