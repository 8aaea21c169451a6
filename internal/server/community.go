package server

import (
	"net/http"
	"strconv"

	"plantcare/internal/service"
)

type voteRequest struct {
	Value int `json:"value"`
}

type commentRequest struct {
	Content string `json:"content"`
}

func (s *Server) createTip(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "createTip")

	var input service.TipInput
	if err := decodeBody(r, &input); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	tip, err := s.community.CreateTip(r.Context(), requestUserID(r), input)
	if err != nil {
		log.WithError(err).Warn("failed to create tip")
		writeError(w, err)
		return
	}

	log.WithField("tip_id", tip.ID).Info("tip created")
	writeJSON(w, http.StatusCreated, tip)
}

func (s *Server) listTips(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "listTips")

	q := r.URL.Query()
	tips, err := s.community.ListTips(r.Context(), q.Get("category"), q.Get("q"))
	if err != nil {
		log.WithError(err).Error("failed to list tips")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tips)
}

func (s *Server) listPopularTips(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "listPopularTips")

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	tips, err := s.community.PopularTips(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("failed to list popular tips")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tips)
}

func (s *Server) getTip(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "getTip")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid tip id")
		return
	}
	tip, err := s.community.GetTip(r.Context(), id)
	if err != nil {
		log.WithError(err).WithField("tip_id", id).Warn("failed to get tip")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tip)
}

func (s *Server) deleteTip(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "deleteTip")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid tip id")
		return
	}
	if err := s.community.DeleteTip(r.Context(), id); err != nil {
		log.WithError(err).WithField("tip_id", id).Error("failed to delete tip")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) voteTip(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "voteTip")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid tip id")
		return
	}
	var req voteRequest
	if err := decodeBody(r, &req); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	tip, err := s.community.VoteTip(r.Context(), id, req.Value)
	if err != nil {
		log.WithError(err).WithField("tip_id", id).Warn("failed to vote")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tip)
}

func (s *Server) addComment(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "addComment")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid tip id")
		return
	}
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	comment, err := s.community.AddComment(r.Context(), requestUserID(r), id, req.Content)
	if err != nil {
		log.WithError(err).WithField("tip_id", id).Warn("failed to add comment")
		writeError(w, err)
		return
	}

	log.WithField("comment_id", comment.ID).Info("comment added")
	writeJSON(w, http.StatusCreated, comment)
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "listComments")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid tip id")
		return
	}
	comments, err := s.community.ListComments(r.Context(), id)
	if err != nil {
		log.WithError(err).WithField("tip_id", id).Error("failed to list comments")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) likeComment(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "likeComment")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid comment id")
		return
	}
	comment, err := s.community.LikeComment(r.Context(), id)
	if err != nil {
		log.WithError(err).WithField("comment_id", id).Warn("failed to like comment")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "deleteComment")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid comment id")
		return
	}
	if err := s.community.DeleteComment(r.Context(), id); err != nil {
		log.WithError(err).WithField("comment_id", id).Error("failed to delete comment")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
