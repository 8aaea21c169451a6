package server

import "net/http"

func (s *Server) listBadges(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "listBadges")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}
	badges, err := s.badges.BadgesForUser(r.Context(), id)
	if err != nil {
		log.WithError(err).WithField("user_id", id).Error("failed to compute badges")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, badges)
}
