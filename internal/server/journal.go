package server

import (
	"net/http"

	"plantcare/internal/service"
)

func (s *Server) createJournalEntry(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "createJournalEntry")

	var input service.JournalInput
	if err := decodeBody(r, &input); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	entry, err := s.journal.CreateEntry(r.Context(), requestUserID(r), input)
	if err != nil {
		log.WithError(err).Warn("failed to create journal entry")
		writeError(w, err)
		return
	}

	log.WithField("entry_id", entry.ID).Info("journal entry created")
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) listJournal(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "listJournal")

	entries, err := s.journal.ListByUser(r.Context(), requestUserID(r))
	if err != nil {
		log.WithError(err).Error("failed to list journal entries")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) listPlantJournal(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "listPlantJournal")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid plant id")
		return
	}
	entries, err := s.journal.ListByPlant(r.Context(), id)
	if err != nil {
		log.WithError(err).WithField("plant_id", id).Error("failed to list plant journal")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) getJournalEntry(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "getJournalEntry")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid entry id")
		return
	}
	entry, err := s.journal.GetEntry(r.Context(), id)
	if err != nil {
		log.WithError(err).WithField("entry_id", id).Warn("failed to get journal entry")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) updateJournalEntry(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "updateJournalEntry")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid entry id")
		return
	}
	var input service.JournalInput
	if err := decodeBody(r, &input); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	entry, err := s.journal.UpdateEntry(r.Context(), id, input)
	if err != nil {
		log.WithError(err).WithField("entry_id", id).Warn("failed to update journal entry")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) deleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "deleteJournalEntry")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid entry id")
		return
	}
	if err := s.journal.DeleteEntry(r.Context(), id); err != nil {
		log.WithError(err).WithField("entry_id", id).Error("failed to delete journal entry")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
