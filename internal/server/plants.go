package server

import (
	"net/http"

	"plantcare/internal/service"
)

type autoWateringRequest struct {
	Enabled bool `json:"enabled"`
}

type reminderTimeRequest struct {
	ReminderTime string `json:"reminderTime"`
}

func (s *Server) createPlant(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "createPlant")

	var input service.PlantInput
	if err := decodeBody(r, &input); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	plant, err := s.plants.CreatePlant(r.Context(), requestUserID(r), input)
	if err != nil {
		log.WithError(err).Error("failed to create plant")
		writeError(w, err)
		return
	}

	log.WithField("plant_id", plant.ID).Info("plant created")
	writeJSON(w, http.StatusCreated, plant)
}

func (s *Server) listPlants(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "listPlants")

	plants, err := s.plants.ListPlants(r.Context(), requestUserID(r))
	if err != nil {
		log.WithError(err).Error("failed to list plants")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plants)
}

func (s *Server) getPlant(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "getPlant")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid plant id")
		return
	}
	plant, err := s.plants.GetPlant(r.Context(), id)
	if err != nil {
		log.WithError(err).WithField("plant_id", id).Warn("failed to get plant")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plant)
}

func (s *Server) updatePlant(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "updatePlant")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid plant id")
		return
	}
	var update service.PlantUpdate
	if err := decodeBody(r, &update); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	plant, err := s.plants.UpdatePlant(r.Context(), id, update)
	if err != nil {
		log.WithError(err).WithField("plant_id", id).Warn("failed to update plant")
		writeError(w, err)
		return
	}

	log.WithField("plant_id", id).Info("plant updated")
	writeJSON(w, http.StatusOK, plant)
}

func (s *Server) deletePlant(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "deletePlant")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid plant id")
		return
	}
	if err := s.plants.DeletePlant(r.Context(), id); err != nil {
		log.WithError(err).WithField("plant_id", id).Error("failed to delete plant")
		writeError(w, err)
		return
	}

	log.WithField("plant_id", id).Info("plant deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setAutoWatering(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "setAutoWatering")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid plant id")
		return
	}
	var req autoWateringRequest
	if err := decodeBody(r, &req); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	plant, created, err := s.plants.SetAutoWatering(r.Context(), id, req.Enabled)
	if err != nil {
		log.WithError(err).WithField("plant_id", id).Warn("failed to toggle auto-watering")
		writeError(w, err)
		return
	}

	log.WithFields(map[string]interface{}{
		"plant_id":      id,
		"enabled":       req.Enabled,
		"tasks_created": len(created),
	}).Info("auto-watering toggled")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"plant":        plant,
		"tasksCreated": created,
	})
}

func (s *Server) setPlantReminderTime(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "setPlantReminderTime")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid plant id")
		return
	}
	var req reminderTimeRequest
	if err := decodeBody(r, &req); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	plant, err := s.plants.SetReminderTime(r.Context(), id, req.ReminderTime)
	if err != nil {
		log.WithError(err).WithField("plant_id", id).Warn("failed to set reminder time")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plant)
}

func (s *Server) getPlantLabel(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "getPlantLabel")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid plant id")
		return
	}
	label, err := s.plants.Label(r.Context(), id)
	if err != nil {
		log.WithError(err).WithField("plant_id", id).Warn("failed to build label")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, label)
}

func (s *Server) getSharedPlant(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "getSharedPlant")

	token := r.PathValue("token")
	plant, err := s.plants.GetPlantByShareToken(r.Context(), token)
	if err != nil {
		log.WithError(err).Warn("failed to resolve share token")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plant)
}
