package server

import (
	"net/http"
	"time"

	"plantcare/internal/schedule"
	"plantcare/internal/service"
)

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "createTask")

	var input service.TaskInput
	if err := decodeBody(r, &input); err != nil {
		log.WithError(err).Warn("invalid request body")
		writeBadRequest(w, "invalid request body")
		return
	}

	task, err := s.tasks.CreateTask(r.Context(), input)
	if err != nil {
		log.WithError(err).Warn("failed to create task")
		writeError(w, err)
		return
	}

	log.WithField("task_id", task.ID).Info("task created")
	writeJSON(w, http.StatusCreated, task)
}

// listTasks serves the pending task list, narrowed to a single calendar
// day when the due query parameter is present.
func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "listTasks")

	if due := r.URL.Query().Get("due"); due != "" {
		day, err := schedule.ParseDay(due)
		if err != nil {
			writeBadRequest(w, "due must be formatted as YYYY-MM-DD")
			return
		}
		tasks, err := s.tasks.ListDueOn(r.Context(), requestUserID(r), day)
		if err != nil {
			log.WithError(err).Error("failed to list due tasks")
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, tasks)
		return
	}

	tasks, err := s.tasks.ListPending(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list tasks")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "getTask")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid task id")
		return
	}
	task, err := s.tasks.GetTask(r.Context(), id)
	if err != nil {
		log.WithError(err).WithField("task_id", id).Warn("failed to get task")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) completeTask(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "completeTask")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid task id")
		return
	}
	task, err := s.tasks.CompleteTask(r.Context(), id, time.Now())
	if err != nil {
		log.WithError(err).WithField("task_id", id).Warn("failed to complete task")
		writeError(w, err)
		return
	}

	log.WithField("task_id", id).Info("task completed")
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "deleteTask")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid task id")
		return
	}
	if err := s.tasks.DeleteTask(r.Context(), id); err != nil {
		log.WithError(err).WithField("task_id", id).Error("failed to delete task")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listPlantTasks(w http.ResponseWriter, r *http.Request) {
	log := s.logEntry(r, "listPlantTasks")

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid plant id")
		return
	}
	tasks, err := s.tasks.ListByPlant(r.Context(), id)
	if err != nil {
		log.WithError(err).WithField("plant_id", id).Error("failed to list plant tasks")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}
