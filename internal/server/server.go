package server

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"plantcare/internal/middleware"
	"plantcare/internal/service"
)

// Server holds the HTTP handlers for the care tracker API.
type Server struct {
	users     *service.UserService
	plants    *service.PlantService
	tasks     *service.TaskService
	journal   *service.JournalService
	community *service.CommunityService
	badges    *service.BadgeService
	logger    *logrus.Logger
}

func New(
	users *service.UserService,
	plants *service.PlantService,
	tasks *service.TaskService,
	journal *service.JournalService,
	community *service.CommunityService,
	badges *service.BadgeService,
	logger *logrus.Logger,
) *Server {
	return &Server{
		users:     users,
		plants:    plants,
		tasks:     tasks,
		journal:   journal,
		community: community,
		badges:    badges,
		logger:    logger,
	}
}

// Handler builds the route table and wraps it in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users", s.createUser)
	mux.HandleFunc("GET /api/users/{id}", s.getUser)
	mux.HandleFunc("PATCH /api/users/{id}", s.updateUser)
	mux.HandleFunc("GET /api/users/{id}/badges", s.listBadges)

	mux.HandleFunc("POST /api/plants", s.createPlant)
	mux.HandleFunc("GET /api/plants", s.listPlants)
	mux.HandleFunc("GET /api/plants/{id}", s.getPlant)
	mux.HandleFunc("PATCH /api/plants/{id}", s.updatePlant)
	mux.HandleFunc("DELETE /api/plants/{id}", s.deletePlant)
	mux.HandleFunc("PATCH /api/plants/{id}/auto-watering", s.setAutoWatering)
	mux.HandleFunc("PATCH /api/plants/{id}/reminder-time", s.setPlantReminderTime)
	mux.HandleFunc("GET /api/plants/{id}/label", s.getPlantLabel)
	mux.HandleFunc("GET /api/plants/{id}/tasks", s.listPlantTasks)
	mux.HandleFunc("GET /api/plants/{id}/journal", s.listPlantJournal)
	mux.HandleFunc("GET /shared/plants/{token}", s.getSharedPlant)

	mux.HandleFunc("POST /api/tasks", s.createTask)
	mux.HandleFunc("GET /api/tasks", s.listTasks)
	mux.HandleFunc("GET /api/tasks/{id}", s.getTask)
	mux.HandleFunc("POST /api/tasks/{id}/complete", s.completeTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.deleteTask)

	mux.HandleFunc("POST /api/journal", s.createJournalEntry)
	mux.HandleFunc("GET /api/journal", s.listJournal)
	mux.HandleFunc("GET /api/journal/{id}", s.getJournalEntry)
	mux.HandleFunc("PATCH /api/journal/{id}", s.updateJournalEntry)
	mux.HandleFunc("DELETE /api/journal/{id}", s.deleteJournalEntry)

	mux.HandleFunc("POST /api/community/tips", s.createTip)
	mux.HandleFunc("GET /api/community/tips", s.listTips)
	mux.HandleFunc("GET /api/community/tips/popular", s.listPopularTips)
	mux.HandleFunc("GET /api/community/tips/{id}", s.getTip)
	mux.HandleFunc("DELETE /api/community/tips/{id}", s.deleteTip)
	mux.HandleFunc("POST /api/community/tips/{id}/vote", s.voteTip)
	mux.HandleFunc("POST /api/community/tips/{id}/comments", s.addComment)
	mux.HandleFunc("GET /api/community/tips/{id}/comments", s.listComments)
	mux.HandleFunc("POST /api/community/comments/{id}/like", s.likeComment)
	mux.HandleFunc("DELETE /api/community/comments/{id}", s.deleteComment)

	mux.HandleFunc("GET /api/health", s.health)
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	handler := middleware.Metrics(mux)
	handler = middleware.Logging(s.logger)(handler)
	handler = middleware.RequestID(handler)
	return handler
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logEntry(r *http.Request, handler string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"component":  "http",
		"handler":    handler,
		"request_id": middleware.GetRequestID(r.Context()),
	})
}
