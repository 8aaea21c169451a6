package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"plantcare/internal/config"
	"plantcare/internal/notifier"
	"plantcare/internal/repository"
	"plantcare/internal/schedule"
	"plantcare/internal/server"
	"plantcare/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	plantRepo := repository.NewPlantRepository(db)
	taskRepo := repository.NewTaskRepository(db, loc)
	journalRepo := repository.NewJournalRepository(db)
	communityRepo := repository.NewCommunityRepository(db)

	var channels notifier.Multi
	if cfg.MailEnabled() {
		channels = append(channels, notifier.NewMail(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom, logger))
	}
	if cfg.TelegramToken != "" {
		tg, err := notifier.NewTelegram(cfg.TelegramToken, logger)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		channels = append(channels, tg)
	}

	planner := schedule.NewPlanner(loc)

	userSvc := service.NewUserService(userRepo)
	plantSvc := service.NewPlantService(plantRepo, taskRepo, userRepo, planner, channels, cfg.WateringHorizon, logger)
	taskSvc := service.NewTaskService(taskRepo, plantRepo, planner, cfg.WateringHorizon, logger)
	journalSvc := service.NewJournalService(journalRepo, plantRepo)
	communitySvc := service.NewCommunityService(communityRepo)
	badgeSvc := service.NewBadgeService(plantRepo, taskRepo, journalRepo, communityRepo)
	reminderSvc := service.NewReminderService(userRepo, plantRepo, taskRepo, planner, channels, logger)

	scheduler := service.NewSchedulerService(loc)
	if cfg.ReminderCheckInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.ReminderCheckInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := reminderSvc.CheckDue(jobCtx, time.Now()); err != nil && !errors.Is(err, context.Canceled) {
				logger.WithError(err).Error("reminder sweep failed")
			}
		}); err != nil {
			log.Fatalf("schedule reminders: %v", err)
		}
	}
	if _, err := scheduler.ScheduleDaily("03:00", func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		n, err := plantSvc.RefillWateringHorizons(jobCtx, time.Now())
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.WithError(err).Error("horizon refill failed")
			return
		}
		logger.WithField("tasks_created", n).Info("watering horizons refilled")
	}); err != nil {
		log.Fatalf("schedule horizon refill: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	api := server.New(userSvc, plantSvc, taskSvc, journalSvc, communitySvc, badgeSvc, logger)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("shutdown failed")
		}
	}()

	logger.WithField("addr", cfg.HTTPAddr).Info("plant care server started")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped with error: %v", err)
	}
	logger.Info("shutdown complete")
}
