package service

import (
	"context"
	"fmt"
	"time"

	"plantcare/internal/model"
	"plantcare/internal/repository"
)

// JournalInput represents data required to record a growth journal entry.
type JournalInput struct {
	PlantID      uint
	Title        string
	Notes        string
	ImageURL     string
	HeightCm     *int
	LeafCount    *int
	HealthRating *int
	Date         *time.Time
}

// JournalService wraps growth journal logic.
type JournalService struct {
	journalRepo *repository.JournalRepository
	plantRepo   *repository.PlantRepository
}

func NewJournalService(journalRepo *repository.JournalRepository, plantRepo *repository.PlantRepository) *JournalService {
	return &JournalService{journalRepo: journalRepo, plantRepo: plantRepo}
}

func (s *JournalService) CreateEntry(ctx context.Context, userID uint, input JournalInput) (*model.JournalEntry, error) {
	if input.Title == "" {
		return nil, Invalid("title is required")
	}
	if input.HealthRating != nil && (*input.HealthRating < 1 || *input.HealthRating > 5) {
		return nil, Invalid("health rating must be between 1 and 5")
	}
	if _, err := s.plantRepo.FindByID(ctx, input.PlantID); err != nil {
		return nil, fmt.Errorf("plant %d: %w", input.PlantID, err)
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	entry := model.JournalEntry{
		PlantID:      input.PlantID,
		UserID:       userID,
		Date:         date,
		Title:        input.Title,
		Notes:        input.Notes,
		ImageURL:     input.ImageURL,
		HeightCm:     input.HeightCm,
		LeafCount:    input.LeafCount,
		HealthRating: input.HealthRating,
	}
	if err := s.journalRepo.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *JournalService) GetEntry(ctx context.Context, id uint) (*model.JournalEntry, error) {
	return s.journalRepo.FindByID(ctx, id)
}

func (s *JournalService) ListByPlant(ctx context.Context, plantID uint) ([]model.JournalEntry, error) {
	return s.journalRepo.ListByPlant(ctx, plantID)
}

func (s *JournalService) ListByUser(ctx context.Context, userID uint) ([]model.JournalEntry, error) {
	return s.journalRepo.ListByUser(ctx, userID)
}

func (s *JournalService) UpdateEntry(ctx context.Context, id uint, input JournalInput) (*model.JournalEntry, error) {
	updates := make(map[string]interface{})
	if input.Title != "" {
		updates["title"] = input.Title
	}
	if input.Notes != "" {
		updates["notes"] = input.Notes
	}
	if input.ImageURL != "" {
		updates["image_url"] = input.ImageURL
	}
	if input.HeightCm != nil {
		updates["height_cm"] = *input.HeightCm
	}
	if input.LeafCount != nil {
		updates["leaf_count"] = *input.LeafCount
	}
	if input.HealthRating != nil {
		if *input.HealthRating < 1 || *input.HealthRating > 5 {
			return nil, Invalid("health rating must be between 1 and 5")
		}
		updates["health_rating"] = *input.HealthRating
	}
	if len(updates) == 0 {
		return s.journalRepo.FindByID(ctx, id)
	}
	return s.journalRepo.Update(ctx, id, updates)
}

func (s *JournalService) DeleteEntry(ctx context.Context, id uint) error {
	return s.journalRepo.Delete(ctx, id)
}
