package service

import (
	"context"

	"plantcare/internal/model"
	"plantcare/internal/repository"
)

// BadgeStats are the activity counts badges are derived from.
type BadgeStats struct {
	Plants         int
	CompletedTasks int
	Waterings      int
	JournalEntries int
	TipsShared     int
}

// BadgeService computes badge progress from stored activity. Badges are
// derived on request, never persisted.
type BadgeService struct {
	plantRepo     *repository.PlantRepository
	taskRepo      *repository.TaskRepository
	journalRepo   *repository.JournalRepository
	communityRepo *repository.CommunityRepository
}

func NewBadgeService(
	plantRepo *repository.PlantRepository,
	taskRepo *repository.TaskRepository,
	journalRepo *repository.JournalRepository,
	communityRepo *repository.CommunityRepository,
) *BadgeService {
	return &BadgeService{
		plantRepo:     plantRepo,
		taskRepo:      taskRepo,
		journalRepo:   journalRepo,
		communityRepo: communityRepo,
	}
}

func (s *BadgeService) BadgesForUser(ctx context.Context, userID uint) ([]model.Badge, error) {
	plants, err := s.plantRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(plants))
	for _, p := range plants {
		ids = append(ids, p.ID)
	}
	tasks, err := s.taskRepo.ListByPlants(ctx, ids)
	if err != nil {
		return nil, err
	}

	journalCount, err := s.journalRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	tipCount, err := s.communityRepo.CountTipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := BadgeStats{
		Plants:         len(plants),
		JournalEntries: int(journalCount),
		TipsShared:     int(tipCount),
	}
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		stats.CompletedTasks++
		if t.Type == model.TaskWater {
			stats.Waterings++
		}
	}

	return buildBadges(stats), nil
}

type badgeRule struct {
	id          string
	name        string
	description string
	category    string
	target      int
	count       func(BadgeStats) int
}

var badgeRules = []badgeRule{
	{"first-plant", "First Sprout", "Add your first plant", model.BadgeCollection, 1,
		func(s BadgeStats) int { return s.Plants }},
	{"plant-collector", "Collector", "Grow a collection of 5 plants", model.BadgeCollection, 5,
		func(s BadgeStats) int { return s.Plants }},
	{"greenhouse", "Greenhouse", "Grow a collection of 10 plants", model.BadgeCollection, 10,
		func(s BadgeStats) int { return s.Plants }},
	{"first-watering", "First Drop", "Complete your first watering", model.BadgeCare, 1,
		func(s BadgeStats) int { return s.Waterings }},
	{"watering-pro", "Watering Pro", "Complete 25 waterings", model.BadgeCare, 25,
		func(s BadgeStats) int { return s.Waterings }},
	{"caretaker", "Caretaker", "Complete 50 care tasks of any kind", model.BadgeCare, 50,
		func(s BadgeStats) int { return s.CompletedTasks }},
	{"first-entry", "Field Notes", "Write your first journal entry", model.BadgeJournal, 1,
		func(s BadgeStats) int { return s.JournalEntries }},
	{"chronicler", "Chronicler", "Write 10 journal entries", model.BadgeJournal, 10,
		func(s BadgeStats) int { return s.JournalEntries }},
	{"first-tip", "Good Neighbour", "Share your first tip", model.BadgeCommunity, 1,
		func(s BadgeStats) int { return s.TipsShared }},
	{"green-influencer", "Green Influencer", "Share 5 tips", model.BadgeCommunity, 5,
		func(s BadgeStats) int { return s.TipsShared }},
}

func buildBadges(stats BadgeStats) []model.Badge {
	badges := make([]model.Badge, 0, len(badgeRules))
	for _, rule := range badgeRules {
		count := rule.count(stats)
		progress := count
		if progress > rule.target {
			progress = rule.target
		}
		badges = append(badges, model.Badge{
			ID:          rule.id,
			Name:        rule.name,
			Description: rule.description,
			Category:    rule.category,
			Unlocked:    count >= rule.target,
			Progress:    progress,
			MaxProgress: rule.target,
		})
	}
	return badges
}
