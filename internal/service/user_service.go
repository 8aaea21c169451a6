package service

import (
	"context"
	"strings"

	"plantcare/internal/model"
	"plantcare/internal/repository"
)

// UserInput represents data required to register a user.
type UserInput struct {
	Username     string
	FirstName    string
	Email        string
	ReminderTime string
}

// UserUpdate carries a partial user update; nil fields are untouched.
type UserUpdate struct {
	Username       *string
	FirstName      *string
	Email          *string
	ReminderTime   *string
	TelegramChatID *int64
}

// UserService wraps account logic.
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Register(ctx context.Context, input UserInput) (*model.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	if len(input.Username) < 3 {
		return nil, Invalid("username must be at least 3 characters")
	}
	if input.ReminderTime == "" {
		input.ReminderTime = "08:00"
	}
	if !ValidClock(input.ReminderTime) {
		return nil, Invalid("invalid reminder time %q, expected HH:MM", input.ReminderTime)
	}

	user := model.User{
		Username:     input.Username,
		FirstName:    input.FirstName,
		Email:        input.Email,
		ReminderTime: input.ReminderTime,
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, update UserUpdate) (*model.User, error) {
	updates := make(map[string]interface{})
	if update.Username != nil {
		name := strings.TrimSpace(*update.Username)
		if len(name) < 3 {
			return nil, Invalid("username must be at least 3 characters")
		}
		updates["username"] = name
	}
	if update.FirstName != nil {
		updates["first_name"] = *update.FirstName
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.ReminderTime != nil {
		if !ValidClock(*update.ReminderTime) {
			return nil, Invalid("invalid reminder time %q, expected HH:MM", *update.ReminderTime)
		}
		updates["reminder_time"] = *update.ReminderTime
	}
	if update.TelegramChatID != nil {
		updates["telegram_chat_id"] = *update.TelegramChatID
	}
	if len(updates) == 0 {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.Update(ctx, id, updates)
}
