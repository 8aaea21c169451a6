package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"plantcare/internal/model"
	"plantcare/internal/repository"
)

// TipInput represents data required to share a community tip.
type TipInput struct {
	Title        string
	Content      string
	PlantSpecies string
	Category     string
	Tags         string
	ImageURL     string
}

// CommunityService wraps the tips board logic.
type CommunityService struct {
	repo *repository.CommunityRepository
}

func NewCommunityService(repo *repository.CommunityRepository) *CommunityService {
	return &CommunityService{repo: repo}
}

func (s *CommunityService) CreateTip(ctx context.Context, userID uint, input TipInput) (*model.CommunityTip, error) {
	if n := utf8.RuneCountInString(input.Title); n < 5 || n > 100 {
		return nil, Invalid("title must be 5 to 100 characters")
	}
	if n := utf8.RuneCountInString(input.Content); n < 20 || n > 5000 {
		return nil, Invalid("content must be 20 to 5000 characters")
	}

	tip := model.CommunityTip{
		UserID:       userID,
		Title:        input.Title,
		Content:      input.Content,
		PlantSpecies: input.PlantSpecies,
		Category:     input.Category,
		Tags:         input.Tags,
		ImageURL:     input.ImageURL,
	}
	if err := s.repo.CreateTip(ctx, &tip); err != nil {
		return nil, err
	}
	return &tip, nil
}

func (s *CommunityService) GetTip(ctx context.Context, id uint) (*model.CommunityTip, error) {
	return s.repo.FindTipByID(ctx, id)
}

func (s *CommunityService) ListTips(ctx context.Context, category, query string) ([]model.CommunityTip, error) {
	switch {
	case query != "":
		return s.repo.SearchTips(ctx, query)
	case category != "":
		return s.repo.ListTipsByCategory(ctx, category)
	default:
		return s.repo.ListTips(ctx)
	}
}

func (s *CommunityService) PopularTips(ctx context.Context, limit int) ([]model.CommunityTip, error) {
	return s.repo.ListPopularTips(ctx, limit)
}

// VoteTip records an up or down vote on a tip.
func (s *CommunityService) VoteTip(ctx context.Context, id uint, value int) (*model.CommunityTip, error) {
	if value != 1 && value != -1 {
		return nil, Invalid("vote must be +1 or -1")
	}
	return s.repo.VoteTip(ctx, id, value)
}

func (s *CommunityService) DeleteTip(ctx context.Context, id uint) error {
	return s.repo.DeleteTip(ctx, id)
}

func (s *CommunityService) AddComment(ctx context.Context, userID, tipID uint, content string) (*model.CommunityComment, error) {
	if n := utf8.RuneCountInString(content); n < 3 || n > 1000 {
		return nil, Invalid("comment must be 3 to 1000 characters")
	}
	if _, err := s.repo.FindTipByID(ctx, tipID); err != nil {
		return nil, fmt.Errorf("tip %d: %w", tipID, err)
	}

	comment := model.CommunityComment{TipID: tipID, UserID: userID, Content: content}
	if err := s.repo.CreateComment(ctx, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommunityService) ListComments(ctx context.Context, tipID uint) ([]model.CommunityComment, error) {
	return s.repo.ListCommentsByTip(ctx, tipID)
}

func (s *CommunityService) LikeComment(ctx context.Context, id uint) (*model.CommunityComment, error) {
	return s.repo.LikeComment(ctx, id)
}

func (s *CommunityService) DeleteComment(ctx context.Context, id uint) error {
	return s.repo.DeleteComment(ctx, id)
}
