package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"plantcare/internal/model"
)

// CommunityRepository manages tips and their comments.
type CommunityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

func (r *CommunityRepository) CreateTip(ctx context.Context, tip *model.CommunityTip) error {
	if err := r.db.WithContext(ctx).Create(tip).Error; err != nil {
		return fmt.Errorf("create tip: %w", err)
	}
	return nil
}

func (r *CommunityRepository) FindTipByID(ctx context.Context, id uint) (*model.CommunityTip, error) {
	var tip model.CommunityTip
	if err := r.db.WithContext(ctx).First(&tip, id).Error; err != nil {
		return nil, err
	}
	return &tip, nil
}

func (r *CommunityRepository) ListTips(ctx context.Context) ([]model.CommunityTip, error) {
	var tips []model.CommunityTip
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *CommunityRepository) ListTipsByCategory(ctx context.Context, category string) ([]model.CommunityTip, error) {
	var tips []model.CommunityTip
	if err := r.db.WithContext(ctx).Where("category = ?", category).
		Order("created_at DESC").Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *CommunityRepository) ListPopularTips(ctx context.Context, limit int) ([]model.CommunityTip, error) {
	if limit <= 0 {
		limit = 5
	}
	var tips []model.CommunityTip
	if err := r.db.WithContext(ctx).Order("votes DESC").Limit(limit).Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *CommunityRepository) SearchTips(ctx context.Context, query string) ([]model.CommunityTip, error) {
	like := "%" + query + "%"
	var tips []model.CommunityTip
	if err := r.db.WithContext(ctx).
		Where("title LIKE ? OR content LIKE ? OR plant_species LIKE ?", like, like, like).
		Order("created_at DESC").Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

// VoteTip adds value (+1 or -1) to a tip's vote count and returns the fresh row.
func (r *CommunityRepository) VoteTip(ctx context.Context, id uint, value int) (*model.CommunityTip, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&model.CommunityTip{}).Where("id = ?", id).
		Update("votes", gorm.Expr("votes + ?", value))
	if res.Error != nil {
		return nil, fmt.Errorf("vote tip: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindTipByID(ctx, id)
}

func (r *CommunityRepository) DeleteTip(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tip_id = ?", id).Delete(&model.CommunityComment{}).Error; err != nil {
			return fmt.Errorf("delete tip comments: %w", err)
		}
		if err := tx.Delete(&model.CommunityTip{}, id).Error; err != nil {
			return fmt.Errorf("delete tip: %w", err)
		}
		return nil
	})
}

func (r *CommunityRepository) CreateComment(ctx context.Context, comment *model.CommunityComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *CommunityRepository) ListCommentsByTip(ctx context.Context, tipID uint) ([]model.CommunityComment, error) {
	var comments []model.CommunityComment
	if err := r.db.WithContext(ctx).Where("tip_id = ?", tipID).
		Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommunityRepository) LikeComment(ctx context.Context, id uint) (*model.CommunityComment, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&model.CommunityComment{}).Where("id = ?", id).
		Update("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return nil, fmt.Errorf("like comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var comment model.CommunityComment
	if err := db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommunityRepository) DeleteComment(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.CommunityComment{}, id).Error; err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (r *CommunityRepository) CountTipsByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.CommunityTip{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
