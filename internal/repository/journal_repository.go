package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"plantcare/internal/model"
)

// JournalRepository manages growth journal entries.
type JournalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Create(ctx context.Context, entry *model.JournalEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create journal entry: %w", err)
	}
	return nil
}

func (r *JournalRepository) FindByID(ctx context.Context, id uint) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *JournalRepository) ListByPlant(ctx context.Context, plantID uint) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := r.db.WithContext(ctx).Where("plant_id = ?", plantID).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *JournalRepository) ListByUser(ctx context.Context, userID uint) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *JournalRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*model.JournalEntry, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&model.JournalEntry{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update journal entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var entry model.JournalEntry
	if err := db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *JournalRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.JournalEntry{}, id).Error; err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return nil
}

func (r *JournalRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.JournalEntry{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
