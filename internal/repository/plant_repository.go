package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"plantcare/internal/model"
)

// PlantRepository handles CRUD for plants.
type PlantRepository struct {
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) *PlantRepository {
	return &PlantRepository{db: db}
}

func (r *PlantRepository) Create(ctx context.Context, plant *model.Plant) error {
	if err := r.db.WithContext(ctx).Create(plant).Error; err != nil {
		return fmt.Errorf("create plant: %w", err)
	}
	return nil
}

func (r *PlantRepository) FindByID(ctx context.Context, id uint) (*model.Plant, error) {
	var plant model.Plant
	if err := r.db.WithContext(ctx).First(&plant, id).Error; err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *PlantRepository) FindByShareToken(ctx context.Context, token string) (*model.Plant, error) {
	var plant model.Plant
	if err := r.db.WithContext(ctx).Where("share_token = ?", token).First(&plant).Error; err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *PlantRepository) ListByUser(ctx context.Context, userID uint) ([]model.Plant, error) {
	var plants []model.Plant
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

// ListAutoWatering returns every plant with automatic watering enabled,
// for the scheduled horizon refill.
func (r *PlantRepository) ListAutoWatering(ctx context.Context) ([]model.Plant, error) {
	var plants []model.Plant
	if err := r.db.WithContext(ctx).Where("auto_watering = ?", true).Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

// Update applies a partial update and returns the fresh row.
func (r *PlantRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*model.Plant, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&model.Plant{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update plant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var plant model.Plant
	if err := db.First(&plant, id).Error; err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *PlantRepository) Save(ctx context.Context, plant *model.Plant) error {
	if err := r.db.WithContext(ctx).Save(plant).Error; err != nil {
		return fmt.Errorf("save plant: %w", err)
	}
	return nil
}

// Delete removes a plant and everything attached to it.
func (r *PlantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plant_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return fmt.Errorf("delete plant tasks: %w", err)
		}
		if err := tx.Where("plant_id = ?", id).Delete(&model.JournalEntry{}).Error; err != nil {
			return fmt.Errorf("delete plant journal: %w", err)
		}
		if err := tx.Delete(&model.Plant{}, id).Error; err != nil {
			return fmt.Errorf("delete plant: %w", err)
		}
		return nil
	})
}
