package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"macrotracker/models"
)

// FoodRepository answers keyed and filtered queries over the foods table.
// Name matching is done on LOWER(name) so behavior is identical across
// the postgres and sqlite dialects.
type FoodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

// Save inserts the food when its ID is zero, otherwise persists the
// current field values. The stored record (with assigned ID) is returned.
func (r *FoodRepository) Save(food *models.Food) (*models.Food, error) {
	if err := r.db.Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// FindByID returns (nil, nil) when no record has the given id.
func (r *FoodRepository) FindByID(id uint) (*models.Food, error) {
	var food models.Food
	err := r.db.First(&food, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) FindAll() ([]models.Food, error) {
	var foods []models.Food
	if err := r.db.Order("id").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *FoodRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Food{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *FoodRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Food{}, id).Error
}

func (r *FoodRepository) FindByNameContainingIgnoreCase(fragment string) ([]models.Food, error) {
	var foods []models.Food
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := r.db.Where("LOWER(name) LIKE ?", pattern).Order("id").Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

// FindByCaloriesLessThanEqual includes records at exactly the ceiling.
func (r *FoodRepository) FindByCaloriesLessThanEqual(max float64) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.Where("calories <= ?", max).Order("id").Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

// FindByProteinBetween is inclusive at both bounds.
func (r *FoodRepository) FindByProteinBetween(min, max float64) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.Where("protein BETWEEN ? AND ?", min, max).Order("id").Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *FoodRepository) ExistsByNameIgnoreCase(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Food{}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Count(&count).Error
	return count > 0, err
}
