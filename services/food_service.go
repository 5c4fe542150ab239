package services

import (
	"fmt"
	"strings"

	"macrotracker/models"
	"macrotracker/repository"
)

// FoodService enforces the unique-name rule and mediates every read and
// mutation between the controllers and the repository.
type FoodService struct {
	repo *repository.FoodRepository
}

func NewFoodService(repo *repository.FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

// SaveFood persists a new food unless its name is already taken.
func (s *FoodService) SaveFood(food *models.Food) (*models.Food, error) {
	taken, err := s.IsFoodNameTaken(food.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("a food named %q: %w", food.Name, ErrDuplicateName)
	}
	return s.repo.Save(food)
}

// GetFoodByID returns (nil, nil) for an unknown id.
func (s *FoodService) GetFoodByID(id uint) (*models.Food, error) {
	return s.repo.FindByID(id)
}

func (s *FoodService) GetAllFoods() ([]models.Food, error) {
	return s.repo.FindAll()
}

// UpdateFood overwrites all fields but the id. Renaming onto a name held
// by a different record is rejected; keeping the same name (any case) is
// always allowed.
func (s *FoodService) UpdateFood(id uint, details *models.Food) (*models.Food, error) {
	food, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, fmt.Errorf("food with id %d: %w", id, ErrFoodNotFound)
	}

	if !strings.EqualFold(food.Name, details.Name) {
		taken, err := s.IsFoodNameTaken(details.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("a food named %q: %w", details.Name, ErrDuplicateName)
		}
	}

	food.Name = details.Name
	food.Calories = details.Calories
	food.Protein = details.Protein
	food.Carbohydrates = details.Carbohydrates
	food.Fat = details.Fat

	return s.repo.Save(food)
}

// DeleteFood removes the record. The existence check and the delete are
// two store calls; concurrent deletes of the same id may race, the loser
// getting ErrFoodNotFound.
func (s *FoodService) DeleteFood(id uint) error {
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("food with id %d: %w", id, ErrFoodNotFound)
	}
	return s.repo.DeleteByID(id)
}

func (s *FoodService) SearchFoodsByName(fragment string) ([]models.Food, error) {
	return s.repo.FindByNameContainingIgnoreCase(fragment)
}

// GetFoodsByCaloriesLessThan is inclusive: records at exactly maxCalories
// are returned.
func (s *FoodService) GetFoodsByCaloriesLessThan(maxCalories float64) ([]models.Food, error) {
	return s.repo.FindByCaloriesLessThanEqual(maxCalories)
}

func (s *FoodService) GetFoodsByProteinRange(minProtein, maxProtein float64) ([]models.Food, error) {
	return s.repo.FindByProteinBetween(minProtein, maxProtein)
}

func (s *FoodService) IsFoodNameTaken(name string) (bool, error) {
	return s.repo.ExistsByNameIgnoreCase(name)
}
