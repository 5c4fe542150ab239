package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"macrotracker/models"
	"macrotracker/repository"
)

func newTestService(t *testing.T) *FoodService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Food{}))
	return NewFoodService(repository.NewFoodRepository(db))
}

func mustSave(t *testing.T, svc *FoodService, food models.Food) *models.Food {
	t.Helper()
	saved, err := svc.SaveFood(&food)
	require.NoError(t, err)
	return saved
}

func TestSaveFoodAssignsID(t *testing.T) {
	svc := newTestService(t)

	saved := mustSave(t, svc, models.Food{Name: "Chicken Breast", Fat: 3.6, Carbohydrates: 0.0, Protein: 31.0, Calories: 165.0})
	assert.NotZero(t, saved.ID)

	found, err := svc.GetFoodByID(saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved, found)
}

func TestSaveFoodRejectsDuplicateName(t *testing.T) {
	svc := newTestService(t)
	mustSave(t, svc, models.Food{Name: "Apple", Fat: 0.2, Carbohydrates: 13.8, Protein: 0.3, Calories: 52.0})

	_, err := svc.SaveFood(&models.Food{Name: "APPLE", Fat: 0.1, Carbohydrates: 14.0, Protein: 0.2, Calories: 55.0})
	assert.ErrorIs(t, err, ErrDuplicateName)

	foods, err := svc.GetAllFoods()
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Apple", foods[0].Name)
}

func TestGetFoodByIDMissingReturnsNil(t *testing.T) {
	svc := newTestService(t)

	found, err := svc.GetFoodByID(42)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUpdateFoodOverwritesAllFieldsButID(t *testing.T) {
	svc := newTestService(t)
	saved := mustSave(t, svc, models.Food{Name: "Chicken Breast", Fat: 3.6, Carbohydrates: 0.0, Protein: 31.0, Calories: 165.0})

	updated, err := svc.UpdateFood(saved.ID, &models.Food{Name: "Updated Chicken", Fat: 4.0, Carbohydrates: 0.5, Protein: 32.0, Calories: 170.0})
	require.NoError(t, err)

	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "Updated Chicken", updated.Name)
	assert.Equal(t, 32.0, updated.Protein)
	assert.Equal(t, 170.0, updated.Calories)
}

func TestUpdateFoodMissingID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateFood(999, &models.Food{Name: "Ghost", Fat: 1, Carbohydrates: 1, Protein: 1, Calories: 1})
	assert.ErrorIs(t, err, ErrFoodNotFound)

	foods, err := svc.GetAllFoods()
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestUpdateFoodKeepingSameNameIsNotDuplicate(t *testing.T) {
	svc := newTestService(t)
	saved := mustSave(t, svc, models.Food{Name: "Chicken Breast", Fat: 3.6, Carbohydrates: 0.0, Protein: 31.0, Calories: 165.0})

	// Same name in a different case counts as the same record's name.
	updated, err := svc.UpdateFood(saved.ID, &models.Food{Name: "chicken breast", Fat: 3.6, Carbohydrates: 0.0, Protein: 31.0, Calories: 160.0})
	require.NoError(t, err)
	assert.Equal(t, "chicken breast", updated.Name)
	assert.Equal(t, 160.0, updated.Calories)
}

func TestUpdateFoodRenameOntoTakenNameFails(t *testing.T) {
	svc := newTestService(t)
	mustSave(t, svc, models.Food{Name: "Apple", Fat: 0.2, Carbohydrates: 13.8, Protein: 0.3, Calories: 52.0})
	pear := mustSave(t, svc, models.Food{Name: "Pear", Fat: 0.1, Carbohydrates: 15.2, Protein: 0.4, Calories: 57.0})

	_, err := svc.UpdateFood(pear.ID, &models.Food{Name: "apple", Fat: 0.1, Carbohydrates: 15.2, Protein: 0.4, Calories: 57.0})
	assert.ErrorIs(t, err, ErrDuplicateName)

	unchanged, err := svc.GetFoodByID(pear.ID)
	require.NoError(t, err)
	require.NotNil(t, unchanged)
	assert.Equal(t, "Pear", unchanged.Name)
	assert.Equal(t, 57.0, unchanged.Calories)
}

func TestDeleteFoodMissingID(t *testing.T) {
	svc := newTestService(t)

	err := svc.DeleteFood(123)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestDeleteFoodRemovesRecord(t *testing.T) {
	svc := newTestService(t)
	saved := mustSave(t, svc, models.Food{Name: "Banana", Fat: 0.3, Carbohydrates: 22.8, Protein: 1.1, Calories: 89.0})

	require.NoError(t, svc.DeleteFood(saved.ID))

	found, err := svc.GetFoodByID(saved.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	foods, err := svc.GetAllFoods()
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestSearchFoodsByName(t *testing.T) {
	svc := newTestService(t)
	mustSave(t, svc, models.Food{Name: "Sweet Potato", Fat: 0.1, Carbohydrates: 20.1, Protein: 1.6, Calories: 86.0})
	mustSave(t, svc, models.Food{Name: "Apple", Fat: 0.2, Carbohydrates: 13.8, Protein: 0.3, Calories: 52.0})

	foods, err := svc.SearchFoodsByName("potato")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Sweet Potato", foods[0].Name)
}

func TestGetFoodsByCaloriesLessThanIsInclusive(t *testing.T) {
	svc := newTestService(t)
	mustSave(t, svc, models.Food{Name: "Protein Bar", Fat: 9.0, Carbohydrates: 24.0, Protein: 20.0, Calories: 150.0})
	mustSave(t, svc, models.Food{Name: "Chicken Breast", Fat: 3.6, Carbohydrates: 0.0, Protein: 31.0, Calories: 165.0})

	foods, err := svc.GetFoodsByCaloriesLessThan(150.0)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Protein Bar", foods[0].Name)
}

func TestGetFoodsByProteinRange(t *testing.T) {
	svc := newTestService(t)
	mustSave(t, svc, models.Food{Name: "Apple", Fat: 0.2, Carbohydrates: 13.8, Protein: 0.3, Calories: 52.0})
	mustSave(t, svc, models.Food{Name: "Protein Bar", Fat: 9.0, Carbohydrates: 24.0, Protein: 20.0, Calories: 150.0})
	mustSave(t, svc, models.Food{Name: "Chicken Breast", Fat: 3.6, Carbohydrates: 0.0, Protein: 31.0, Calories: 165.0})

	foods, err := svc.GetFoodsByProteinRange(20.0, 31.0)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}

func TestIsFoodNameTaken(t *testing.T) {
	svc := newTestService(t)
	mustSave(t, svc, models.Food{Name: "Apple", Fat: 0.2, Carbohydrates: 13.8, Protein: 0.3, Calories: 52.0})

	taken, err := svc.IsFoodNameTaken("aPpLe")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = svc.IsFoodNameTaken("Pear")
	require.NoError(t, err)
	assert.False(t, taken)
}
