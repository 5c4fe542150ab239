package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"macrotracker/models"
	"macrotracker/services"
)

type FoodController struct {
	svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{svc: svc}
}

// FoodInput is the create/update body. The numeric fields are pointers so
// an explicit 0.0 passes "required" while a missing field does not.
type FoodInput struct {
	Name          string   `json:"name" binding:"required"`
	Fat           *float64 `json:"fat" binding:"required,gte=0"`
	Carbohydrates *float64 `json:"carbohydrates" binding:"required,gte=0"`
	Protein       *float64 `json:"protein" binding:"required,gte=0"`
	Calories      *float64 `json:"calories" binding:"required,gte=0"`
}

func (in *FoodInput) toFood() *models.Food {
	return &models.Food{
		Name:          strings.TrimSpace(in.Name),
		Fat:           *in.Fat,
		Carbohydrates: *in.Carbohydrates,
		Protein:       *in.Protein,
		Calories:      *in.Calories,
	}
}

func bindFoodInput(c *gin.Context) (*FoodInput, bool) {
	var input FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food name is required"})
		return nil, false
	}
	return &input, true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return 0, false
	}
	return uint(id), true
}

// GET /api/foods
func (ctl *FoodController) GetAllFoods(c *gin.Context) {
	foods, err := ctl.svc.GetAllFoods()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /api/foods/:id
func (ctl *FoodController) GetFoodByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	food, err := ctl.svc.GetFoodByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if food == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, food)
}

// POST /api/foods
func (ctl *FoodController) CreateFood(c *gin.Context) {
	input, ok := bindFoodInput(c)
	if !ok {
		return
	}
	saved, err := ctl.svc.SaveFood(input.toFood())
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// PUT /api/foods/:id
func (ctl *FoodController) UpdateFood(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	input, ok := bindFoodInput(c)
	if !ok {
		return
	}
	updated, err := ctl.svc.UpdateFood(id, input.toFood())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDuplicateName):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/foods/:id
func (ctl *FoodController) DeleteFood(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.svc.DeleteFood(id); err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/foods/search?name=apple
func (ctl *FoodController) SearchFoods(c *gin.Context) {
	fragment := c.Query("name")
	if fragment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'name' query param"})
		return
	}
	foods, err := ctl.svc.SearchFoodsByName(fragment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /api/foods/calories?max=150
func (ctl *FoodController) GetFoodsByCalories(c *gin.Context) {
	max, err := strconv.ParseFloat(c.Query("max"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'max' query param"})
		return
	}
	foods, err := ctl.svc.GetFoodsByCaloriesLessThan(max)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /api/foods/protein?min=10&max=40
func (ctl *FoodController) GetFoodsByProtein(c *gin.Context) {
	min, err := strconv.ParseFloat(c.Query("min"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'min' query param"})
		return
	}
	max, err := strconv.ParseFloat(c.Query("max"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'max' query param"})
		return
	}
	foods, err := ctl.svc.GetFoodsByProteinRange(min, max)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}
