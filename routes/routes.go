package routes

import (
	"github.com/gin-gonic/gin"

	"macrotracker/controllers"
)

func SetupRouter(foodCtl *controllers.FoodController) *gin.Engine {
	r := gin.Default()

	r.GET("/health", controllers.HealthCheck)

	foods := r.Group("/api/foods")
	{
		foods.GET("", foodCtl.GetAllFoods)
		foods.GET("/search", foodCtl.SearchFoods)
		foods.GET("/calories", foodCtl.GetFoodsByCalories)
		foods.GET("/protein", foodCtl.GetFoodsByProtein)
		foods.GET("/:id", foodCtl.GetFoodByID)
		foods.POST("", foodCtl.CreateFood)
		foods.PUT("/:id", foodCtl.UpdateFood)
		foods.DELETE("/:id", foodCtl.DeleteFood)
	}

	return r
}
