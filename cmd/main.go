package main

import (
	"log"

	"macrotracker/config"
	"macrotracker/controllers"
	"macrotracker/repository"
	"macrotracker/routes"
	"macrotracker/services"
)

func main() {
	config.LoadEnv()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := repository.NewFoodRepository(db)
	svc := services.NewFoodService(repo)
	ctl := controllers.NewFoodController(svc)

	r := routes.SetupRouter(ctl)
	if err := r.Run(config.ServerAddr()); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
