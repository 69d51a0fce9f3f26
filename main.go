package main

import (
	"log"

	api "chaintasks-backend/cmd/api"
	authdomain "chaintasks-backend/internal/auth/domain"
	authRepo "chaintasks-backend/internal/auth/repository"
	authUsecase "chaintasks-backend/internal/auth/usecase"
	taskdomain "chaintasks-backend/internal/task/domain"
	taskRepo "chaintasks-backend/internal/task/repository"
	taskUsecase "chaintasks-backend/internal/task/usecase"
	"chaintasks-backend/pkg/config"
	"chaintasks-backend/pkg/contract"
	"chaintasks-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize the ledger client (explicitly constructed and injected,
	// never a package global)
	contractClient, err := contract.NewClient(cfg.RPCURL, cfg.ContractAddress)
	if err != nil {
		log.Fatal("Failed to initialize contract client: ", err)
	}
	defer contractClient.Close()
	log.Printf("Contract client bound to %s", cfg.ContractAddress)

	// Initialize repositories and use cases (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository, contractClient)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, contractClient, cfg, db)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
