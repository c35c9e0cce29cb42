package main

import (
	api "mailagent-backend/cmd/api"

	accountDelivery "mailagent-backend/internal/account/delivery"
	accountDomain "mailagent-backend/internal/account/domain"
	accountRepo "mailagent-backend/internal/account/repository"
	accountUsecase "mailagent-backend/internal/account/usecase"
	agentDelivery "mailagent-backend/internal/agent/delivery"
	agentUsecase "mailagent-backend/internal/agent/usecase"
	authDelivery "mailagent-backend/internal/auth/delivery"
	authDomain "mailagent-backend/internal/auth/domain"
	authRepo "mailagent-backend/internal/auth/repository"
	"mailagent-backend/internal/auth/session"
	authUsecase "mailagent-backend/internal/auth/usecase"
	emailDelivery "mailagent-backend/internal/email/delivery"
	emailDomain "mailagent-backend/internal/email/domain"
	emailRepo "mailagent-backend/internal/email/repository"
	emailUsecase "mailagent-backend/internal/email/usecase"
	promptDelivery "mailagent-backend/internal/prompt/delivery"
	promptDomain "mailagent-backend/internal/prompt/domain"
	promptRepo "mailagent-backend/internal/prompt/repository"
	promptUsecase "mailagent-backend/internal/prompt/usecase"
	taskDelivery "mailagent-backend/internal/task/delivery"
	taskDomain "mailagent-backend/internal/task/domain"
	taskRepo "mailagent-backend/internal/task/repository"
	taskUsecase "mailagent-backend/internal/task/usecase"
	"mailagent-backend/pkg/config"
	"mailagent-backend/pkg/database"
	"mailagent-backend/pkg/llm"
	"mailagent-backend/pkg/logger"
	"mailagent-backend/pkg/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&authDomain.User{},
		&promptDomain.PromptTemplate{},
		&emailDomain.Email{},
		&emailDomain.EmailDraft{},
		&accountDomain.UserEmailAccount{},
		&taskDomain.Task{},
	); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepository := authRepo.NewUserRepository(db)
	promptRepository := promptRepo.NewGormPromptRepository(db)
	emailRepository := emailRepo.NewGormEmailRepository(db)
	accountRepository := accountRepo.NewGormAccountRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Shared services
	sessions := session.NewRegistry(cfg.SessionTTL)
	stopSweeper := make(chan struct{})
	defer close(stopSweeper)
	sessions.StartSweeper(cfg.SessionSweep, stopSweeper, log)

	llmClient := llm.NewClient(llm.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIModel,
	}, log)

	oauthService := provider.NewOAuthService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)
	gmailService := provider.NewGmailService(oauthService)

	// Use cases
	authUC := authUsecase.NewAuthUsecase(userRepository, sessions, cfg, log)
	promptUC := promptUsecase.NewPromptUsecase(promptRepository, log)
	emailUC := emailUsecase.NewEmailUsecase(emailRepository, log)
	taskUC := taskUsecase.NewTaskUsecase(taskRepository, log)
	agentUC := agentUsecase.NewAgentUsecase(llmClient, emailUC, promptUC, taskUC, log)
	accountUC := accountUsecase.NewAccountUsecase(accountRepository, emailUC, oauthService, gmailService, log)

	if err := promptUC.SeedDefaults(); err != nil {
		log.Fatal("failed to seed default prompts", zap.Error(err))
	}

	// HTTP layer
	r := gin.Default()
	api.SetupRoutes(r, authUC, api.Handlers{
		Auth:    authDelivery.NewAuthHandler(authUC, log),
		Email:   emailDelivery.NewEmailHandler(emailUC, log),
		Prompt:  promptDelivery.NewPromptHandler(promptUC, log),
		Agent:   agentDelivery.NewAgentHandler(agentUC, log),
		Account: accountDelivery.NewAccountHandler(accountUC, log),
		Task:    taskDelivery.NewTaskHandler(taskUC, log),
	})

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
