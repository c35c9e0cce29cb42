package api

import (
	"net/http"
	"time"

	accountDelivery "mailagent-backend/internal/account/delivery"
	agentDelivery "mailagent-backend/internal/agent/delivery"
	authDelivery "mailagent-backend/internal/auth/delivery"
	emailDelivery "mailagent-backend/internal/email/delivery"
	promptDelivery "mailagent-backend/internal/prompt/delivery"
	taskDelivery "mailagent-backend/internal/task/delivery"

	authUsecase "mailagent-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the delivery layer for route registration.
type Handlers struct {
	Auth    *authDelivery.AuthHandler
	Email   *emailDelivery.EmailHandler
	Prompt  *promptDelivery.PromptHandler
	Agent   *agentDelivery.AgentHandler
	Account *accountDelivery.AccountHandler
	Task    *taskDelivery.TaskHandler
}

func SetupRoutes(r *gin.Engine, auth authUsecase.AuthUsecase, h Handlers) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"service":   "email-agent-api",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		// Auth routes
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/login", h.Auth.Login)
			authGroup.POST("/verify-email", h.Auth.VerifyEmail)
			authGroup.POST("/forgot-password", h.Auth.ForgotPassword)
			authGroup.POST("/reset-password", h.Auth.ResetPassword)
			authGroup.GET("/me", authDelivery.AuthMiddleware(auth), h.Auth.Me)
			authGroup.POST("/logout", authDelivery.AuthMiddleware(auth), h.Auth.Logout)
			authGroup.POST("/refresh", authDelivery.AuthMiddleware(auth), h.Auth.Refresh)
		}

		// Email routes (protected)
		emails := api.Group("/emails")
		emails.Use(authDelivery.AuthMiddleware(auth))
		{
			emails.GET("", h.Email.GetEmails)
			emails.POST("/load-mock", h.Email.LoadMockInbox)
			emails.GET("/:id", h.Email.GetEmail)
			emails.PUT("/:id/category", h.Email.UpdateCategory)
			emails.PATCH("/:id/read", h.Email.MarkRead)
			emails.PATCH("/:id/unread", h.Email.MarkUnread)
			emails.PATCH("/:id/star", h.Email.ToggleStar)
			emails.PATCH("/:id/archive", h.Email.Archive)
			emails.DELETE("/:id", h.Email.DeleteEmail)
		}

		// Draft routes (protected)
		drafts := api.Group("/drafts")
		drafts.Use(authDelivery.AuthMiddleware(auth))
		{
			drafts.GET("", h.Email.GetDrafts)
			drafts.POST("", h.Email.CreateDraft)
			drafts.PUT("/:id", h.Email.UpdateDraft)
			drafts.DELETE("/:id", h.Email.DeleteDraft)
		}

		// Prompt routes (protected)
		prompts := api.Group("/prompts")
		prompts.Use(authDelivery.AuthMiddleware(auth))
		{
			prompts.GET("", h.Prompt.GetPrompts)
			prompts.POST("", h.Prompt.CreatePrompt)
			prompts.GET("/:id", h.Prompt.GetPromptByID)
			prompts.PUT("/:id", h.Prompt.UpdatePrompt)
			prompts.POST("/:id/activate", h.Prompt.ActivatePrompt)
			prompts.DELETE("/:id", h.Prompt.DeletePrompt)
		}

		// Agent routes (protected)
		agent := api.Group("/agent")
		agent.Use(authDelivery.AuthMiddleware(auth))
		{
			agent.POST("/process", h.Agent.Process)
			agent.POST("/process-email", h.Agent.ProcessEmail)
			agent.POST("/chat", h.Agent.Chat)
			agent.POST("/reply/:emailId", h.Agent.GenerateReply)
			agent.GET("/health", h.Agent.Health)
		}

		// Connected account routes (protected)
		accounts := api.Group("/email-accounts")
		accounts.Use(authDelivery.AuthMiddleware(auth))
		{
			accounts.GET("", h.Account.GetAccounts)
			accounts.GET("/connect/gmail/url", h.Account.GetConnectURL)
			accounts.POST("/gmail", h.Account.ConnectGmail)
			accounts.POST("/gmail/code", h.Account.ConnectGmailWithCode)
			accounts.POST("/:id/sync", h.Account.Sync)
			accounts.DELETE("/:id", h.Account.Disconnect)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authDelivery.AuthMiddleware(auth))
		{
			tasks.GET("", h.Task.GetTasks)
			tasks.POST("", h.Task.CreateTask)
			tasks.GET("/:id", h.Task.GetTask)
			tasks.PUT("/:id", h.Task.UpdateTask)
			tasks.DELETE("/:id", h.Task.DeleteTask)
		}
	}
}
