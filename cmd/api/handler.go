package api

import (
	authDelivery "chaintasks-backend/internal/auth/delivery"
	authUsecasePkg "chaintasks-backend/internal/auth/usecase"
	suggestionDelivery "chaintasks-backend/internal/suggestion/delivery"
	suggestionUsecasePkg "chaintasks-backend/internal/suggestion/usecase"
	taskDelivery "chaintasks-backend/internal/task/delivery"
	taskUsecasePkg "chaintasks-backend/internal/task/usecase"
	"chaintasks-backend/pkg/config"
	"chaintasks-backend/pkg/contract"
	"chaintasks-backend/pkg/huggingface"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	authUsecase       authUsecasePkg.AuthUsecase
	authHandler       *authDelivery.AuthHandler
	taskHandler       *taskDelivery.TaskHandler
	suggestionHandler *suggestionDelivery.SuggestionHandler
	contractClient    *contract.Client
	config            *config.Config
	db                *gorm.DB
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, contractClient *contract.Client, cfg *config.Config, db *gorm.DB) *Handler {
	hfService := huggingface.NewService(cfg.HuggingFaceAPIKey)
	suggestionUc := suggestionUsecasePkg.NewSuggestionUsecase(hfService)

	return &Handler{
		authUsecase:       authUc,
		authHandler:       authDelivery.NewAuthHandler(authUc),
		taskHandler:       taskDelivery.NewTaskHandler(taskUc),
		suggestionHandler: suggestionDelivery.NewSuggestionHandler(suggestionUc),
		contractClient:    contractClient,
		config:            cfg,
		db:                db,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case h.config.FrontendURL != "":
			c.Writer.Header().Set("Access-Control-Allow-Origin", h.config.FrontendURL)
		case origin != "":
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		default:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.taskHandler, h.suggestionHandler, h.contractClient, h.db)

	return r.Run(addr)
}
