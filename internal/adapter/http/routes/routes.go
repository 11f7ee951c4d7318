package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "workbridge/docs" // This will be auto-generated
	"workbridge/internal/adapter/http/handlers"
	repository2 "workbridge/internal/adapter/persistence/repository"
	"workbridge/internal/infrastructure/database"
	"workbridge/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	if database.BootstrapEnabled() {
		if err := database.EnsureTables(context.Background(), ddb); err != nil {
			log.Fatalf("Failed to bootstrap dynamodb tables: %v", err)
		}
	}

	professionalRepo := repository2.NewProfessionalDynamoRepository(ddb)
	quoteRequestRepo := repository2.NewQuoteRequestDynamoRepository(ddb)
	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	jobRepo := repository2.NewJobDynamoRepository(ddb)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb)
	conversationRepo := repository2.NewConversationDynamoRepository(ddb)

	searchUseCase := usecase.NewSearchUseCase(professionalRepo, reviewRepo)
	quoteRequestUseCase := usecase.NewQuoteRequestUseCase(quoteRequestRepo, professionalRepo)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, quoteRequestRepo, isAutoRejectEnabled())
	jobUseCase := usecase.NewJobUseCase(jobRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, jobRepo, professionalRepo)
	conversationUseCase := usecase.NewConversationUseCase(conversationRepo)

	searchHandler := handlers.NewSearchHandler(searchUseCase)
	quoteRequestHandler := handlers.NewQuoteRequestHandler(quoteRequestUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	conversationHandler := handlers.NewConversationHandler(conversationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, searchHandler, quoteRequestHandler, proposalHandler, jobHandler, reviewHandler, conversationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// isAutoRejectEnabled reads AUTO_REJECT_COMPETING: when on, accepting a
// proposta also rejects its pendente siblings. Off by default.
func isAutoRejectEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("AUTO_REJECT_COMPETING"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
