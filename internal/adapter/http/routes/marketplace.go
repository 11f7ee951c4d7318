package routes

import (
	"workbridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProfissionais  = "/profissionais"
	PathEspecialidades = "/especialidades"
	PathSolicitacoes   = "/solicitacoes"
	PathPropostas      = "/propostas"
	PathJobs           = "/jobs"
	PathAvaliacoes     = "/avaliacoes"
	PathConversas      = "/conversas"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	searchHandler *handlers.SearchHandler,
	quoteRequestHandler *handlers.QuoteRequestHandler,
	proposalHandler *handlers.ProposalHandler,
	jobHandler *handlers.JobHandler,
	reviewHandler *handlers.ReviewHandler,
	conversationHandler *handlers.ConversationHandler,
) {
	profissionais := rg.Group(PathProfissionais)
	{
		profissionais.GET("", searchHandler.SearchProfessionals)
		profissionais.GET("/:id", searchHandler.GetProfessional)
	}

	rg.GET(PathEspecialidades, searchHandler.ListSpecialties)

	solicitacoes := rg.Group(PathSolicitacoes)
	{
		solicitacoes.POST("", quoteRequestHandler.CreateQuoteRequest)
		solicitacoes.GET("", quoteRequestHandler.ListQuoteRequests)
		solicitacoes.GET("/:id", quoteRequestHandler.GetQuoteRequest)
	}

	propostas := rg.Group(PathPropostas)
	{
		propostas.POST("", proposalHandler.SubmitProposal)
		propostas.GET("", proposalHandler.ListProposals)
		propostas.GET("/:id", proposalHandler.GetProposal)
		propostas.PUT("/:id/aceitar", proposalHandler.AcceptProposal)
		propostas.PUT("/:id/recusar", proposalHandler.RejectProposal)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.GET("/solicitacao/:solicitacao_id", jobHandler.GetJobBySolicitacao)
	}

	avaliacoes := rg.Group(PathAvaliacoes)
	{
		avaliacoes.POST("/profissional", reviewHandler.ReviewProfessional)
		avaliacoes.POST("/contratante", reviewHandler.ReviewClient)
	}

	conversas := rg.Group(PathConversas)
	{
		conversas.POST("", conversationHandler.StartConversation)
		conversas.POST("/:id/mensagens", conversationHandler.PostMessage)
		conversas.GET("/:id/mensagens", conversationHandler.ListMessages)
	}
}
