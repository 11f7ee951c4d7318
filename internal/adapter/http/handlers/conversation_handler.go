package handlers

import (
	"errors"
	"net/http"

	request "workbridge/internal/adapter/http/dto/request"
	response "workbridge/internal/adapter/http/dto/response"
	"workbridge/internal/usecase"
	"workbridge/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidConversationPayload = pkg.NewDomainErrorSimple("INVALID_CONVERSA_INPUT", "Invalid conversa payload", http.StatusBadRequest)
)

// ConversationHandler handles HTTP requests for conversas and mensagens.

type ConversationHandler struct {
	usecase usecase.IConversationUseCase
}

func NewConversationHandler(uc usecase.IConversationUseCase) *ConversationHandler {
	return &ConversationHandler{usecase: uc}
}

// StartConversation opens a conversa tied to a solicitação and/or a job.
func (h *ConversationHandler) StartConversation(c *gin.Context) {
	var payload request.ConversationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConversationPayload.HTTPStatus, errInvalidConversationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Start(c.Request.Context(), usecase.StartConversationInput{
		SolicitacaoID: payload.SolicitacaoID,
		JobID:         payload.JobID,
	})
	if err != nil {
		appErr := mapConversationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromConversation(created))
}

// PostMessage appends a message to a conversa.
func (h *ConversationHandler) PostMessage(c *gin.Context) {
	var payload request.MessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConversationPayload.HTTPStatus, errInvalidConversationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.PostMessage(c.Request.Context(), c.Param("id"), payload.AutorID, payload.Corpo)
	if err != nil {
		appErr := mapConversationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMessage(created))
}

// ListMessages returns a conversa's messages in chronological order.
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	list, err := h.usecase.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapConversationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMessages(list))
}

func mapConversationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConversationRef),
		errors.Is(err, usecase.ErrInvalidConversationID),
		errors.Is(err, usecase.ErrInvalidMessageInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConversationNotFound):
		return pkg.NewDomainErrorSimple("CONVERSA_NOT_FOUND", "Conversa not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
