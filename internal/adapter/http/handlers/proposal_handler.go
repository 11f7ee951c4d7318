package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "workbridge/internal/adapter/http/dto/request"
	response "workbridge/internal/adapter/http/dto/response"
	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase"
	"workbridge/internal/usecase/interfaces"
	"workbridge/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSTA_INPUT", "Invalid proposta payload", http.StatusBadRequest)
)

// ProposalHandler handles HTTP requests for the proposta lifecycle.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// SubmitProposal registers a proposta against an open solicitação.
func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitProposalInput{
		SolicitacaoID:      payload.SolicitacaoID,
		ProfissionalID:     payload.ProfissionalID,
		ValorMaoObraCents:  payload.ValorMaoObraCents,
		ValorMaterialCents: payload.ValorMaterialCents,
		DataInicioPrevista: payload.DataInicioPrevista,
		DataFimPrevista:    payload.DataFimPrevista,
		ValidadeAte:        payload.ValidadeAte,
		Mensagem:           payload.Mensagem,
	})
	if err != nil {
		log.Printf("[proposal][handler] submit failed solicitacao_id=%s profissional_id=%s err=%v", payload.SolicitacaoID, payload.ProfissionalID, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(created, time.Now().UTC()))
}

// AcceptProposal accepts a pendente proposta, closing its solicitação and
// creating the job in the same transaction.
func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	id := c.Param("id")

	accepted, job, err := h.usecase.Accept(c.Request.Context(), id)
	if err != nil {
		log.Printf("[proposal][handler] accept failed proposta_id=%s err=%v", id, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAcceptedProposal(accepted, job, time.Now().UTC()))
}

// RejectProposal declines a pendente proposta.
func (h *ProposalHandler) RejectProposal(c *gin.Context) {
	id := c.Param("id")

	rejected, err := h.usecase.Reject(c.Request.Context(), id)
	if err != nil {
		log.Printf("[proposal][handler] reject failed proposta_id=%s err=%v", id, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(rejected, time.Now().UTC()))
}

// GetProposal returns a proposta by id with its derived status.
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(p, time.Now().UTC()))
}

// ListProposals lists propostas filtered by solicitação, profissional and
// derived status query params.
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), interfaces.ProposalFilter{
		SolicitacaoID:  c.Query("solicitacao_id"),
		ProfissionalID: c.Query("profissional_id"),
	}, entities.ProposalStatus(c.Query("status")))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(list, time.Now().UTC()))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidProposalVal),
		errors.Is(err, usecase.ErrInvalidValidade),
		errors.Is(err, usecase.ErrInvalidQuoteRequestID),
		errors.Is(err, usecase.ErrInvalidProfessionalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateProposal):
		return pkg.NewDomainErrorSimple("PROPOSTA_ALREADY_EXISTS", "Proposta already exists for this solicitacao", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalNotPending):
		return pkg.NewDomainErrorSimple("PROPOSTA_NOT_PENDING", "Proposta is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalExpired):
		return pkg.NewDomainErrorSimple("PROPOSTA_EXPIRED", "Proposta validity expired", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteRequestClosed):
		return pkg.NewDomainErrorSimple("SOLICITACAO_CLOSED", "Solicitacao is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSTA_NOT_FOUND", "Proposta not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("SOLICITACAO_NOT_FOUND", "Solicitacao not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
