package handlers

import (
	"errors"
	"net/http"

	request "workbridge/internal/adapter/http/dto/request"
	response "workbridge/internal/adapter/http/dto/response"
	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase"
	"workbridge/internal/usecase/interfaces"
	"workbridge/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuoteRequestPayload = pkg.NewDomainErrorSimple("INVALID_SOLICITACAO_INPUT", "Invalid solicitacao payload", http.StatusBadRequest)
)

// QuoteRequestHandler handles HTTP requests for solicitações de orçamento.

type QuoteRequestHandler struct {
	usecase usecase.IQuoteRequestUseCase
}

func NewQuoteRequestHandler(uc usecase.IQuoteRequestUseCase) *QuoteRequestHandler {
	return &QuoteRequestHandler{usecase: uc}
}

// CreateQuoteRequest opens a solicitação against a catalog professional.
func (h *QuoteRequestHandler) CreateQuoteRequest(c *gin.Context) {
	var payload request.QuoteRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuoteRequestPayload.HTTPStatus, errInvalidQuoteRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateQuoteRequestInput{
		ContratanteID:   payload.ContratanteID,
		ProfissionalID:  payload.ProfissionalID,
		Titulo:          payload.Titulo,
		Descricao:       payload.Descricao,
		Cidade:          payload.Cidade,
		DataDesejadaIni: payload.DataDesejadaIni,
	})
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteRequest(created))
}

// GetQuoteRequest returns a solicitação by id.
func (h *QuoteRequestHandler) GetQuoteRequest(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

// ListQuoteRequests lists solicitações filtered by contratante, profissional
// and status query params.
func (h *QuoteRequestHandler) ListQuoteRequests(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), interfaces.QuoteRequestFilter{
		ContratanteID:  c.Query("contratante_id"),
		ProfissionalID: c.Query("profissional_id"),
		Status:         entities.QuoteRequestStatus(c.Query("status")),
	})
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequests(list))
}

func mapQuoteRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteRequestID), errors.Is(err, usecase.ErrInvalidQuoteRequestInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		return pkg.NewDomainErrorSimple("PROFESSIONAL_NOT_FOUND", "Professional not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("SOLICITACAO_NOT_FOUND", "Solicitacao not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
