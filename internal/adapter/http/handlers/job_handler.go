package handlers

import (
	"errors"
	"net/http"

	response "workbridge/internal/adapter/http/dto/response"
	"workbridge/internal/usecase"
	"workbridge/internal/usecase/interfaces"
	"workbridge/pkg"

	"github.com/gin-gonic/gin"
)

// JobHandler handles HTTP read requests for jobs.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// GetJob returns a job by id.
func (h *JobHandler) GetJob(c *gin.Context) {
	j, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(j))
}

// GetJobBySolicitacao returns the job created for a solicitação, if any.
func (h *JobHandler) GetJobBySolicitacao(c *gin.Context) {
	j, err := h.usecase.GetBySolicitacaoID(c.Request.Context(), c.Param("solicitacao_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(j))
}

// ListJobs lists jobs filtered by contratante and profissional query params.
func (h *JobHandler) ListJobs(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), interfaces.JobFilter{
		ContratanteID:  c.Query("contratante_id"),
		ProfissionalID: c.Query("profissional_id"),
	})
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(list))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidQuoteRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
