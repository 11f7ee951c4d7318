package handlers

import (
	"context"
	"errors"
	"net/http"

	request "workbridge/internal/adapter/http/dto/request"
	response "workbridge/internal/adapter/http/dto/response"
	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase"
	"workbridge/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_AVALIACAO_INPUT", "Invalid avaliacao payload", http.StatusBadRequest)
)

// ReviewHandler handles HTTP requests for bilateral job ratings.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// ReviewProfessional rates the job's professional.
func (h *ReviewHandler) ReviewProfessional(c *gin.Context) {
	h.createReview(c, h.usecase.ReviewProfessional)
}

// ReviewClient rates the job's contratante.
func (h *ReviewHandler) ReviewClient(c *gin.Context) {
	h.createReview(c, h.usecase.ReviewClient)
}

func (h *ReviewHandler) createReview(
	c *gin.Context,
	creator func(ctx context.Context, in usecase.ReviewInput) (entities.Review, error),
) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	created, err := creator(c.Request.Context(), usecase.ReviewInput{
		JobID:       payload.JobID,
		AvaliadorID: payload.AvaliadorID,
		Nota:        payload.Nota,
		Comentario:  payload.Comentario,
	})
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReview(created))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReviewInput), errors.Is(err, usecase.ErrInvalidReviewNota):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobAlreadyReviewed):
		return pkg.NewDomainErrorSimple("AVALIACAO_ALREADY_EXISTS", "Job already reviewed for this direction", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
