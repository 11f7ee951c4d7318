package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "workbridge/internal/adapter/http/dto/response"
	"workbridge/internal/usecase"
	"workbridge/pkg"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles HTTP requests for the professional matcher: catalog
// search, specialty listing and the profile view.

type SearchHandler struct {
	usecase usecase.ISearchUseCase
}

func NewSearchHandler(uc usecase.ISearchUseCase) *SearchHandler {
	return &SearchHandler{usecase: uc}
}

// SearchProfessionals filters the catalog by cidade substring and specialty
// overlap, then ranks by relevancia (default) or avaliacao.
func (h *SearchHandler) SearchProfessionals(c *gin.Context) {
	q := usecase.SearchQuery{
		Cidade:         c.Query("cidade"),
		Especialidades: splitCSV(c.Query("especialidades")),
		Ordenacao:      usecase.ParseSortMode(c.Query("ordenacao")),
	}

	results, err := h.usecase.Search(c.Request.Context(), q)
	if err != nil {
		appErr := mapSearchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfessionals(results))
}

// GetProfessional returns the profile view: catalog record plus avaliações.
func (h *SearchHandler) GetProfessional(c *gin.Context) {
	id := c.Param("id")

	p, reviews, err := h.usecase.GetProfile(c.Request.Context(), id)
	if err != nil {
		appErr := mapSearchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(p, reviews))
}

// ListSpecialties returns the distinct specialty tags present in the catalog.
func (h *SearchHandler) ListSpecialties(c *gin.Context) {
	tags, err := h.usecase.Specialties(c.Request.Context())
	if err != nil {
		appErr := mapSearchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"especialidades": tags})
}

func splitCSV(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func mapSearchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfessionalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		return pkg.NewDomainErrorSimple("PROFESSIONAL_NOT_FOUND", "Professional not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
