package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode"

	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase/interfaces"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidProfessionalID = errors.New("invalid professional id")
	ErrProfessionalNotFound  = errors.New("professional not found")
)

// SortMode selects the ordering applied to search results.

type SortMode string

const (
	SortByRelevance SortMode = "relevancia"
	SortByRating    SortMode = "avaliacao"
)

// ParseSortMode maps a wire value onto a SortMode, defaulting to relevance.
// English aliases are accepted alongside the pt-BR values.
func ParseSortMode(v string) SortMode {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "avaliacao", "avaliação", "rating":
		return SortByRating
	default:
		return SortByRelevance
	}
}

// SearchQuery carries the filters applied to the professional catalog.
//
// Both filters are vacuously true when empty: an empty Cidade matches every
// location and an empty Especialidades set matches every professional.
type SearchQuery struct {
	Cidade         string
	Especialidades []string
	Ordenacao      SortMode
}

// ISearchUseCase exposes the professional matcher read paths.

type ISearchUseCase interface {
	Search(ctx context.Context, q SearchQuery) ([]entities.Professional, error)
	Specialties(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, id string) (entities.Professional, []entities.Review, error)
}

type SearchUseCase struct {
	professionals interfaces.IProfessionalRepository
	reviews       interfaces.IReviewRepository
}

var _ ISearchUseCase = (*SearchUseCase)(nil)

func NewSearchUseCase(professionals interfaces.IProfessionalRepository, reviews interfaces.IReviewRepository) *SearchUseCase {
	return &SearchUseCase{professionals: professionals, reviews: reviews}
}

// Search filters the catalog by location substring and specialty overlap, then
// ranks the survivors. Pure function of catalog + query: no pagination, no
// caching, the catalog is re-filtered per call.
func (u *SearchUseCase) Search(ctx context.Context, q SearchQuery) ([]entities.Professional, error) {
	catalog, err := u.professionals.List(ctx)
	if err != nil {
		return nil, err
	}

	term := foldAccents(q.Cidade)
	wanted := make([]string, 0, len(q.Especialidades))
	for _, esp := range q.Especialidades {
		if folded := foldAccents(esp); folded != "" {
			wanted = append(wanted, folded)
		}
	}

	results := make([]entities.Professional, 0, len(catalog))
	for _, p := range catalog {
		if term != "" && !strings.Contains(foldAccents(p.Location()), term) {
			continue
		}
		if len(wanted) > 0 && !matchesAnySpecialty(p.Especialidades, wanted) {
			continue
		}
		results = append(results, p)
	}

	sortProfessionals(results, q.Ordenacao)
	return results, nil
}

// Specialties returns the distinct specialty tags present in the catalog,
// deduplicated accent-insensitively and sorted for the filter UI.
func (u *SearchUseCase) Specialties(ctx context.Context) ([]string, error) {
	catalog, err := u.professionals.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]string)
	for _, p := range catalog {
		for _, esp := range p.Especialidades {
			esp = strings.TrimSpace(esp)
			if esp == "" {
				continue
			}
			key := foldAccents(esp)
			if _, ok := seen[key]; !ok {
				seen[key] = esp
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for _, esp := range seen {
		tags = append(tags, esp)
	}
	sort.Strings(tags)
	return tags, nil
}

// GetProfile resolves a professional together with the reviews written about them.
func (u *SearchUseCase) GetProfile(ctx context.Context, id string) (entities.Professional, []entities.Review, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Professional{}, nil, ErrInvalidProfessionalID
	}

	p, err := u.professionals.GetByID(ctx, id)
	if err != nil {
		return entities.Professional{}, nil, err
	}
	if p.ID == "" {
		return entities.Professional{}, nil, ErrProfessionalNotFound
	}

	reviews, err := u.reviews.ListByAvaliadoID(ctx, id)
	if err != nil {
		return entities.Professional{}, nil, err
	}
	return p, reviews, nil
}

// relevanceScore weights delivered volume modestly against a dominant rating
// term: a materially higher nota outranks a longer track record.
func relevanceScore(p entities.Professional) float64 {
	return float64(p.ServicosConcluidos)*0.7 + p.Nota*100
}

func sortProfessionals(list []entities.Professional, mode SortMode) {
	key := relevanceScore
	if mode == SortByRating {
		key = func(p entities.Professional) float64 { return p.Nota }
	}
	sort.SliceStable(list, func(i, j int) bool {
		ki, kj := key(list[i]), key(list[j])
		if ki != kj {
			return ki > kj
		}
		// Deterministic tie-break for reproducible orderings.
		return list[i].ID < list[j].ID
	})
}

func matchesAnySpecialty(have []string, wantedFolded []string) bool {
	for _, h := range have {
		folded := foldAccents(h)
		for _, w := range wantedFolded {
			if folded == w {
				return true
			}
		}
	}
	return false
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldAccents lowercases and strips diacritics so "São Paulo" matches "sao paulo".
func foldAccents(s string) string {
	folded, _, err := transform.String(accentStripper, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
