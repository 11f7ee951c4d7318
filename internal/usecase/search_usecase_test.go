package usecase

import (
	"context"
	"errors"
	"testing"

	"workbridge/internal/domain/entities"
	mock_interfaces "workbridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleCatalog() []entities.Professional {
	return []entities.Professional{
		{
			ID:                 "prof-1",
			Nome:               "Ana",
			Especialidade:      "Elétrica",
			Especialidades:     []string{"Elétrica"},
			Cidade:             "São Paulo",
			Estado:             "SP",
			Nota:               4.9,
			ServicosConcluidos: 200,
		},
		{
			ID:                 "prof-2",
			Nome:               "Bruno",
			Especialidade:      "Hidráulica",
			Especialidades:     []string{"Hidráulica", "Elétrica"},
			Cidade:             "São Paulo",
			Estado:             "SP",
			Nota:               4.5,
			ServicosConcluidos: 80,
		},
		{
			ID:                 "prof-3",
			Nome:               "Carla",
			Especialidade:      "Pintura",
			Especialidades:     []string{"Pintura"},
			Cidade:             "Campinas",
			Estado:             "SP",
			Nota:               5.0,
			ServicosConcluidos: 10,
		},
	}
}

func TestSearchUseCase_Search(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewSearchUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Search(context.Background(), SearchQuery{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("empty filters return whole catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewSearchUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(sampleCatalog(), nil)

		res, err := uc.Search(context.Background(), SearchQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 {
			t.Fatalf("expected 3 results, got %d", len(res))
		}
	})

	t.Run("cidade filter ignores case and accents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewSearchUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(sampleCatalog(), nil).Times(2)

		res, err := uc.Search(context.Background(), SearchQuery{Cidade: "sao paulo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 results for sao paulo, got %d", len(res))
		}

		// The accented form must select the same professionals.
		accented, err := uc.Search(context.Background(), SearchQuery{Cidade: "SÃO PAULO"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(accented) != len(res) {
			t.Fatalf("accented query diverged: %d vs %d", len(accented), len(res))
		}
		for i := range res {
			if accented[i].ID != res[i].ID {
				t.Fatalf("accented query order diverged at %d: %s vs %s", i, accented[i].ID, res[i].ID)
			}
		}
	})

	t.Run("cidade filter matches estado segment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewSearchUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(sampleCatalog(), nil)

		res, err := uc.Search(context.Background(), SearchQuery{Cidade: "sp"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 {
			t.Fatalf("expected state substring to match all 3, got %d", len(res))
		}
	})

	t.Run("specialty filter matches any overlap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewSearchUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(sampleCatalog(), nil)

		res, err := uc.Search(context.Background(), SearchQuery{Especialidades: []string{"eletrica", "Pintura"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 {
			t.Fatalf("expected 3 results, got %d", len(res))
		}
		for _, p := range res {
			if p.ID == "" {
				t.Fatalf("unexpected zero result: %+v", p)
			}
		}
	})

	t.Run("relevance ranking favors volume and nota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewSearchUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(sampleCatalog(), nil)

		// prof-1: 200*0.7 + 4.9*100 = 630, prof-2: 80*0.7 + 4.5*100 = 506,
		// prof-3: 10*0.7 + 5.0*100 = 507.
		res, err := uc.Search(context.Background(), SearchQuery{Ordenacao: SortByRelevance})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res[0].ID != "prof-1" || res[1].ID != "prof-3" || res[2].ID != "prof-2" {
			t.Fatalf("unexpected relevance order: %s, %s, %s", res[0].ID, res[1].ID, res[2].ID)
		}
	})

	t.Run("rating ranking orders by nota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewSearchUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(sampleCatalog(), nil)

		res, err := uc.Search(context.Background(), SearchQuery{Ordenacao: SortByRating})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res[0].ID != "prof-3" || res[1].ID != "prof-1" || res[2].ID != "prof-2" {
			t.Fatalf("unexpected rating order: %s, %s, %s", res[0].ID, res[1].ID, res[2].ID)
		}
	})

	t.Run("ties break by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewSearchUseCase(repo, nil)

		tied := []entities.Professional{
			{ID: "prof-b", Nota: 4.0, ServicosConcluidos: 10},
			{ID: "prof-a", Nota: 4.0, ServicosConcluidos: 10},
		}
		repo.EXPECT().List(gomock.Any()).Return(tied, nil)

		res, err := uc.Search(context.Background(), SearchQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res[0].ID != "prof-a" || res[1].ID != "prof-b" {
			t.Fatalf("unexpected tie-break order: %s, %s", res[0].ID, res[1].ID)
		}
	})
}

func TestSearchUseCase_Specialties(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewSearchUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Specialties(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("deduplicates accent-insensitively", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewSearchUseCase(repo, nil)

		catalog := []entities.Professional{
			{ID: "prof-1", Especialidades: []string{"Elétrica", "Pintura"}},
			{ID: "prof-2", Especialidades: []string{"eletrica", " "}},
		}
		repo.EXPECT().List(gomock.Any()).Return(catalog, nil)

		tags, err := uc.Specialties(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tags) != 2 {
			t.Fatalf("expected 2 distinct tags, got %v", tags)
		}
	})
}

func TestSearchUseCase_GetProfile(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSearchUseCase(nil, nil)
		_, _, err := uc.GetProfile(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidProfessionalID) {
			t.Fatalf("expected ErrInvalidProfessionalID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewSearchUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prof-x").Return(entities.Professional{}, nil)

		_, _, err := uc.GetProfile(context.Background(), "prof-x")
		if !errors.Is(err, ErrProfessionalNotFound) {
			t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
		}
	})

	t.Run("success with reviews", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewSearchUseCase(repo, reviews)

		repo.EXPECT().GetByID(gomock.Any(), "prof-1").Return(entities.Professional{ID: "prof-1"}, nil)
		reviews.EXPECT().ListByAvaliadoID(gomock.Any(), "prof-1").Return([]entities.Review{{JobID: "job-1", Nota: 5}}, nil)

		p, revs, err := uc.GetProfile(context.Background(), " prof-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "prof-1" || len(revs) != 1 {
			t.Fatalf("unexpected profile: %+v reviews=%d", p, len(revs))
		}
	})
}

func TestParseSortMode(t *testing.T) {
	if ParseSortMode("avaliacao") != SortByRating {
		t.Fatalf("expected rating mode")
	}
	if ParseSortMode(" Avaliação ") != SortByRating {
		t.Fatalf("expected rating mode for accented form")
	}
	if ParseSortMode("") != SortByRelevance {
		t.Fatalf("expected relevance default")
	}
	if ParseSortMode("anything") != SortByRelevance {
		t.Fatalf("expected relevance fallback")
	}
}

func TestFoldAccents(t *testing.T) {
	if got := foldAccents("  São Paulo "); got != "sao paulo" {
		t.Fatalf("unexpected fold: %q", got)
	}
	if got := foldAccents("ELÉTRICA"); got != "eletrica" {
		t.Fatalf("unexpected fold: %q", got)
	}
}
