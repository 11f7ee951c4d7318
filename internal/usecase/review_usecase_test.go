package usecase

import (
	"context"
	"errors"
	"testing"

	"workbridge/internal/domain/entities"
	mock_interfaces "workbridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReviewUseCase_ReviewProfessional(t *testing.T) {
	job := entities.Job{ID: "job-1", ContratanteID: "cli-1", ProfissionalID: "prof-1"}
	valid := ReviewInput{JobID: "job-1", AvaliadorID: "cli-1", Nota: 5, Comentario: "Excelente"}

	t.Run("missing fields", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil, nil)
		in := valid
		in.AvaliadorID = " "
		_, err := uc.ReviewProfessional(context.Background(), in)
		if !errors.Is(err, ErrInvalidReviewInput) {
			t.Fatalf("expected ErrInvalidReviewInput, got %v", err)
		}
	})

	t.Run("nota out of range", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil, nil)
		for _, nota := range []int{0, 6, -1} {
			in := valid
			in.Nota = nota
			if _, err := uc.ReviewProfessional(context.Background(), in); !errors.Is(err, ErrInvalidReviewNota) {
				t.Fatalf("nota %d: expected ErrInvalidReviewNota, got %v", nota, err)
			}
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewReviewUseCase(nil, jobs, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.ReviewProfessional(context.Background(), valid)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("already reviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReviewRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewReviewUseCase(repo, jobs, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Review{})).Return(entities.Review{}, nil)

		_, err := uc.ReviewProfessional(context.Background(), valid)
		if !errors.Is(err, ErrJobAlreadyReviewed) {
			t.Fatalf("expected ErrJobAlreadyReviewed, got %v", err)
		}
	})

	t.Run("success refreshes nota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReviewRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		professionals := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewReviewUseCase(repo, jobs, professionals)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Review{})).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				if r.Tipo != entities.ReviewTipoProfissional || r.AvaliadoID != "prof-1" {
					t.Fatalf("unexpected review: %+v", r)
				}
				return r, nil
			},
		)
		// Mean of tipo-profissional notas only: (5+4)/2.
		stored := []entities.Review{
			{JobID: "job-1", Tipo: entities.ReviewTipoProfissional, Nota: 5},
			{JobID: "job-2", Tipo: entities.ReviewTipoProfissional, Nota: 4},
			{JobID: "job-3", Tipo: entities.ReviewTipoContratante, Nota: 1},
		}
		repo.EXPECT().ListByAvaliadoID(gomock.Any(), "prof-1").Return(stored, nil)
		professionals.EXPECT().UpdateNota(gomock.Any(), "prof-1", 4.5).Return(entities.Professional{ID: "prof-1", Nota: 4.5}, nil)

		res, err := uc.ReviewProfessional(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AvaliadoID != "prof-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("nota refresh failure does not fail the review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReviewRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewReviewUseCase(repo, jobs, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Review{})).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) { return r, nil },
		)
		repo.EXPECT().ListByAvaliadoID(gomock.Any(), "prof-1").Return(nil, errors.New("db"))

		if _, err := uc.ReviewProfessional(context.Background(), valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReviewUseCase_ReviewClient(t *testing.T) {
	job := entities.Job{ID: "job-1", ContratanteID: "cli-1", ProfissionalID: "prof-1"}

	t.Run("targets the contratante without touching nota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReviewRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewReviewUseCase(repo, jobs, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Review{})).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				if r.Tipo != entities.ReviewTipoContratante || r.AvaliadoID != "cli-1" {
					t.Fatalf("unexpected review: %+v", r)
				}
				return r, nil
			},
		)

		res, err := uc.ReviewClient(context.Background(), ReviewInput{JobID: "job-1", AvaliadorID: "prof-1", Nota: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AvaliadoID != "cli-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
