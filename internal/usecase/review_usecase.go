package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase/interfaces"
)

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrJobAlreadyReviewed = errors.New("job already reviewed")
	ErrInvalidReviewInput = errors.New("invalid review input")
	ErrInvalidReviewNota  = errors.New("invalid review nota")
)

// ReviewInput carries a per-job rating from either side of the engagement.
type ReviewInput struct {
	JobID       string
	AvaliadorID string
	Nota        int
	Comentario  string
}

// IReviewUseCase exposes the bilateral rating operations. Each job accepts at
// most one rating per direction.

type IReviewUseCase interface {
	ReviewProfessional(ctx context.Context, in ReviewInput) (entities.Review, error)
	ReviewClient(ctx context.Context, in ReviewInput) (entities.Review, error)
}

type ReviewUseCase struct {
	repo          interfaces.IReviewRepository
	jobs          interfaces.IJobRepository
	professionals interfaces.IProfessionalRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IReviewRepository, jobs interfaces.IJobRepository, professionals interfaces.IProfessionalRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, jobs: jobs, professionals: professionals}
}

// ReviewProfessional rates the job's professional and refreshes the stored
// nota on the catalog record.
func (u *ReviewUseCase) ReviewProfessional(ctx context.Context, in ReviewInput) (entities.Review, error) {
	created, err := u.create(ctx, in, entities.ReviewTipoProfissional)
	if err != nil {
		return entities.Review{}, err
	}
	u.refreshNota(ctx, created.AvaliadoID)
	return created, nil
}

// ReviewClient rates the job's contratante.
func (u *ReviewUseCase) ReviewClient(ctx context.Context, in ReviewInput) (entities.Review, error) {
	return u.create(ctx, in, entities.ReviewTipoContratante)
}

func (u *ReviewUseCase) create(ctx context.Context, in ReviewInput, tipo entities.ReviewTipo) (entities.Review, error) {
	in.JobID = strings.TrimSpace(in.JobID)
	in.AvaliadorID = strings.TrimSpace(in.AvaliadorID)
	if in.JobID == "" || in.AvaliadorID == "" {
		return entities.Review{}, ErrInvalidReviewInput
	}
	if in.Nota < 1 || in.Nota > 5 {
		return entities.Review{}, ErrInvalidReviewNota
	}

	job, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		return entities.Review{}, err
	}
	if job.ID == "" {
		return entities.Review{}, ErrJobNotFound
	}

	avaliado := job.ProfissionalID
	if tipo == entities.ReviewTipoContratante {
		avaliado = job.ContratanteID
	}

	r := entities.Review{
		JobID:       in.JobID,
		Tipo:        tipo,
		AvaliadorID: in.AvaliadorID,
		AvaliadoID:  avaliado,
		Nota:        in.Nota,
		Comentario:  strings.TrimSpace(in.Comentario),
		CriadoEm:    time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Review{}, err
	}
	if created.JobID == "" {
		return entities.Review{}, ErrJobAlreadyReviewed
	}
	return created, nil
}

// refreshNota recomputes the professional's mean rating. Best-effort: the
// review itself is already committed, so failures are only logged.
func (u *ReviewUseCase) refreshNota(ctx context.Context, profissionalID string) {
	reviews, err := u.repo.ListByAvaliadoID(ctx, profissionalID)
	if err != nil {
		log.Printf("[review][usecase] nota refresh listing failed profissional_id=%s err=%v", profissionalID, err)
		return
	}

	var sum, count float64
	for _, r := range reviews {
		if r.Tipo != entities.ReviewTipoProfissional {
			continue
		}
		sum += float64(r.Nota)
		count++
	}
	if count == 0 {
		return
	}

	nota := sum / count
	if nota < 0 {
		nota = 0
	}
	if nota > 5 {
		nota = 5
	}
	if _, err := u.professionals.UpdateNota(ctx, profissionalID, nota); err != nil {
		log.Printf("[review][usecase] nota refresh update failed profissional_id=%s err=%v", profissionalID, err)
	}
}
