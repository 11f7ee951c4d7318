package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase/interfaces"
	mock_interfaces "workbridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newProposalUseCaseAt(repo interfaces.IProposalRepository, quoteRepo interfaces.IQuoteRequestRepository, autoReject bool) *ProposalUseCase {
	uc := NewProposalUseCase(repo, quoteRepo, autoReject)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func validSubmitInput() SubmitProposalInput {
	return SubmitProposalInput{
		SolicitacaoID:     "sol-1",
		ProfissionalID:    "prof-1",
		ValorMaoObraCents: 15000,
		ValidadeAte:       fixedNow.Add(72 * time.Hour),
		Mensagem:          "Posso começar na segunda",
	}
}

func TestProposalUseCase_Submit(t *testing.T) {
	t.Run("missing solicitacao id", func(t *testing.T) {
		uc := newProposalUseCaseAt(nil, nil, false)
		in := validSubmitInput()
		in.SolicitacaoID = "  "
		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrInvalidQuoteRequestID) {
			t.Fatalf("expected ErrInvalidQuoteRequestID, got %v", err)
		}
	})

	t.Run("missing profissional id", func(t *testing.T) {
		uc := newProposalUseCaseAt(nil, nil, false)
		in := validSubmitInput()
		in.ProfissionalID = ""
		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrInvalidProfessionalID) {
			t.Fatalf("expected ErrInvalidProfessionalID, got %v", err)
		}
	})

	t.Run("invalid labor value", func(t *testing.T) {
		uc := newProposalUseCaseAt(nil, nil, false)
		in := validSubmitInput()
		in.ValorMaoObraCents = 0
		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrInvalidProposalVal) {
			t.Fatalf("expected ErrInvalidProposalVal, got %v", err)
		}
	})

	t.Run("negative material value", func(t *testing.T) {
		uc := newProposalUseCaseAt(nil, nil, false)
		in := validSubmitInput()
		in.ValorMaterialCents = -1
		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrInvalidProposalVal) {
			t.Fatalf("expected ErrInvalidProposalVal, got %v", err)
		}
	})

	t.Run("validade in the past", func(t *testing.T) {
		uc := newProposalUseCaseAt(nil, nil, false)
		in := validSubmitInput()
		in.ValidadeAte = fixedNow.Add(-time.Hour)
		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrInvalidValidade) {
			t.Fatalf("expected ErrInvalidValidade, got %v", err)
		}
	})

	t.Run("solicitacao not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := newProposalUseCaseAt(nil, quoteRepo, false)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(entities.QuoteRequest{}, nil)

		_, err := uc.Submit(context.Background(), validSubmitInput())
		if !errors.Is(err, ErrQuoteRequestNotFound) {
			t.Fatalf("expected ErrQuoteRequestNotFound, got %v", err)
		}
	})

	t.Run("solicitacao closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := newProposalUseCaseAt(nil, quoteRepo, false)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(entities.QuoteRequest{ID: "sol-1", Status: entities.QuoteRequestStatusFechada}, nil)

		_, err := uc.Submit(context.Background(), validSubmitInput())
		if !errors.Is(err, ErrQuoteRequestClosed) {
			t.Fatalf("expected ErrQuoteRequestClosed, got %v", err)
		}
	})

	t.Run("duplicate pre-check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := newProposalUseCaseAt(repo, quoteRepo, false)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(entities.QuoteRequest{ID: "sol-1", Status: entities.QuoteRequestStatusAberta}, nil)
		repo.EXPECT().GetByPair(gomock.Any(), "sol-1", "prof-1").Return(entities.Proposal{ID: "existing"}, nil)

		_, err := uc.Submit(context.Background(), validSubmitInput())
		if !errors.Is(err, ErrDuplicateProposal) {
			t.Fatalf("expected ErrDuplicateProposal, got %v", err)
		}
	})

	t.Run("duplicate lost race on conditional put", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := newProposalUseCaseAt(repo, quoteRepo, false)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(entities.QuoteRequest{ID: "sol-1", Status: entities.QuoteRequestStatusAberta}, nil)
		repo.EXPECT().GetByPair(gomock.Any(), "sol-1", "prof-1").Return(entities.Proposal{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).Return(entities.Proposal{}, nil)

		_, err := uc.Submit(context.Background(), validSubmitInput())
		if !errors.Is(err, ErrDuplicateProposal) {
			t.Fatalf("expected ErrDuplicateProposal, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := newProposalUseCaseAt(repo, quoteRepo, false)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(entities.QuoteRequest{ID: "sol-1", Status: entities.QuoteRequestStatusAberta}, nil)
		repo.EXPECT().GetByPair(gomock.Any(), "sol-1", "prof-1").Return(entities.Proposal{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.ID == "" || p.Status != entities.ProposalStatusPendente {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				if p.ValorMaoObraCents != 15000 || p.ValorMaterialCents != 0 {
					t.Fatalf("unexpected values: %+v", p)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		res, err := uc.Submit(context.Background(), validSubmitInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestProposalUseCase_Accept(t *testing.T) {
	pending := entities.Proposal{
		ID:             "prop-1",
		SolicitacaoID:  "sol-1",
		ProfissionalID: "prof-1",
		Status:         entities.ProposalStatusPendente,
		ValidadeAte:    fixedNow.Add(24 * time.Hour),
	}
	solicitacao := entities.QuoteRequest{
		ID:            "sol-1",
		ContratanteID: "cli-1",
		Titulo:        "Trocar fiação",
		Cidade:        "São Paulo",
		Status:        entities.QuoteRequestStatusAberta,
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := newProposalUseCaseAt(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, nil)

		_, _, err := uc.Accept(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("already accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := newProposalUseCaseAt(repo, nil, false)

		accepted := pending
		accepted.Status = entities.ProposalStatusAceita
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(accepted, nil)

		_, _, err := uc.Accept(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalNotPending) {
			t.Fatalf("expected ErrProposalNotPending, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := newProposalUseCaseAt(repo, nil, false)

		expired := pending
		expired.ValidadeAte = fixedNow.Add(-time.Minute)
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(expired, nil)

		_, _, err := uc.Accept(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalExpired) {
			t.Fatalf("expected ErrProposalExpired, got %v", err)
		}
	})

	t.Run("success copies job fields from solicitacao", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := newProposalUseCaseAt(repo, quoteRepo, false)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(pending, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(solicitacao, nil)
		repo.EXPECT().AcceptAndCreateJob(gomock.Any(), pending, gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, p entities.Proposal, job entities.Job) (entities.Proposal, error) {
				if job.ID == "" || job.ID == p.SolicitacaoID {
					t.Fatalf("job id must be generated: %+v", job)
				}
				if job.ContratanteID != "cli-1" || job.Cidade != "São Paulo" || job.Titulo != "Trocar fiação" {
					t.Fatalf("job fields must come from the solicitacao: %+v", job)
				}
				if job.PropostaID != "prop-1" || job.ProfissionalID != "prof-1" {
					t.Fatalf("unexpected job links: %+v", job)
				}
				accepted := p
				accepted.Status = entities.ProposalStatusAceita
				return accepted, nil
			},
		)

		res, job, err := uc.Accept(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProposalStatusAceita {
			t.Fatalf("expected aceita, got %s", res.Status)
		}
		if job.SolicitacaoID != "sol-1" {
			t.Fatalf("unexpected job: %+v", job)
		}
	})

	t.Run("concurrent accept lost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := newProposalUseCaseAt(repo, quoteRepo, false)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(pending, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(solicitacao, nil)
		repo.EXPECT().AcceptAndCreateJob(gomock.Any(), pending, gomock.Any()).Return(entities.Proposal{}, nil)

		_, _, err := uc.Accept(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalNotPending) {
			t.Fatalf("expected ErrProposalNotPending, got %v", err)
		}
	})

	t.Run("auto-reject declines pendente siblings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := newProposalUseCaseAt(repo, quoteRepo, true)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(pending, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "sol-1").Return(solicitacao, nil)
		repo.EXPECT().AcceptAndCreateJob(gomock.Any(), pending, gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ entities.Job) (entities.Proposal, error) {
				accepted := p
				accepted.Status = entities.ProposalStatusAceita
				return accepted, nil
			},
		)
		siblings := []entities.Proposal{
			{ID: "prop-1", SolicitacaoID: "sol-1", ProfissionalID: "prof-1", Status: entities.ProposalStatusAceita},
			{ID: "prop-2", SolicitacaoID: "sol-1", ProfissionalID: "prof-2", Status: entities.ProposalStatusPendente},
			{ID: "prop-3", SolicitacaoID: "sol-1", ProfissionalID: "prof-3", Status: entities.ProposalStatusRecusada},
		}
		repo.EXPECT().List(gomock.Any(), interfaces.ProposalFilter{SolicitacaoID: "sol-1"}).Return(siblings, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "sol-1", "prof-2", entities.ProposalStatusPendente, entities.ProposalStatusRecusada).Return(siblings[1], nil)

		_, _, err := uc.Accept(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_Reject(t *testing.T) {
	pending := entities.Proposal{
		ID:             "prop-1",
		SolicitacaoID:  "sol-1",
		ProfissionalID: "prof-1",
		Status:         entities.ProposalStatusPendente,
		ValidadeAte:    fixedNow.Add(24 * time.Hour),
	}

	t.Run("invalid id", func(t *testing.T) {
		uc := newProposalUseCaseAt(nil, nil, false)
		_, err := uc.Reject(context.Background(), " ")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := newProposalUseCaseAt(repo, nil, false)

		rejected := pending
		rejected.Status = entities.ProposalStatusRecusada
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "sol-1", "prof-1", entities.ProposalStatusPendente, entities.ProposalStatusRecusada).Return(rejected, nil)

		res, err := uc.Reject(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProposalStatusRecusada {
			t.Fatalf("expected recusada, got %s", res.Status)
		}
	})

	t.Run("condition failed means already terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := newProposalUseCaseAt(repo, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "sol-1", "prof-1", entities.ProposalStatusPendente, entities.ProposalStatusRecusada).Return(entities.Proposal{}, nil)

		_, err := uc.Reject(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalNotPending) {
			t.Fatalf("expected ErrProposalNotPending, got %v", err)
		}
	})
}

func TestProposalUseCase_List(t *testing.T) {
	t.Run("status filter uses derived status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := newProposalUseCaseAt(repo, nil, false)

		stored := []entities.Proposal{
			{ID: "prop-1", Status: entities.ProposalStatusPendente, ValidadeAte: fixedNow.Add(time.Hour)},
			{ID: "prop-2", Status: entities.ProposalStatusPendente, ValidadeAte: fixedNow.Add(-time.Hour)},
			{ID: "prop-3", Status: entities.ProposalStatusAceita, ValidadeAte: fixedNow.Add(-time.Hour)},
		}
		repo.EXPECT().List(gomock.Any(), interfaces.ProposalFilter{SolicitacaoID: "sol-1"}).Return(stored, nil)

		res, err := uc.List(context.Background(), interfaces.ProposalFilter{SolicitacaoID: " sol-1 "}, entities.ProposalStatusExpirada)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "prop-2" {
			t.Fatalf("expected only the expired pendente, got %+v", res)
		}
	})

	t.Run("no status returns everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := newProposalUseCaseAt(repo, nil, false)

		stored := []entities.Proposal{{ID: "prop-1"}, {ID: "prop-2"}}
		repo.EXPECT().List(gomock.Any(), interfaces.ProposalFilter{}).Return(stored, nil)

		res, err := uc.List(context.Background(), interfaces.ProposalFilter{}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2, got %d", len(res))
		}
	})
}
