package response

import (
	"testing"
	"time"

	"workbridge/internal/domain/entities"
)

func TestFromProposal(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	inicio := now.Add(24 * time.Hour)

	p := entities.Proposal{
		ID:                 "prop-1",
		SolicitacaoID:      "sol-1",
		ProfissionalID:     "prof-1",
		ValorMaoObraCents:  15000,
		ValorMaterialCents: 2000,
		DataInicioPrevista: &inicio,
		ValidadeAte:        now.Add(72 * time.Hour),
		Mensagem:           "Posso começar segunda",
		Status:             entities.ProposalStatusPendente,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	got := FromProposal(p, now)

	if got.ID != "prop-1" || got.SolicitacaoID != "sol-1" || got.ProfissionalID != "prof-1" {
		t.Fatalf("identity fields drifted: %+v", got)
	}
	if got.ValorMaoObraCents != 15000 || got.ValorMaterialCents != 2000 {
		t.Fatalf("monetary fields drifted: %+v", got)
	}
	if got.Status != "pendente" {
		t.Fatalf("expected pendente, got %s", got.Status)
	}
	if got.DataInicioPrevista == nil || !got.DataInicioPrevista.Equal(inicio) {
		t.Fatalf("data_inicio_prevista drifted: %+v", got.DataInicioPrevista)
	}
	if got.DataFimPrevista != nil {
		t.Fatalf("expected nil data_fim_prevista, got %+v", got.DataFimPrevista)
	}
}

func TestFromProposalDerivesExpirada(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	p := entities.Proposal{
		ID:          "prop-1",
		Status:      entities.ProposalStatusPendente,
		ValidadeAte: now.Add(-time.Minute),
	}

	if got := FromProposal(p, now); got.Status != "expirada" {
		t.Fatalf("expected expirada, got %s", got.Status)
	}

	// Terminal statuses are never rewritten by the validade window.
	p.Status = entities.ProposalStatusAceita
	if got := FromProposal(p, now); got.Status != "aceita" {
		t.Fatalf("expected aceita, got %s", got.Status)
	}
}

func TestFromAcceptedProposal(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got := FromAcceptedProposal(
		entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusAceita, ValidadeAte: now.Add(time.Hour)},
		entities.Job{ID: "job-1", PropostaID: "prop-1", SolicitacaoID: "sol-1"},
		now,
	)

	if got.Proposta.ID != "prop-1" || got.Proposta.Status != "aceita" {
		t.Fatalf("unexpected proposta: %+v", got.Proposta)
	}
	if got.Job.ID != "job-1" || got.Job.PropostaID != "prop-1" {
		t.Fatalf("unexpected job: %+v", got.Job)
	}
}
