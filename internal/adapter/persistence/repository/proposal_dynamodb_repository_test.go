package repository

import (
	"testing"
	"time"

	"workbridge/internal/domain/entities"
)

func TestProposalItemRoundTrip(t *testing.T) {
	inicio := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	fim := time.Date(2025, 6, 6, 18, 0, 0, 0, time.UTC)
	created := time.Date(2025, 6, 1, 12, 30, 45, 123456789, time.UTC)

	p := entities.Proposal{
		ID:                 "prop-1",
		SolicitacaoID:      "sol-1",
		ProfissionalID:     "prof-1",
		ValorMaoObraCents:  123456789012,
		ValorMaterialCents: 999,
		DataInicioPrevista: &inicio,
		DataFimPrevista:    &fim,
		ValidadeAte:        created.Add(72 * time.Hour),
		Mensagem:           "Levo material",
		Status:             entities.ProposalStatusPendente,
		CreatedAt:          created,
		UpdatedAt:          created,
	}

	got := fromProposalItem(toProposalItem(p))

	if got.ID != p.ID || got.SolicitacaoID != p.SolicitacaoID || got.ProfissionalID != p.ProfissionalID {
		t.Fatalf("identity fields drifted: %+v", got)
	}
	// Integer cents must survive the trip exactly, including large values.
	if got.ValorMaoObraCents != p.ValorMaoObraCents || got.ValorMaterialCents != p.ValorMaterialCents {
		t.Fatalf("monetary fields drifted: %+v", got)
	}
	if !got.ValidadeAte.Equal(p.ValidadeAte) || !got.CreatedAt.Equal(p.CreatedAt) || !got.UpdatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("timestamps drifted: %+v", got)
	}
	if got.DataInicioPrevista == nil || !got.DataInicioPrevista.Equal(inicio) {
		t.Fatalf("data_inicio_prevista drifted: %+v", got.DataInicioPrevista)
	}
	if got.DataFimPrevista == nil || !got.DataFimPrevista.Equal(fim) {
		t.Fatalf("data_fim_prevista drifted: %+v", got.DataFimPrevista)
	}
	if got.Status != entities.ProposalStatusPendente || got.Mensagem != "Levo material" {
		t.Fatalf("unexpected mapped fields: %+v", got)
	}
}

func TestProposalItemRoundTripOptionalDates(t *testing.T) {
	p := entities.Proposal{
		ID:                "prop-2",
		SolicitacaoID:     "sol-2",
		ProfissionalID:    "prof-2",
		ValorMaoObraCents: 5000,
		ValidadeAte:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:            entities.ProposalStatusRecusada,
	}

	got := fromProposalItem(toProposalItem(p))
	if got.DataInicioPrevista != nil || got.DataFimPrevista != nil {
		t.Fatalf("expected nil optional dates, got %+v", got)
	}
	if got.Status != entities.ProposalStatusRecusada {
		t.Fatalf("unexpected status: %s", got.Status)
	}
}

func TestQuoteRequestItemRoundTrip(t *testing.T) {
	desejada := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	q := entities.QuoteRequest{
		ID:              "sol-1",
		ContratanteID:   "cli-1",
		ProfissionalID:  "prof-1",
		Titulo:          "Trocar fiação",
		Descricao:       "Fiação antiga",
		Cidade:          "São Paulo",
		DataDesejadaIni: &desejada,
		Status:          entities.QuoteRequestStatusAberta,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	got := fromQuoteRequestItem(toQuoteRequestItem(q))
	if got.ID != q.ID || got.Titulo != q.Titulo || got.Cidade != q.Cidade {
		t.Fatalf("fields drifted: %+v", got)
	}
	if got.Status != entities.QuoteRequestStatusAberta {
		t.Fatalf("unexpected status: %s", got.Status)
	}
	if got.DataDesejadaIni == nil || !got.DataDesejadaIni.Equal(desejada) {
		t.Fatalf("data_desejada_ini drifted: %+v", got.DataDesejadaIni)
	}
}
