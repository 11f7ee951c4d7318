package response

import (
	"time"

	"workbridge/internal/domain/entities"
)

type ConversationResponse struct {
	ID            string    `json:"id"`
	SolicitacaoID string    `json:"solicitacao_id,omitempty"`
	JobID         string    `json:"job_id,omitempty"`
	CriadoEm      time.Time `json:"criado_em"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	ConversaID string    `json:"conversa_id"`
	AutorID    string    `json:"autor_id"`
	Corpo      string    `json:"corpo"`
	CriadoEm   time.Time `json:"criado_em"`
}

func FromConversation(c entities.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:            c.ID,
		SolicitacaoID: c.SolicitacaoID,
		JobID:         c.JobID,
		CriadoEm:      c.CriadoEm,
	}
}

func FromMessage(m entities.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		ConversaID: m.ConversaID,
		AutorID:    m.AutorID,
		Corpo:      m.Corpo,
		CriadoEm:   m.CriadoEm,
	}
}

func FromMessages(list []entities.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMessage(m))
	}
	return out
}
