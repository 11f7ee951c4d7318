package request

// ConversationRequest opens a conversa tied to a solicitação and/or a job.
// At least one reference must be present; the use case enforces it.
type ConversationRequest struct {
	SolicitacaoID string `json:"solicitacao_id"`
	JobID         string `json:"job_id"`
}

// MessageRequest appends a message to an existing conversa.
type MessageRequest struct {
	AutorID string `json:"autor_id" binding:"required"`
	Corpo   string `json:"corpo" binding:"required"`
}
