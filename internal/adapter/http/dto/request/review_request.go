package request

// ReviewRequest is the payload rating one side of a completed job.
type ReviewRequest struct {
	JobID       string `json:"job_id" binding:"required"`
	AvaliadorID string `json:"avaliador_id" binding:"required"`
	Nota        int    `json:"nota" binding:"required"`
	Comentario  string `json:"comentario"`
}
