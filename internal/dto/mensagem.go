package dto

// MensagemRequest — POST /mensagens payload.
type MensagemRequest struct {
	Content  string `json:"content"  binding:"required"`
	Username string `json:"username" binding:"required"`
}
