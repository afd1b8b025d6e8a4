package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/luizndev/unime-pdr/internal/dto"
	"github.com/luizndev/unime-pdr/internal/service"
	"github.com/luizndev/unime-pdr/pkg/response"
)

// MensagemHandler serves the notice-board routes.
type MensagemHandler struct {
	msgSvc service.MensagemService
}

// NewMensagemHandler creates the MensagemHandler.
func NewMensagemHandler(msgSvc service.MensagemService) *MensagemHandler {
	return &MensagemHandler{msgSvc: msgSvc}
}

// List handles GET /mensagens.
func (h *MensagemHandler) List(c *gin.Context) {
	msgs, err := h.msgSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erro ao obter mensagens")
		return
	}
	response.OK(c, msgs)
}

// Create handles POST /mensagens.
func (h *MensagemHandler) Create(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	var req dto.MensagemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Preencha todos os campos")
		return
	}

	if err := h.msgSvc.Create(c.Request.Context(), &req); err != nil {
		response.InternalError(c, "Erro ao registrar mensagem")
		return
	}

	response.Created(c, "Mensagem registrada com sucesso")
}
