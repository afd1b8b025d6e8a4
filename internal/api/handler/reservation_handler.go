package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/luizndev/unime-pdr/internal/dto"
	"github.com/luizndev/unime-pdr/internal/service"
	"github.com/luizndev/unime-pdr/pkg/response"
)

// ReservationHandler serves the reservation routes.
type ReservationHandler struct {
	resSvc service.ReservationService
}

// NewReservationHandler creates the ReservationHandler.
func NewReservationHandler(resSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{resSvc: resSvc}
}

// ListInformatica handles GET /informatica.
func (h *ReservationHandler) ListInformatica(c *gin.Context) {
	recs, err := h.resSvc.ListInformatica(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erro ao obter registros")
		return
	}
	response.OK(c, recs)
}

// ListMultidisciplinar handles GET /multidisciplinar.
func (h *ReservationHandler) ListMultidisciplinar(c *gin.Context) {
	recs, err := h.resSvc.ListMultidisciplinar(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erro ao obter registros")
		return
	}
	response.OK(c, recs)
}

// RegisterInformatica handles POST /informatica/register.
func (h *ReservationHandler) RegisterInformatica(c *gin.Context) {
	var req dto.InformaticaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Preencha todos os campos")
		return
	}

	if err := h.resSvc.SubmitInformatica(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrCapacityExceeded):
			response.BadRequest(c, "Laboratório Esgotado para esse dia")
		case errors.Is(err, service.ErrSlotConflict):
			response.BadRequest(c, "Laboratório já possui uma solicitação para esse dia")
		default:
			response.InternalError(c, "Erro ao registrar formulário")
		}
		return
	}

	response.Created(c, "Formulário registrado com sucesso")
}

// RegisterMultidisciplinar handles POST /multidisciplinar/register.
func (h *ReservationHandler) RegisterMultidisciplinar(c *gin.Context) {
	var req dto.MultidisciplinarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Preencha todos os campos")
		return
	}

	if err := h.resSvc.SubmitMultidisciplinar(c.Request.Context(), &req); err != nil {
		response.InternalError(c, "Erro ao registrar formulário")
		return
	}

	response.Created(c, "Formulário registrado com sucesso")
}

// BuscarToken handles GET /buscartoken/:id, the cross-collection token
// lookup. The :id parameter is the submission token, not a record id.
func (h *ReservationHandler) BuscarToken(c *gin.Context) {
	token := c.Param("id")

	result, err := h.resSvc.FindByToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Token não encontrado")
			return
		}
		response.InternalError(c, "Erro ao obter dados do token")
		return
	}

	response.OK(c, result.Record())
}

// MinhasSolicitacoes handles GET /minhassolicitacoes/:email.
func (h *ReservationHandler) MinhasSolicitacoes(c *gin.Context) {
	email := c.Param("email")

	result, err := h.resSvc.FindByOwnerEmail(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c, "Erro ao obter solicitações do professor")
		return
	}

	response.OK(c, result)
}
