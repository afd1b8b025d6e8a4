package handler

import "github.com/luizndev/unime-pdr/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth        *AuthHandler
	Reservation *ReservationHandler
	Mensagem    *MensagemHandler
}

// NewHandler wires the handlers to their services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Reservation: NewReservationHandler(svc.Reservation),
		Mensagem:    NewMensagemHandler(svc.Mensagem),
	}
}
