package service

import (
	"go.uber.org/zap"

	"github.com/luizndev/unime-pdr/config"
	"github.com/luizndev/unime-pdr/internal/repository"
	"github.com/luizndev/unime-pdr/pkg/jwt"
	"github.com/luizndev/unime-pdr/pkg/mailcheck"
	"github.com/luizndev/unime-pdr/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth        AuthService
	Reservation ReservationService
	Mensagem    MensagemService
}

// NewService wires the service implementations.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	checker *mailcheck.Checker,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(repo, jwtMgr, checker, rdb, logger),
		Reservation: NewReservationService(repo, logger),
		Mensagem:    NewMensagemService(repo, logger),
	}
}
