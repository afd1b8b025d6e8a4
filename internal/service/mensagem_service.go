package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/luizndev/unime-pdr/internal/dto"
	"github.com/luizndev/unime-pdr/internal/model"
	"github.com/luizndev/unime-pdr/internal/repository"
)

// MensagemService handles the notice board.
type MensagemService interface {
	Create(ctx context.Context, req *dto.MensagemRequest) error
	List(ctx context.Context) ([]model.Mensagem, error)
}

type mensagemService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMensagemService creates the MensagemService.
func NewMensagemService(repo *repository.Repository, logger *zap.Logger) MensagemService {
	return &mensagemService{repo: repo, logger: logger}
}

func (s *mensagemService) Create(ctx context.Context, req *dto.MensagemRequest) error {
	msg := &model.Mensagem{
		Content:  req.Content,
		Username: req.Username,
	}
	if err := s.repo.Mensagem.Create(ctx, msg); err != nil {
		s.logger.Error("inserção de mensagem falhou", zap.Error(err))
		return err
	}
	return nil
}

func (s *mensagemService) List(ctx context.Context) ([]model.Mensagem, error) {
	msgs, err := s.repo.Mensagem.List(ctx)
	if err != nil {
		s.logger.Error("listagem de mensagens falhou", zap.Error(err))
		return nil, err
	}
	if msgs == nil {
		msgs = []model.Mensagem{}
	}
	return msgs, nil
}
