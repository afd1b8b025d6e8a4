package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/luizndev/unime-pdr/internal/dto"
	"github.com/luizndev/unime-pdr/internal/model"
	"github.com/luizndev/unime-pdr/internal/repository"
)

// Seven slots per day across the computer labs.
const informaticaDailyCapacity = 7

var (
	ErrCapacityExceeded = errors.New("laboratório esgotado para esse dia")
	ErrSlotConflict     = errors.New("laboratório já possui uma solicitação para esse dia")
	ErrNotFound         = errors.New("registro não encontrado")
)

// ReservationService validates and persists reservation submissions and
// looks them up by submission token or owner e-mail.
type ReservationService interface {
	SubmitInformatica(ctx context.Context, req *dto.InformaticaRequest) error
	SubmitMultidisciplinar(ctx context.Context, req *dto.MultidisciplinarRequest) error
	FindByToken(ctx context.Context, token string) (*dto.TokenLookupResult, error)
	FindByOwnerEmail(ctx context.Context, email string) (*dto.MinhasSolicitacoesResponse, error)
	ListInformatica(ctx context.Context) ([]model.Informatica, error)
	ListMultidisciplinar(ctx context.Context) ([]model.Multidisciplinar, error)
}

type reservationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReservationService creates the ReservationService.
func NewReservationService(repo *repository.Repository, logger *zap.Logger) ReservationService {
	return &reservationService{repo: repo, logger: logger}
}

// SubmitInformatica enforces the two business rules that only apply to
// the informática shape: at most seven reservations on a date, and at
// most one reservation per (date, lab) pair.
//
// The capacity check is read-then-write; two concurrent submissions for
// the same date can still land an eighth row. The slot rule does not
// share that window: the pre-check gives the friendly error on the common
// path, and the (data, laboratorio) unique index catches the race on
// insert, which is reported as the same conflict.
func (s *reservationService) SubmitInformatica(ctx context.Context, req *dto.InformaticaRequest) error {
	count, err := s.repo.Informatica.CountByData(ctx, req.Data)
	if err != nil {
		s.logger.Error("contagem de reservas por dia falhou", zap.Error(err))
		return err
	}
	if count >= informaticaDailyCapacity {
		return ErrCapacityExceeded
	}

	_, err = s.repo.Informatica.GetByDataLaboratorio(ctx, req.Data, req.Laboratorio)
	switch {
	case err == nil:
		return ErrSlotConflict
	case !errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Error("consulta de conflito de laboratório falhou", zap.Error(err))
		return err
	}

	rec := &model.Informatica{
		Professor:   req.Professor,
		Email:       req.Email,
		Data:        req.Data,
		Modalidade:  req.Modalidade,
		Alunos:      req.Alunos,
		Laboratorio: req.Laboratorio,
		Software:    req.Software,
		Equipamento: req.Equipamento,
		Observacao:  req.Observacao,
		Token:       req.Token,
		UserID:      req.UserID,
		Status:      model.StatusAguardando,
	}

	if err := s.repo.Informatica.Create(ctx, rec); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlotConflict
		}
		s.logger.Error("inserção de reserva de informática falhou", zap.Error(err))
		return err
	}

	return nil
}

// SubmitMultidisciplinar persists without capacity or slot checks. The
// asymmetry with SubmitInformatica is the documented behavior of the
// system, kept until the coordination office decides otherwise.
func (s *reservationService) SubmitMultidisciplinar(ctx context.Context, req *dto.MultidisciplinarRequest) error {
	rec := &model.Multidisciplinar{
		Professor:   req.Professor,
		Email:       req.Email,
		Data:        req.Data,
		Modalidade:  req.Modalidade,
		Alunos:      req.Alunos,
		Laboratorio: req.Laboratorio,
		Curso:       req.Curso,
		Turno:       req.Turno,
		Semestre:    req.Semestre,
		Disciplina:  req.Disciplina,
		Tema:        req.Tema,
		Roteiro:     req.Roteiro,
		Observacao:  req.Observacao,
		Token:       req.Token,
		UserID:      req.UserID,
		Status:      model.StatusAguardando,
	}

	if err := s.repo.Multidisciplinar.Create(ctx, rec); err != nil {
		s.logger.Error("inserção de reserva multidisciplinar falhou", zap.Error(err))
		return err
	}

	return nil
}

// FindByToken searches the informática collection first, then the
// multidisciplinar one. The order is fixed: if the same token somehow
// exists in both, the informática record wins.
func (s *reservationService) FindByToken(ctx context.Context, token string) (*dto.TokenLookupResult, error) {
	inf, err := s.repo.Informatica.GetByToken(ctx, token)
	switch {
	case err == nil:
		return &dto.TokenLookupResult{Informatica: inf}, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Error("busca por token em informática falhou", zap.Error(err))
		return nil, err
	}

	multi, err := s.repo.Multidisciplinar.GetByToken(ctx, token)
	switch {
	case err == nil:
		return &dto.TokenLookupResult{Multidisciplinar: multi}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		s.logger.Error("busca por token em multidisciplinar falhou", zap.Error(err))
		return nil, err
	}
}

// FindByOwnerEmail returns every reservation submitted with the given
// e-mail, partitioned by type. Order within each slice is whatever the
// store returns.
func (s *reservationService) FindByOwnerEmail(ctx context.Context, email string) (*dto.MinhasSolicitacoesResponse, error) {
	inf, err := s.repo.Informatica.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error("listagem de solicitações de informática falhou", zap.Error(err))
		return nil, err
	}

	multi, err := s.repo.Multidisciplinar.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error("listagem de solicitações multidisciplinares falhou", zap.Error(err))
		return nil, err
	}

	if inf == nil {
		inf = []model.Informatica{}
	}
	if multi == nil {
		multi = []model.Multidisciplinar{}
	}

	return &dto.MinhasSolicitacoesResponse{
		Informatica:      inf,
		Multidisciplinar: multi,
	}, nil
}

func (s *reservationService) ListInformatica(ctx context.Context) ([]model.Informatica, error) {
	recs, err := s.repo.Informatica.List(ctx)
	if err != nil {
		s.logger.Error("listagem de reservas de informática falhou", zap.Error(err))
		return nil, err
	}
	if recs == nil {
		recs = []model.Informatica{}
	}
	return recs, nil
}

func (s *reservationService) ListMultidisciplinar(ctx context.Context) ([]model.Multidisciplinar, error) {
	recs, err := s.repo.Multidisciplinar.List(ctx)
	if err != nil {
		s.logger.Error("listagem de reservas multidisciplinares falhou", zap.Error(err))
		return nil, err
	}
	if recs == nil {
		recs = []model.Multidisciplinar{}
	}
	return recs, nil
}
