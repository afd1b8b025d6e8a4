package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/luizndev/unime-pdr/internal/model"
)

// MensagemRepository is the notice-board data-access interface.
type MensagemRepository interface {
	Create(ctx context.Context, m *model.Mensagem) error
	List(ctx context.Context) ([]model.Mensagem, error)
}

type mensagemRepo struct {
	db *gorm.DB
}

// NewMensagemRepo creates the GORM-backed MensagemRepository.
func NewMensagemRepo(db *gorm.DB) MensagemRepository {
	return &mensagemRepo{db: db}
}

func (r *mensagemRepo) Create(ctx context.Context, m *model.Mensagem) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mensagemRepo) List(ctx context.Context) ([]model.Mensagem, error) {
	var msgs []model.Mensagem
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&msgs).Error
	return msgs, err
}
