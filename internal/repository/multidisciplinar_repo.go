package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/luizndev/unime-pdr/internal/model"
)

// MultidisciplinarRepository is the data-access interface for
// multidisciplinary-lab reservations.
type MultidisciplinarRepository interface {
	Create(ctx context.Context, r *model.Multidisciplinar) error
	GetByToken(ctx context.Context, token string) (*model.Multidisciplinar, error)
	ListByEmail(ctx context.Context, email string) ([]model.Multidisciplinar, error)
	List(ctx context.Context) ([]model.Multidisciplinar, error)
}

type multidisciplinarRepo struct {
	db *gorm.DB
}

// NewMultidisciplinarRepo creates the GORM-backed MultidisciplinarRepository.
func NewMultidisciplinarRepo(db *gorm.DB) MultidisciplinarRepository {
	return &multidisciplinarRepo{db: db}
}

func (r *multidisciplinarRepo) Create(ctx context.Context, rec *model.Multidisciplinar) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *multidisciplinarRepo) GetByToken(ctx context.Context, token string) (*model.Multidisciplinar, error) {
	var rec model.Multidisciplinar
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *multidisciplinarRepo) ListByEmail(ctx context.Context, email string) ([]model.Multidisciplinar, error) {
	var recs []model.Multidisciplinar
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&recs).Error
	return recs, err
}

func (r *multidisciplinarRepo) List(ctx context.Context) ([]model.Multidisciplinar, error) {
	var recs []model.Multidisciplinar
	err := r.db.WithContext(ctx).Find(&recs).Error
	return recs, err
}
