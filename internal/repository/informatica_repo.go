package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/luizndev/unime-pdr/internal/model"
)

// InformaticaRepository is the data-access interface for computer-lab
// reservations.
type InformaticaRepository interface {
	// Create inserts the reservation. The (data, laboratorio) unique
	// index makes a concurrent duplicate surface as gorm.ErrDuplicatedKey.
	Create(ctx context.Context, r *model.Informatica) error
	CountByData(ctx context.Context, data string) (int64, error)
	GetByDataLaboratorio(ctx context.Context, data, laboratorio string) (*model.Informatica, error)
	GetByToken(ctx context.Context, token string) (*model.Informatica, error)
	ListByEmail(ctx context.Context, email string) ([]model.Informatica, error)
	List(ctx context.Context) ([]model.Informatica, error)
}

type informaticaRepo struct {
	db *gorm.DB
}

// NewInformaticaRepo creates the GORM-backed InformaticaRepository.
func NewInformaticaRepo(db *gorm.DB) InformaticaRepository {
	return &informaticaRepo{db: db}
}

func (r *informaticaRepo) Create(ctx context.Context, rec *model.Informatica) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *informaticaRepo) CountByData(ctx context.Context, data string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Informatica{}).
		Where("data = ?", data).
		Count(&count).Error
	return count, err
}

func (r *informaticaRepo) GetByDataLaboratorio(ctx context.Context, data, laboratorio string) (*model.Informatica, error) {
	var rec model.Informatica
	err := r.db.WithContext(ctx).
		Where("data = ? AND laboratorio = ?", data, laboratorio).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *informaticaRepo) GetByToken(ctx context.Context, token string) (*model.Informatica, error) {
	var rec model.Informatica
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *informaticaRepo) ListByEmail(ctx context.Context, email string) ([]model.Informatica, error) {
	var recs []model.Informatica
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&recs).Error
	return recs, err
}

func (r *informaticaRepo) List(ctx context.Context) ([]model.Informatica, error) {
	var recs []model.Informatica
	err := r.db.WithContext(ctx).Find(&recs).Error
	return recs, err
}
