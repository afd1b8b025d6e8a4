package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User             UserRepository
	Informatica      InformaticaRepository
	Multidisciplinar MultidisciplinarRepository
	Mensagem         MensagemRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:             NewUserRepo(db),
		Informatica:      NewInformaticaRepo(db),
		Multidisciplinar: NewMultidisciplinarRepo(db),
		Mensagem:         NewMensagemRepo(db),
	}
}
