package model

import "time"

// BaseModel carries the audit timestamps every table has.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// StatusAguardando is the initial status of every reservation. It is set
// once on insert and no exposed endpoint transitions it.
const StatusAguardando = "Aguardando Confirmação"
