package model

import "time"

// Mensagem — mensagens table. Notice-board entry posted by a signed-in user.
type Mensagem struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Content   string    `gorm:"type:text;not null"                             json:"content"`
	Username  string    `gorm:"type:varchar(100);not null"                     json:"username"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"createdAt"`
}

// TableName sets the table name.
func (Mensagem) TableName() string { return "mensagens" }
