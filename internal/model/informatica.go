package model

// Informatica — informatica table. A booking request for a computer lab.
//
// Two invariants hold for this shape only: at most seven rows share the
// same Data, and (Data, Laboratorio) is unique — the latter is backed by
// a unique index so concurrent submissions cannot both land.
type Informatica struct {
	ID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"   json:"id"`
	Professor   string `gorm:"type:varchar(255);not null"                       json:"professor"`
	Email       string `gorm:"type:varchar(255);not null;index"                 json:"email"`
	Data        string `gorm:"type:varchar(20);not null;index"                  json:"data"`
	Modalidade  string `gorm:"type:varchar(100);not null"                       json:"modalidade"`
	Alunos      string `gorm:"type:varchar(100);not null"                       json:"alunos"`
	Laboratorio string `gorm:"type:varchar(100);not null"                       json:"laboratorio"`
	Software    string `gorm:"type:text;not null"                               json:"software"`
	Equipamento string `gorm:"type:text;not null"                               json:"equipamento"`
	Observacao  string `gorm:"type:text;not null"                               json:"observacao"`
	Token       string `gorm:"type:varchar(255);not null;index"                 json:"token"`
	UserID      string `gorm:"type:varchar(64);column:user_id"                  json:"userID"`
	Status      string `gorm:"type:varchar(50);not null;default:'Aguardando Confirmação'" json:"status"`
	BaseModel
}

// TableName sets the table name.
func (Informatica) TableName() string { return "informatica" }
