package model

// Multidisciplinar — multidisciplinar table. A booking request for the
// multidisciplinary labs. Unlike Informatica there is no capacity cap and
// no slot uniqueness; any number of submissions may share date and lab.
type Multidisciplinar struct {
	ID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"   json:"id"`
	Professor   string `gorm:"type:varchar(255);not null"                       json:"professor"`
	Email       string `gorm:"type:varchar(255);not null;index"                 json:"email"`
	Data        string `gorm:"type:varchar(20);not null"                        json:"data"`
	Modalidade  string `gorm:"type:varchar(100);not null"                       json:"modalidade"`
	Alunos      string `gorm:"type:varchar(100);not null"                       json:"alunos"`
	Laboratorio string `gorm:"type:varchar(100);not null"                       json:"laboratorio"`
	Curso       string `gorm:"type:varchar(100);not null"                       json:"curso"`
	Turno       string `gorm:"type:varchar(50);not null"                        json:"turno"`
	Semestre    string `gorm:"type:varchar(50);not null"                        json:"semestre"`
	Disciplina  string `gorm:"type:varchar(100);not null"                       json:"disciplina"`
	Tema        string `gorm:"type:varchar(255);not null"                       json:"tema"`
	Roteiro     string `gorm:"type:text;not null"                               json:"roteiro"`
	Observacao  string `gorm:"type:text;not null"                               json:"observacao"`
	Token       string `gorm:"type:varchar(255);not null;index"                 json:"token"`
	UserID      string `gorm:"type:varchar(64);column:user_id"                  json:"userID"`
	Status      string `gorm:"type:varchar(50);not null;default:'Aguardando Confirmação'" json:"status"`
	BaseModel
}

// TableName sets the table name.
func (Multidisciplinar) TableName() string { return "multidisciplinar" }
