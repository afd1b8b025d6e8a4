package dto

import "github.com/luizndev/unime-pdr/internal/model"

// InformaticaRequest — POST /informatica/register payload. All ten listed
// fields are required non-empty; UserID is the only optional one.
type InformaticaRequest struct {
	Professor   string `json:"professor"   binding:"required"`
	Email       string `json:"email"       binding:"required"`
	Data        string `json:"data"        binding:"required"`
	Modalidade  string `json:"modalidade"  binding:"required"`
	Alunos      string `json:"alunos"      binding:"required"`
	Laboratorio string `json:"laboratorio" binding:"required"`
	Software    string `json:"software"    binding:"required"`
	Equipamento string `json:"equipamento" binding:"required"`
	Observacao  string `json:"observacao"  binding:"required"`
	Token       string `json:"token"       binding:"required"`
	UserID      string `json:"userID"`
}

// MultidisciplinarRequest — POST /multidisciplinar/register payload.
type MultidisciplinarRequest struct {
	Professor   string `json:"professor"   binding:"required"`
	Email       string `json:"email"       binding:"required"`
	Data        string `json:"data"        binding:"required"`
	Modalidade  string `json:"modalidade"  binding:"required"`
	Alunos      string `json:"alunos"      binding:"required"`
	Laboratorio string `json:"laboratorio" binding:"required"`
	Curso       string `json:"curso"       binding:"required"`
	Turno       string `json:"turno"       binding:"required"`
	Semestre    string `json:"semestre"    binding:"required"`
	Disciplina  string `json:"disciplina"  binding:"required"`
	Tema        string `json:"tema"        binding:"required"`
	Roteiro     string `json:"roteiro"     binding:"required"`
	Observacao  string `json:"observacao"  binding:"required"`
	Token       string `json:"token"       binding:"required"`
	UserID      string `json:"userID"`
}

// MinhasSolicitacoesResponse — GET /minhassolicitacoes/:email body, the
// caller's submissions partitioned by reservation type.
type MinhasSolicitacoesResponse struct {
	Informatica      []model.Informatica      `json:"informatica"`
	Multidisciplinar []model.Multidisciplinar `json:"multidisciplinar"`
}

// TokenLookupResult is the union result of a cross-collection token
// search: exactly one of the two fields is set.
type TokenLookupResult struct {
	Informatica      *model.Informatica
	Multidisciplinar *model.Multidisciplinar
}

// Record returns whichever reservation matched, for serialization.
func (r *TokenLookupResult) Record() interface{} {
	if r.Informatica != nil {
		return r.Informatica
	}
	return r.Multidisciplinar
}
