package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luizndev/unime-pdr/internal/dto"
	"github.com/luizndev/unime-pdr/internal/service"
	"github.com/luizndev/unime-pdr/pkg/jwt"
	"github.com/luizndev/unime-pdr/pkg/response"
)

// AuthHandler serves the /auth routes.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Preencha todos os campos")
		return
	}

	if err := h.authSvc.Register(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			response.BadRequest(c, "As senhas não conferem")
		case errors.Is(err, service.ErrInvalidEmailFormat):
			response.BadRequest(c, "Formato de email inválido")
		case errors.Is(err, service.ErrDomainNotAllowed):
			response.BadRequest(c, "Por favor, utilize um email institucional (@kroton.com.br ou @cogna.com.br)")
		case errors.Is(err, service.ErrNoMXRecords):
			response.BadRequest(c, "O domínio do email não possui registros válidos")
		case errors.Is(err, service.ErrMXIndeterminate):
			response.BadRequest(c, "Não foi possível verificar o domínio do email, tente novamente")
		case errors.Is(err, service.ErrDuplicateEmail):
			response.BadRequest(c, "Email já cadastrado")
		default:
			response.InternalError(c, "Erro ao cadastrar")
		}
		return
	}

	response.Created(c, "Usuário cadastrado com sucesso")
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Preencha todos os campos")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "Usuário não encontrado!")
		case errors.Is(err, service.ErrInvalidCredentials):
			response.UnprocessableEntity(c, "Senha incorreta")
		case errors.Is(err, jwt.ErrSecretMissing):
			response.InternalError(c, "Secret key not set")
		default:
			response.InternalError(c, "Erro ao logar")
		}
		return
	}

	response.OK(c, result)
}

// Logout handles POST /auth/logout. The token's JTI goes to the
// blacklist for its remaining lifetime; the middleware then rejects the
// same bearer with "Token inválido!".
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("token_jti")
	var expiresAt time.Time
	if v, ok := c.Get("token_exp"); ok {
		expiresAt, _ = v.(time.Time)
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.InternalError(c, "Erro ao deslogar")
		return
	}

	response.OK(c, response.MessageResponse{Message: "Deslogado com sucesso"})
}

// GetUser handles GET /auth/:id.
func (h *AuthHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.authSvc.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "Usuário não encontrado")
			return
		}
		response.InternalError(c, "Erro ao obter usuário")
		return
	}

	response.OK(c, dto.UserResponse{User: user})
}
