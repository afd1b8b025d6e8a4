package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/luizndev/unime-pdr/internal/dto"
	"github.com/luizndev/unime-pdr/internal/model"
	"github.com/luizndev/unime-pdr/internal/repository"
	"github.com/luizndev/unime-pdr/pkg/jwt"
	"github.com/luizndev/unime-pdr/pkg/mailcheck"
	"github.com/luizndev/unime-pdr/pkg/redis"
)

// bcrypt cost used for every stored password.
const passwordHashCost = 12

var (
	ErrPasswordMismatch   = errors.New("as senhas não conferem")
	ErrInvalidEmailFormat = errors.New("formato de email inválido")
	ErrDomainNotAllowed   = errors.New("domínio de email não institucional")
	ErrNoMXRecords        = errors.New("domínio de email sem registros MX")
	ErrMXIndeterminate    = errors.New("não foi possível verificar o domínio do email")
	ErrDuplicateEmail     = errors.New("email já cadastrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidCredentials = errors.New("senha incorreta")
)

// AuthService handles registration, login, logout and user lookup.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	GetUser(ctx context.Context, id string) (*model.User, error)
}

type authService struct {
	repo    *repository.Repository
	jwtMgr  *jwt.Manager
	checker *mailcheck.Checker
	rdb     *redis.Client
	logger  *zap.Logger
}

// NewAuthService creates the AuthService. rdb may be nil; logout then
// degrades to a no-op and tokens simply age out.
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	checker *mailcheck.Checker,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:    repo,
		jwtMgr:  jwtMgr,
		checker: checker,
		rdb:     rdb,
		logger:  logger,
	}
}

// Register validates in a fixed short-circuit order: password match,
// e-mail shape, allow-list membership, MX liveness, then duplicates.
// Each failure carries its own user-facing message.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	if !s.checker.IsValidFormat(req.Email) {
		return ErrInvalidEmailFormat
	}

	domain := mailcheck.Domain(req.Email)
	if !s.checker.IsDomainAllowed(domain) {
		return ErrDomainNotAllowed
	}

	switch s.checker.LookupMX(ctx, domain) {
	case mailcheck.MXInvalid:
		return ErrNoMXRecords
	case mailcheck.MXIndeterminate:
		return ErrMXIndeterminate
	}

	_, err := s.repo.User.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return ErrDuplicateEmail
	case !errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Error("consulta de usuário por email falhou", zap.Error(err))
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		s.logger.Error("hash de senha falhou", zap.Error(err))
		return err
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// unique index on email catches the concurrent double-register
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		s.logger.Error("inserção de usuário falhou", zap.Error(err))
		return err
	}

	return nil
}

// Login checks the credentials and issues a bearer token whose only
// business claim is the user id.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("consulta de usuário por email falhou", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.GenerateToken(user.UserID)
	if err != nil {
		s.logger.Error("geração de token falhou", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Logado com sucesso",
		Token:   token,
		UserID:  user.UserID,
	}, nil
}

// Logout blacklists the token's JTI for its remaining lifetime so the
// bearer cannot be replayed. Without Redis there is no blacklist to
// write to and the token just ages out.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil || jti == "" {
		return nil
	}

	if err := s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Error("inclusão de token na blacklist falhou", zap.Error(err))
		return err
	}

	return nil
}

// GetUser returns the user without the password hash (the model never
// serializes it).
func (s *authService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("consulta de usuário por id falhou", zap.Error(err))
		return nil, err
	}
	return user, nil
}
