package service

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/luizndev/unime-pdr/config"
	"github.com/luizndev/unime-pdr/internal/dto"
	"github.com/luizndev/unime-pdr/internal/repository"
	"github.com/luizndev/unime-pdr/pkg/jwt"
	"github.com/luizndev/unime-pdr/pkg/mailcheck"
)

func newTestAuthService(resolver mailcheck.Resolver) (AuthService, *mockUserRepo, *jwt.Manager) {
	userRepo := newMockUserRepo()
	repo := &repository.Repository{User: userRepo}

	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing",
		TokenTTL:  time.Hour,
	})

	checker := mailcheck.NewChecker(&config.MailConfig{
		AllowedDomains: []string{"kroton.com.br", "cogna.com.br"},
		MXTimeout:      time.Second,
	}, resolver, nil, zap.NewNop())

	return NewAuthService(repo, jwtMgr, checker, nil, zap.NewNop()), userRepo, jwtMgr
}

func registerReq(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:            "Maria",
		Email:           email,
		Password:        "senha-forte-123",
		ConfirmPassword: "senha-forte-123",
	}
}

func TestRegisterAndLogin_RoundTrip(t *testing.T) {
	svc, _, jwtMgr := newTestAuthService(mxFor("kroton.com.br"))
	ctx := context.Background()

	if err := svc.Register(ctx, registerReq("maria@kroton.com.br")); err != nil {
		t.Fatalf("Register falhou: %v", err)
	}

	resp, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "maria@kroton.com.br",
		Password: "senha-forte-123",
	})
	if err != nil {
		t.Fatalf("Login falhou: %v", err)
	}
	if resp.Token == "" || resp.UserID == "" {
		t.Fatal("login deve retornar token e userId")
	}

	claims, err := jwtMgr.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("token emitido não passou na verificação: %v", err)
	}
	if claims.UserID != resp.UserID {
		t.Errorf("claim de id esperado %s, obtido %s", resp.UserID, claims.UserID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(mxFor("kroton.com.br"))
	ctx := context.Background()

	if err := svc.Register(ctx, registerReq("maria@kroton.com.br")); err != nil {
		t.Fatalf("Register falhou: %v", err)
	}

	_, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "maria@kroton.com.br",
		Password: "senha-errada",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("esperado ErrInvalidCredentials, obtido %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService(mxFor("kroton.com.br"))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "fantasma@kroton.com.br",
		Password: "qualquer",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("esperado ErrUserNotFound, obtido %v", err)
	}
}

func TestRegister_PasswordMismatchBeforeEmailValidation(t *testing.T) {
	svc, _, _ := newTestAuthService(mxFor("kroton.com.br"))

	// the e-mail is invalid too, but the mismatch must win
	req := &dto.RegisterRequest{
		Name:            "Maria",
		Email:           "nem-e-email",
		Password:        "a",
		ConfirmPassword: "b",
	}
	if err := svc.Register(context.Background(), req); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("esperado ErrPasswordMismatch, obtido %v", err)
	}
}

func TestRegister_InvalidEmailFormat(t *testing.T) {
	svc, _, _ := newTestAuthService(mxFor("kroton.com.br"))

	req := registerReq("sem-arroba.com.br")
	if err := svc.Register(context.Background(), req); !errors.Is(err, ErrInvalidEmailFormat) {
		t.Errorf("esperado ErrInvalidEmailFormat, obtido %v", err)
	}
}

func TestRegister_DomainNotAllowed(t *testing.T) {
	// gmail.com resolves MX fine; the allow-list must still reject it
	svc, _, _ := newTestAuthService(mxFor("kroton.com.br", "gmail.com"))

	req := registerReq("maria@gmail.com")
	if err := svc.Register(context.Background(), req); !errors.Is(err, ErrDomainNotAllowed) {
		t.Errorf("esperado ErrDomainNotAllowed, obtido %v", err)
	}
}

func TestRegister_NoMXRecords(t *testing.T) {
	resolver := &fakeMXResolver{
		err: map[string]error{
			"kroton.com.br": &net.DNSError{Name: "kroton.com.br", IsNotFound: true},
		},
	}
	svc, _, _ := newTestAuthService(resolver)

	req := registerReq("maria@kroton.com.br")
	if err := svc.Register(context.Background(), req); !errors.Is(err, ErrNoMXRecords) {
		t.Errorf("esperado ErrNoMXRecords, obtido %v", err)
	}
}

func TestRegister_MXLookupFailureIsIndeterminate(t *testing.T) {
	resolver := &fakeMXResolver{
		err: map[string]error{
			"kroton.com.br": errors.New("read udp: i/o timeout"),
		},
	}
	svc, _, _ := newTestAuthService(resolver)

	req := registerReq("maria@kroton.com.br")
	if err := svc.Register(context.Background(), req); !errors.Is(err, ErrMXIndeterminate) {
		t.Errorf("falha de DNS não deve virar domínio inválido: obtido %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(mxFor("kroton.com.br"))
	ctx := context.Background()

	if err := svc.Register(ctx, registerReq("maria@kroton.com.br")); err != nil {
		t.Fatalf("primeiro registro falhou: %v", err)
	}
	if err := svc.Register(ctx, registerReq("maria@kroton.com.br")); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("esperado ErrDuplicateEmail, obtido %v", err)
	}
}

func TestRegister_HashAndDefaults(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(mxFor("kroton.com.br"))
	ctx := context.Background()

	if err := svc.Register(ctx, registerReq("maria@kroton.com.br")); err != nil {
		t.Fatalf("Register falhou: %v", err)
	}

	user := userRepo.byMail["maria@kroton.com.br"]
	if user.Role != "user" {
		t.Errorf("role padrão esperado user, obtido %s", user.Role)
	}
	if user.PasswordHash == "senha-forte-123" {
		t.Fatal("senha não pode ser armazenada em texto claro")
	}
	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	if err != nil {
		t.Fatalf("hash inválido: %v", err)
	}
	if cost != 12 {
		t.Errorf("custo bcrypt esperado 12, obtido %d", cost)
	}

	// explicit role survives
	req := registerReq("admin@kroton.com.br")
	req.Role = "admin"
	if err := svc.Register(ctx, req); err != nil {
		t.Fatalf("Register falhou: %v", err)
	}
	if got := userRepo.byMail["admin@kroton.com.br"].Role; got != "admin" {
		t.Errorf("role esperado admin, obtido %s", got)
	}
}

func TestLogout_SemRedis(t *testing.T) {
	// without Redis there is no blacklist; logout must still succeed and
	// the token simply ages out
	svc, _, _ := newTestAuthService(mxFor("kroton.com.br"))

	err := svc.Logout(context.Background(), "algum-jti", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("Logout sem Redis deveria ser um no-op: %v", err)
	}
}

func TestGetUser(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(mxFor("kroton.com.br"))
	ctx := context.Background()

	if err := svc.Register(ctx, registerReq("maria@kroton.com.br")); err != nil {
		t.Fatalf("Register falhou: %v", err)
	}
	id := userRepo.byMail["maria@kroton.com.br"].UserID

	user, err := svc.GetUser(ctx, id)
	if err != nil {
		t.Fatalf("GetUser falhou: %v", err)
	}
	if user.Email != "maria@kroton.com.br" {
		t.Errorf("email esperado maria@kroton.com.br, obtido %s", user.Email)
	}

	if _, err := svc.GetUser(ctx, "id-inexistente"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("esperado ErrUserNotFound, obtido %v", err)
	}
}
