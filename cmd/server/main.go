package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/luizndev/unime-pdr/config"
	"github.com/luizndev/unime-pdr/internal/api/handler"
	"github.com/luizndev/unime-pdr/internal/api/router"
	"github.com/luizndev/unime-pdr/internal/repository"
	"github.com/luizndev/unime-pdr/internal/service"
	"github.com/luizndev/unime-pdr/pkg/database"
	"github.com/luizndev/unime-pdr/pkg/jwt"
	applogger "github.com/luizndev/unime-pdr/pkg/logger"
	"github.com/luizndev/unime-pdr/pkg/mailcheck"
	"github.com/luizndev/unime-pdr/pkg/redis"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao inicializar logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando servidor", zap.Int("port", cfg.Server.Port))

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("conexão com o banco de dados falhou", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("obtenção do sql.DB subjacente falhou", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migração do banco de dados falhou", zap.Error(err))
	}

	// Redis is optional: without it the MX cache, the rate limiter and
	// the token blacklist stay off
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis indisponível, seguindo sem cache", zap.Error(err))
		rdb = nil
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	checker := mailcheck.NewChecker(&cfg.Mail, nil, rdb, logger)

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, checker, rdb, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP no ar", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("servidor HTTP falhou", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("sinal recebido, encerrando", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("encerramento do servidor falhou", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("servidor encerrado")
}
