package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/luizndev/unime-pdr/internal/dto"
	"github.com/luizndev/unime-pdr/internal/repository"
)

func TestMensagem_CreateAndList(t *testing.T) {
	repo := &repository.Repository{Mensagem: newMockMensagemRepo()}
	svc := NewMensagemService(repo, zap.NewNop())
	ctx := context.Background()

	if err := svc.Create(ctx, &dto.MensagemRequest{Content: "Lab 3 fechado amanhã", Username: "coordenacao"}); err != nil {
		t.Fatalf("Create falhou: %v", err)
	}
	if err := svc.Create(ctx, &dto.MensagemRequest{Content: "Manutenção concluída", Username: "suporte"}); err != nil {
		t.Fatalf("Create falhou: %v", err)
	}

	msgs, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("esperadas 2 mensagens, obtidas %d", len(msgs))
	}
	// newest first
	if msgs[0].Username != "suporte" {
		t.Errorf("ordenação esperada mais recente primeiro, obtido %s", msgs[0].Username)
	}
}

func TestMensagem_EmptyListIsNotNull(t *testing.T) {
	repo := &repository.Repository{Mensagem: newMockMensagemRepo()}
	svc := NewMensagemService(repo, zap.NewNop())

	msgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if msgs == nil {
		t.Error("lista vazia deve ser [] e não null")
	}
}
