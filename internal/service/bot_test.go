package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/service"

	"go.uber.org/zap"
)

func TestGenerateCodeEmbedsConfig(t *testing.T) {
	store := newFakeStore("")
	store.bot.Token = "discord-token-123"
	store.bot.Prefix = "$"
	svc := service.NewBotService(store, zap.NewNop())

	code, err := svc.GenerateCode(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`"token": "discord-token-123"`,
		`"prefix": "$"`,
		"client.login(config.token);",
		domain.DefaultNitroEndpoint,
		"require('discord.js')",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q", want)
		}
	}
}

func TestGenerateCodeDefaults(t *testing.T) {
	svc := service.NewBotService(newFakeStore(""), zap.NewNop())

	code, err := svc.GenerateCode(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(code, `"prefix": "!"`) {
		t.Error("expected default prefix in generated code")
	}
	if !strings.Contains(code, "Bem-vindo ao nosso servidor!") {
		t.Error("expected default welcome message in generated code")
	}
}

func TestUpdateConfigReturnsMerged(t *testing.T) {
	store := newFakeStore("")
	svc := service.NewBotService(store, zap.NewNop())

	prefix := "?"
	cfg, err := svc.UpdateConfig(context.Background(), domain.BotConfigUpdate{Prefix: &prefix})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prefix != "?" {
		t.Errorf("expected updated prefix, got %q", cfg.Prefix)
	}
	if cfg.Messages.Welcome == "" {
		t.Error("defaults must survive a partial update")
	}
}
