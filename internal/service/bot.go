package service

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/port"

	"go.uber.org/zap"
)

//go:embed bot_template.js.tmpl
var botTemplateText string

var botTemplate = template.Must(template.New("bot").Parse(botTemplateText))

// BotService persists the Discord sales bot settings and renders the bot
// source template with them.
type BotService struct {
	store  port.SettingsStore
	logger *zap.Logger
}

// NewBotService creates the bot service.
func NewBotService(store port.SettingsStore, logger *zap.Logger) *BotService {
	return &BotService{store: store, logger: logger}
}

// GetConfig returns the stored bot configuration, defaults included.
func (s *BotService) GetConfig(ctx context.Context) (domain.BotConfig, error) {
	return s.store.LoadBotConfig(ctx)
}

// UpdateConfig merges a partial update and returns the result.
func (s *BotService) UpdateConfig(ctx context.Context, upd domain.BotConfigUpdate) (domain.BotConfig, error) {
	cfg, err := s.store.UpdateBotConfig(ctx, upd)
	if err != nil {
		return domain.BotConfig{}, err
	}
	s.logger.Info("bot settings saved", zap.String("prefix", cfg.Prefix))
	return cfg, nil
}

// GenerateCode renders the discord.js bot source with the stored settings
// substituted in. The operator pastes the result into their own bot project;
// nothing is executed here.
func (s *BotService) GenerateCode(ctx context.Context) (string, error) {
	cfg, err := s.store.LoadBotConfig(ctx)
	if err != nil {
		return "", err
	}

	configJSON, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode bot config: %w", err)
	}

	var buf bytes.Buffer
	err = botTemplate.Execute(&buf, struct {
		ConfigJSON string
		Endpoint   string
	}{
		ConfigJSON: string(configJSON),
		Endpoint:   domain.DefaultNitroEndpoint,
	})
	if err != nil {
		return "", fmt.Errorf("render bot template: %w", err)
	}
	return buf.String(), nil
}
