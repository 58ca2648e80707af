// Package store persists the dashboard's local configuration in a sqlite
// key-value table. Exactly two entries exist: the connection configuration
// and the bot template settings, each stored as one JSON blob under a
// well-known key and overwritten wholesale on save. No schema versioning.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rmacedo/nitro-admin-go/internal/domain"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	keyAPIConfig = "api-config"
	keyBotConfig = "bot-config"
)

// kvEntry is one persisted JSON blob.
type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (kvEntry) TableName() string { return "settings" }

// Store is the sqlite-backed settings store. It is handed to services
// explicitly; there is no package-level instance.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Open opens (or creates) the sqlite database at path and migrates the
// settings table.
func Open(path string, logger *zap.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate settings db: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// load reads one entry into out. Absent or corrupt rows report false and the
// caller falls back to defaults; the store never fails a read loudly.
func (s *Store) load(ctx context.Context, key string, out any) bool {
	var entry kvEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("settings read failed, using defaults",
				zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		s.logger.Warn("settings entry corrupt, using defaults",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// save overwrites one entry wholesale. Write-through: the row is durable
// before save returns.
func (s *Store) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode settings %q: %w", key, err)
	}
	entry := kvEntry{Key: key, Value: string(raw)}
	return s.db.WithContext(ctx).Save(&entry).Error
}

// LoadAPIConfig returns the stored connection configuration, or the default
// (known endpoint, empty token) when nothing usable is stored.
func (s *Store) LoadAPIConfig(ctx context.Context) (domain.APIConfig, error) {
	cfg := domain.DefaultAPIConfig()
	s.load(ctx, keyAPIConfig, &cfg)
	if cfg.Nitro.Endpoint == "" {
		cfg.Nitro.Endpoint = domain.DefaultNitroEndpoint
	}
	return cfg, nil
}

// UpdateNitro applies a typed partial update to the primary provider group
// and persists the merged config immediately.
func (s *Store) UpdateNitro(ctx context.Context, upd domain.NitroUpdate) (domain.APIConfig, error) {
	cfg, _ := s.LoadAPIConfig(ctx)
	if upd.Endpoint != nil {
		cfg.Nitro.Endpoint = *upd.Endpoint
	}
	if upd.APIToken != nil {
		cfg.Nitro.APIToken = *upd.APIToken
	}
	if err := s.save(ctx, keyAPIConfig, cfg); err != nil {
		return domain.APIConfig{}, err
	}
	return cfg, nil
}

// UpdateMercadoPago applies a typed partial update to the secondary provider
// group, leaving the nitro group untouched.
func (s *Store) UpdateMercadoPago(ctx context.Context, upd domain.MercadoPagoUpdate) (domain.APIConfig, error) {
	cfg, _ := s.LoadAPIConfig(ctx)
	if cfg.MercadoPago == nil {
		cfg.MercadoPago = &domain.MercadoPagoConfig{}
	}
	if upd.AccessToken != nil {
		cfg.MercadoPago.AccessToken = *upd.AccessToken
	}
	if upd.PublicKey != nil {
		cfg.MercadoPago.PublicKey = *upd.PublicKey
	}
	if err := s.save(ctx, keyAPIConfig, cfg); err != nil {
		return domain.APIConfig{}, err
	}
	return cfg, nil
}

// LoadBotConfig returns the stored bot settings or the shipped defaults.
func (s *Store) LoadBotConfig(ctx context.Context) (domain.BotConfig, error) {
	cfg := domain.DefaultBotConfig()
	s.load(ctx, keyBotConfig, &cfg)
	return cfg, nil
}

// UpdateBotConfig applies a typed partial update. Each nested group is merged
// field by field so sibling values survive a single-field save.
func (s *Store) UpdateBotConfig(ctx context.Context, upd domain.BotConfigUpdate) (domain.BotConfig, error) {
	cfg, _ := s.LoadBotConfig(ctx)
	if upd.Token != nil {
		cfg.Token = *upd.Token
	}
	if upd.Prefix != nil {
		cfg.Prefix = *upd.Prefix
	}
	if ch := upd.Channels; ch != nil {
		if ch.Sales != nil {
			cfg.Channels.Sales = *ch.Sales
		}
		if ch.Logs != nil {
			cfg.Channels.Logs = *ch.Logs
		}
		if ch.Support != nil {
			cfg.Channels.Support = *ch.Support
		}
	}
	if ro := upd.Roles; ro != nil {
		if ro.Admin != nil {
			cfg.Roles.Admin = *ro.Admin
		}
		if ro.Moderator != nil {
			cfg.Roles.Moderator = *ro.Moderator
		}
		if ro.Customer != nil {
			cfg.Roles.Customer = *ro.Customer
		}
	}
	if ms := upd.Messages; ms != nil {
		if ms.Welcome != nil {
			cfg.Messages.Welcome = *ms.Welcome
		}
		if ms.PurchaseSuccess != nil {
			cfg.Messages.PurchaseSuccess = *ms.PurchaseSuccess
		}
		if ms.PurchaseError != nil {
			cfg.Messages.PurchaseError = *ms.PurchaseError
		}
	}
	if err := s.save(ctx, keyBotConfig, cfg); err != nil {
		return domain.BotConfig{}, err
	}
	return cfg, nil
}
