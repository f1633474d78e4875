package secrets

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Ref names a secret in Key Vault and the environment variable that overrides it
type Ref struct {
	Vault string
	Env   string
}

// Secrets the storefront resolves at startup
var (
	StorageConnectionString = Ref{Vault: "storage-connection-string", Env: "STORAGE_CLOUDCONNECTIONSTRING"}
	DatabaseHost            = Ref{Vault: "POSTGRES-MAIN-HOST", Env: "DATABASE_HOST"}
	DatabaseUser            = Ref{Vault: "POSTGRES-MAIN-USER", Env: "DATABASE_USER"}
	DatabasePassword        = Ref{Vault: "POSTGRES-MAIN-PASSWORD", Env: "DATABASE_PASSWORD"}
	WhatsAppNumber          = Ref{Vault: "whatsapp-number", Env: "WHATSAPP_NUMBER"}
)

// vaultReader is the part of VaultClient the provider reads through
type vaultReader interface {
	GetSecret(ctx context.Context, secretName string) (string, error)
}

// Provider resolves secrets from Key Vault, letting environment variables override them
type Provider struct {
	vault  vaultReader
	logger *zap.Logger
}

// NewProvider creates a Key Vault backed provider
func NewProvider(cfg *VaultConfig, logger *zap.Logger) (*Provider, error) {
	vault, err := NewVaultClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize vault client: %w", err)
	}
	return &Provider{vault: vault, logger: logger}, nil
}

// Lookup returns the value of ref. A non-empty environment variable wins over Key Vault.
func (p *Provider) Lookup(ctx context.Context, ref Ref) (string, error) {
	if value := os.Getenv(ref.Env); value != "" {
		p.logger.Debug("Using environment variable override", zap.String("env_name", ref.Env))
		return value, nil
	}
	return p.vault.GetSecret(ctx, ref.Vault)
}
