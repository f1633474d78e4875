package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/straye-as/storefront/internal/secrets"
	"go.uber.org/zap"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Checkout  CheckoutConfig
	Secrets   SecretsConfig
	Logging   LoggingConfig
	Server    ServerConfig
	CORS      CORSConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

// StorageConfig selects the durable key-value backend carts are persisted to.
// Mode is one of "local", "azure", "database" or "memory".
type StorageConfig struct {
	Mode                  string
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
}

// DatabaseConfig is only used when storage.mode is "database".
// Driver is "sqlite" (Path is the database file) or "postgres".
type DatabaseConfig struct {
	Driver          string
	Path            string
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// SessionConfig controls the per-browser cart sessions
type SessionConfig struct {
	// CookieName is the cookie carrying the session ID
	CookieName string
	// CookieMaxAge is the cookie lifetime in seconds
	CookieMaxAge int
	// SecureCookie marks the cookie as HTTPS-only
	SecureCookie bool
	// IdleTTL is how long (seconds) an untouched cart stays loaded in memory
	IdleTTL int
	// EvictionCron is the schedule of the idle cart eviction job
	EvictionCron string
	// RetentionDays removes persisted carts not written for this many days (database storage only, 0 disables)
	RetentionDays int
	// PurgeCron is the schedule of the abandoned cart purge job
	PurgeCron string
}

// CheckoutConfig describes the messaging channel orders and enquiries are handed off to
type CheckoutConfig struct {
	// WhatsAppNumber is the shop's number in international format without "+", e.g. 919876543210
	WhatsAppNumber string
	// WhatsAppBaseURL is the deep link base
	WhatsAppBaseURL string
	// CurrencySymbol prefixes amounts in order summaries
	CurrencySymbol string
	// ShopName heads order summaries
	ShopName string
	// ClearCartOnCheckout empties the cart once the order has been handed off
	ClearCartOnCheckout bool
}

// SecretsConfig configures Key Vault, used when USE_AZURE_KEY_VAULT=true
type SecretsConfig struct {
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	EnableSwagger   bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	// AllowedOrigins is a list of allowed origins for CORS requests
	// Use "*" to allow all origins (not recommended for production)
	AllowedOrigins []string
	// AllowedMethods is a list of allowed HTTP methods
	AllowedMethods []string
	// AllowedHeaders is a list of allowed request headers
	AllowedHeaders []string
	// ExposedHeaders is a list of headers exposed to the client
	ExposedHeaders []string
	// AllowCredentials must stay true for the session cookie to reach the API cross-origin
	AllowCredentials bool
	// MaxAge is the max age (in seconds) for preflight cache
	MaxAge int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	ContentSecurityPolicy string
	FrameOptions          string
	ContentTypeNosniff    bool
	ReferrerPolicy        string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled bool
	// RequestsPerMinute is the limit per client IP
	RequestsPerMinute int
	// WhitelistIPs is a list of IPs that bypass rate limiting
	WhitelistIPs []string
	// WhitelistPaths is a list of paths that bypass rate limiting (e.g., /health)
	WhitelistPaths []string
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// ShutdownTimeoutDuration returns graceful shutdown timeout as duration
func (s *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// IdleTTLDuration returns the idle cart TTL as duration
func (s *SessionConfig) IdleTTLDuration() time.Duration {
	return time.Duration(s.IdleTTL) * time.Second
}

// RetentionDuration returns how long persisted carts are kept without writes
func (s *SessionConfig) RetentionDuration() time.Duration {
	return time.Duration(s.RetentionDays) * 24 * time.Hour
}

// Load loads configuration from file and environment variables
// This is a basic load that doesn't fetch secrets from vault
// Use LoadWithSecrets for full secret resolution
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Checkout.WhatsAppNumber == "" {
		cfg.Checkout.WhatsAppNumber = v.GetString("WHATSAPP_NUMBER")
	}
	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks settings that would otherwise fail at first use
func (c *Config) Validate() error {
	switch c.Storage.Mode {
	case "local", "azure", "cloud", "database", "memory":
	default:
		return fmt.Errorf("unsupported storage mode: %s", c.Storage.Mode)
	}
	if c.Storage.Mode == "database" && c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session.cookieName must not be empty")
	}
	if c.Session.IdleTTL <= 0 {
		return fmt.Errorf("session.idleTTL must be positive")
	}
	return nil
}

// LoadWithSecrets loads configuration and resolves secrets from the configured source
// Key Vault is used when USE_AZURE_KEY_VAULT=true and the environment is staging or production;
// otherwise secrets come from environment variables.
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	// First load basic config
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	useKeyVault := strings.ToLower(os.Getenv("USE_AZURE_KEY_VAULT")) == "true"
	isValidEnv := cfg.App.Environment == "staging" || cfg.App.Environment == "production"

	if !useKeyVault {
		logger.Info("USE_AZURE_KEY_VAULT not enabled, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if !isValidEnv {
		logger.Warn("USE_AZURE_KEY_VAULT is enabled but environment is not staging or production, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	// Validate Key Vault name is provided
	if cfg.Secrets.KeyVaultName == "" {
		return nil, fmt.Errorf("AZURE_KEY_VAULT_NAME is required when USE_AZURE_KEY_VAULT=true")
	}

	provider, err := secrets.NewProvider(&secrets.VaultConfig{
		VaultName:    cfg.Secrets.KeyVaultName,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     time.Duration(cfg.Secrets.CacheTTL) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider (USE_AZURE_KEY_VAULT=true requires valid vault): %w", err)
	}

	logger.Info("Loading secrets from Azure Key Vault",
		zap.String("key_vault_name", cfg.Secrets.KeyVaultName),
	)

	if err := applySecrets(ctx, cfg, provider); err != nil {
		return nil, err
	}

	logger.Info("Secrets loaded from vault successfully")
	return cfg, nil
}

// secretSource is the part of secrets.Provider that applySecrets needs
type secretSource interface {
	Lookup(ctx context.Context, ref secrets.Ref) (string, error)
}

// applySecrets overrides credentials in cfg with values from provider
func applySecrets(ctx context.Context, cfg *Config, provider secretSource) error {
	if connStr, err := provider.Lookup(ctx, secrets.StorageConnectionString); err == nil && connStr != "" {
		cfg.Storage.CloudConnectionString = connStr
	} else if cfg.Storage.Mode == "azure" && cfg.Storage.CloudConnectionString == "" {
		return fmt.Errorf("failed to resolve storage connection string: %w", err)
	}

	if host, err := provider.Lookup(ctx, secrets.DatabaseHost); err == nil && host != "" {
		cfg.Database.Host = host
	}
	if user, err := provider.Lookup(ctx, secrets.DatabaseUser); err == nil && user != "" {
		cfg.Database.User = user
	}
	if password, err := provider.Lookup(ctx, secrets.DatabasePassword); err == nil && password != "" {
		cfg.Database.Password = password
	}

	if number, err := provider.Lookup(ctx, secrets.WhatsAppNumber); err == nil && number != "" {
		cfg.Checkout.WhatsAppNumber = number
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Storefront Cart API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	// Storage defaults
	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localBasePath", "./storage")
	v.SetDefault("storage.cloudContainer", "carts")

	// Database defaults (storage.mode = database)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./storefront.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "storefront")
	v.SetDefault("database.user", "storefront_user")
	v.SetDefault("database.password", "storefront_password")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 300)

	// Session defaults
	v.SetDefault("session.cookieName", "cart_session")
	v.SetDefault("session.cookieMaxAge", 60*60*24*30) // 30 days
	v.SetDefault("session.secureCookie", false)
	v.SetDefault("session.idleTTL", 1800) // 30 minutes
	v.SetDefault("session.evictionCron", "0 */5 * * * *")
	v.SetDefault("session.retentionDays", 30)
	v.SetDefault("session.purgeCron", "0 0 3 * * *")

	// Checkout defaults
	v.SetDefault("checkout.whatsAppBaseURL", "https://wa.me")
	v.SetDefault("checkout.currencySymbol", "₹")
	v.SetDefault("checkout.shopName", "Storefront")
	v.SetDefault("checkout.clearCartOnCheckout", true)

	// Secrets defaults
	v.SetDefault("secrets.cacheEnabled", true)
	v.SetDefault("secrets.cacheTTL", 300) // 5 minutes

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Server defaults
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.shutdownTimeout", 30)
	v.SetDefault("server.enableSwagger", true)

	// CORS defaults - restrictive by default
	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"X-Request-ID"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.maxAge", 300) // 5 minutes

	// Security header defaults
	v.SetDefault("security.enableHSTS", false) // Enable in production with HTTPS
	v.SetDefault("security.hstsMaxAge", 31536000)
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")

	// Rate limiting defaults
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 120)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/ready"})
}
