package config

import (
	"fmt"
	"time"

	"sentence-analyzer/internal/models"
)

// Stage names, in pipeline order.
const (
	StageLoadConfig      = "load-config"
	StageExtractJSON     = "extract-json"
	StageResolveEndpoint = "resolve-endpoint"
	StageResolveFields   = "resolve-fields"
)

// StageOrder lists the pipeline stages in execution order.
var StageOrder = []string{StageLoadConfig, StageExtractJSON, StageResolveEndpoint, StageResolveFields}

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Server        ServerConfig        `mapstructure:"server"`
	Identity      IdentityConfig      `mapstructure:"identity"`
	Providers     ProvidersConfig     `mapstructure:"providers"`
	Models        ModelsConfig        `mapstructure:"models"`
	Catalog       CatalogConfig       `mapstructure:"catalog"`
	Prompts       PromptsConfig       `mapstructure:"prompts"`
	Pipeline      PipelineConfig      `mapstructure:"pipeline"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	GRPCPort             int    `mapstructure:"grpc_port"`
	AdminPort            int    `mapstructure:"admin_port"`
	MaxConcurrentStreams uint32 `mapstructure:"max_concurrent_streams"`
	ShutdownTimeout      int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// GRPCAddress returns the listen address of the RPC server.
func (s ServerConfig) GRPCAddress() string {
	return fmt.Sprintf(":%d", s.GRPCPort)
}

func (s ServerConfig) AdminAddress() string {
	return fmt.Sprintf(":%d", s.AdminPort)
}

// IdentityConfig controls caller identity handling at the RPC boundary.
type IdentityConfig struct {
	// DefaultEmail is used when a call carries no email metadata. Empty
	// means such calls are rejected.
	DefaultEmail string `mapstructure:"default_email"`
}

// ProvidersConfig holds the language model backends.
type ProvidersConfig struct {
	Default     string `mapstructure:"default"`
	HTTPTimeout int    `mapstructure:"http_timeout"` // milliseconds
	Ollama      struct {
		Host string `mapstructure:"host"`
	} `mapstructure:"ollama"`
	Claude struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
		Version string `mapstructure:"version"`
	} `mapstructure:"claude"`
}

// ModelConfig names the model used for one prompt purpose on every provider.
type ModelConfig struct {
	Name        string  `mapstructure:"name"`
	Ollama      string  `mapstructure:"ollama"`
	Claude      string  `mapstructure:"claude"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// Params converts the config entry into the value handed to providers.
func (m ModelConfig) Params() models.ModelParams {
	return models.ModelParams{
		Name:        m.Name,
		Ollama:      m.Ollama,
		Claude:      m.Claude,
		Temperature: m.Temperature,
		MaxTokens:   m.MaxTokens,
	}
}

type ModelsConfig struct {
	SentenceToJSON ModelConfig `mapstructure:"sentence_to_json"`
	FindEndpoint   ModelConfig `mapstructure:"find_endpoint"`
	MatchFields    ModelConfig `mapstructure:"match_fields"`
}

// Set returns the per-purpose model parameters carried by each request.
func (m ModelsConfig) Set() models.ModelSet {
	return models.ModelSet{
		SentenceToJSON: m.SentenceToJSON.Params(),
		FindEndpoint:   m.FindEndpoint.Params(),
		MatchFields:    m.MatchFields.Params(),
	}
}

// Catalog sources.
const (
	CatalogSourceRemote   = "remote"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type CatalogConfig struct {
	Source        string `mapstructure:"source"`
	RemoteAddress string `mapstructure:"remote_address"`
	RemoteTimeout int    `mapstructure:"remote_timeout"` // milliseconds
	File          string `mapstructure:"file"`
	Table         string `mapstructure:"table"`
	// Fallback loads the local file when the primary source fails or is empty.
	Fallback bool `mapstructure:"fallback"`
	CacheTTL int  `mapstructure:"cache_ttl"` // seconds, 0 disables the Redis cache
}

type PromptsConfig struct {
	File     string            `mapstructure:"file"`
	Versions map[string]string `mapstructure:"versions"`
}

// Version returns the configured template version for name, or "" for the
// template's default.
func (p PromptsConfig) Version(name string) string {
	return p.Versions[name]
}

// Timeout scopes.
const (
	TimeoutScopeNone    = "none"
	TimeoutScopeAttempt = "attempt"
	TimeoutScopeStage   = "stage"
)

type PipelineConfig struct {
	TimeoutScope string                 `mapstructure:"timeout_scope"`
	Stages       map[string]StageConfig `mapstructure:"stages"`
}

// StageConfig holds the enable flag and retry policy of one pipeline stage.
type StageConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MaxAttempts int  `mapstructure:"max_attempts"`
	DelayMs     int  `mapstructure:"delay_ms"`
	TimeoutMs   int  `mapstructure:"timeout_ms"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type ObservabilityConfig struct {
	ServiceName    string `mapstructure:"service_name"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	TracingEnabled bool   `mapstructure:"tracing_enabled"`
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
