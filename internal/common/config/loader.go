package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// stageDefaults mirror the retry policy the pipeline ships with.
var stageDefaults = map[string]StageConfig{
	StageLoadConfig:      {Enabled: true, MaxAttempts: 3, DelayMs: 1000, TimeoutMs: 10000},
	StageExtractJSON:     {Enabled: true, MaxAttempts: 3, DelayMs: 1000, TimeoutMs: 30000},
	StageResolveEndpoint: {Enabled: true, MaxAttempts: 2, DelayMs: 500, TimeoutMs: 20000},
	StageResolveFields:   {Enabled: true, MaxAttempts: 2, DelayMs: 500, TimeoutMs: 20000},
}

// Load reads .env, configs/config.yaml, the config.<APP_ENVIRONMENT> overlay
// and the environment, in that order of precedence (lowest first).
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig()

	return decode(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "sentence-analyzer")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.grpc_port", 50051)
	v.SetDefault("server.admin_port", 8080)
	v.SetDefault("server.max_concurrent_streams", 128)
	v.SetDefault("server.shutdown_timeout", 30000)

	v.SetDefault("providers.default", "ollama")
	v.SetDefault("providers.http_timeout", 120000)
	v.SetDefault("providers.ollama.host", "http://localhost:11434")
	v.SetDefault("providers.claude.base_url", "https://api.anthropic.com")
	v.SetDefault("providers.claude.version", "2023-06-01")

	v.SetDefault("catalog.source", CatalogSourceFile)
	v.SetDefault("catalog.file", "configs/endpoints.yaml")
	v.SetDefault("catalog.table", "endpoint_catalog")
	v.SetDefault("catalog.remote_timeout", 10000)

	v.SetDefault("pipeline.timeout_scope", TimeoutScopeNone)
	for name, stage := range stageDefaults {
		prefix := "pipeline.stages." + name + "."
		v.SetDefault(prefix+"enabled", stage.Enabled)
		v.SetDefault(prefix+"max_attempts", stage.MaxAttempts)
		v.SetDefault(prefix+"delay_ms", stage.DelayMs)
		v.SetDefault(prefix+"timeout_ms", stage.TimeoutMs)
	}

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")

	v.SetDefault("observability.service_name", "sentence-analyzer")
	v.SetDefault("observability.metrics_enabled", true)
}

func decode(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} references in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal && expanded != "" {
				v.Set(key, expanded)
			}
		}
	}
}

// overrideEmptyConfig fills secrets from their conventional variable names.
func overrideEmptyConfig(cfg *Config) {
	if cfg.Providers.Claude.APIKey == "" {
		if val := os.Getenv("CLAUDE_API_KEY"); val != "" {
			cfg.Providers.Claude.APIKey = val
		}
	}
	if val := os.Getenv("OLLAMA_HOST"); val != "" && cfg.Providers.Ollama.Host == "http://localhost:11434" {
		cfg.Providers.Ollama.Host = val
	}
	if cfg.Database.Postgres.User == "" {
		if val := os.Getenv("DB_USER"); val != "" {
			cfg.Database.Postgres.User = val
		}
	}
	if cfg.Database.Postgres.Password == "" {
		if val := os.Getenv("DB_PASSWORD"); val != "" {
			cfg.Database.Postgres.Password = val
		}
	}
}

// applyDefaults fills values that viper defaults cannot express.
func applyDefaults(cfg *Config) {
	if cfg.Pipeline.Stages == nil {
		cfg.Pipeline.Stages = make(map[string]StageConfig)
	}
	for name, def := range stageDefaults {
		if _, ok := cfg.Pipeline.Stages[name]; !ok {
			cfg.Pipeline.Stages[name] = def
		}
	}
	for name, stage := range cfg.Pipeline.Stages {
		if stage.MaxAttempts <= 0 {
			stage.MaxAttempts = 1
		}
		cfg.Pipeline.Stages[name] = stage
	}

	// match_fields reuses the extraction model unless configured.
	if cfg.Models.MatchFields == (ModelConfig{}) {
		cfg.Models.MatchFields = cfg.Models.SentenceToJSON
	}

	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 25
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.GRPCPort <= 0 || cfg.Server.GRPCPort > 65535 {
		return fmt.Errorf("server.grpc_port %d out of range", cfg.Server.GRPCPort)
	}

	switch cfg.Providers.Default {
	case "ollama":
		if cfg.Providers.Ollama.Host == "" {
			return fmt.Errorf("providers.ollama.host is required")
		}
	case "claude":
		if cfg.Providers.Claude.APIKey == "" {
			return fmt.Errorf("providers.claude.api_key (or CLAUDE_API_KEY) is required")
		}
	default:
		return fmt.Errorf("providers.default must be ollama or claude, got %q", cfg.Providers.Default)
	}

	switch cfg.Catalog.Source {
	case CatalogSourceRemote:
		if cfg.Catalog.RemoteAddress == "" {
			return fmt.Errorf("catalog.remote_address is required for the remote source")
		}
	case CatalogSourceFile:
		if cfg.Catalog.File == "" {
			return fmt.Errorf("catalog.file is required for the file source")
		}
	case CatalogSourcePostgres:
		if cfg.Database.Postgres.Host == "" || cfg.Database.Postgres.Database == "" {
			return fmt.Errorf("database.postgres.host and database are required for the postgres source")
		}
	default:
		return fmt.Errorf("catalog.source must be remote, file or postgres, got %q", cfg.Catalog.Source)
	}

	if cfg.Catalog.CacheTTL > 0 && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when catalog.cache_ttl is set")
	}

	switch cfg.Pipeline.TimeoutScope {
	case TimeoutScopeNone, TimeoutScopeAttempt, TimeoutScopeStage:
	default:
		return fmt.Errorf("pipeline.timeout_scope must be none, attempt or stage, got %q", cfg.Pipeline.TimeoutScope)
	}

	return nil
}

// GetStageConfig returns the configuration for a stage, falling back to the
// built-in default.
func GetStageConfig(cfg *Config, stageName string) StageConfig {
	if stage, exists := cfg.Pipeline.Stages[stageName]; exists {
		return stage
	}
	if def, ok := stageDefaults[stageName]; ok {
		return def
	}
	return StageConfig{Enabled: true, MaxAttempts: 1}
}

// IsStageEnabled checks if a specific stage is enabled
func IsStageEnabled(cfg *Config, stageName string) bool {
	return GetStageConfig(cfg, stageName).Enabled
}
