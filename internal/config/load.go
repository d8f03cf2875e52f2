package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "BLOG"

// envBindings maps configuration keys to their environment variables.
var envBindings = []struct {
	key    string
	envVar string
}{
	{"server.port", "BLOG_SERVER_PORT"},
	{"server.log_level", "BLOG_SERVER_LOG_LEVEL"},
	{"database.url", "BLOG_DATABASE_URL"},
	{"database.max_open_conns", "BLOG_DATABASE_MAX_OPEN_CONNS"},
	{"database.max_idle_conns", "BLOG_DATABASE_MAX_IDLE_CONNS"},
	{"database.conn_max_lifetime_minutes", "BLOG_DATABASE_CONN_MAX_LIFETIME_MINUTES"},
	{"auth.jwt_secret", "BLOG_AUTH_JWT_SECRET"},
	{"auth.token_lifetime_minutes", "BLOG_AUTH_TOKEN_LIFETIME_MINUTES"},
	{"auth.bcrypt_cost", "BLOG_AUTH_BCRYPT_COST"},
	{"pagination.default_page_size", "BLOG_PAGINATION_DEFAULT_PAGE_SIZE"},
	{"pagination.default_sort_by", "BLOG_PAGINATION_DEFAULT_SORT_BY"},
	{"pagination.default_sort_dir", "BLOG_PAGINATION_DEFAULT_SORT_DIR"},
	{"pagination.max_page_size", "BLOG_PAGINATION_MAX_PAGE_SIZE"},
	{"rate_limit.enabled", "BLOG_RATE_LIMIT_ENABLED"},
	{"rate_limit.requests_per_minute", "BLOG_RATE_LIMIT_REQUESTS_PER_MINUTE"},
}

// Load reads configuration from an optional .env file, an optional config.yaml in the
// working directory, and BLOG_* environment variables, in increasing precedence.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom behaves like Load but reads the given YAML file instead of searching the
// working directory for config.yaml. An empty path falls back to the search.
func LoadFrom(configPath string) (*Config, error) {
	// .env is optional; values already present in the process environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && configPath != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, b := range envBindings {
		if err := v.BindEnv(b.key, b.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", b.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)
	v.SetDefault("auth.token_lifetime_minutes", 60*24*7)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("pagination.default_page_size", 10)
	v.SetDefault("pagination.default_sort_by", "id")
	v.SetDefault("pagination.default_sort_dir", "asc")
	v.SetDefault("pagination.max_page_size", 0)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_minute", 30)
}
