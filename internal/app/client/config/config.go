package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8000"
	defaultLogLevel      = "info"
	defaultEnv           = "local"
	defaultConfigDir     = ".blogkeeper"

	SchemeBearer = "bearer"
	SchemeBasic  = "basic"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	ServerAddress string `mapstructure:"server_address"`
	LogLevel      string `mapstructure:"log_level"`
	ConfigDir     string `mapstructure:"config_dir"`
	TokenPath     string `mapstructure:"token_path"`
	EnableTLS     bool   `mapstructure:"enable_tls"`
	// AuthScheme выбирает, как клиент подписывает запросы к /blog и /blogs.
	AuthScheme string `mapstructure:"auth_scheme"`
}

// Load читает .env (если есть), затем переменные окружения и v.
// v может быть nil.
func Load(v *viper.Viper) (*Config, error) {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	if v == nil {
		v = viper.New()
	}
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("CONFIG_DIR", defaultConfigDir)
	v.SetDefault("ENABLE_TLS", false)
	v.SetDefault("AUTH_SCHEME", SchemeBearer)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := v.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории конфигурации: %w", err)
	}

	config := &Config{
		Env:           v.GetString("APP_ENV"),
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		ConfigDir:     configDir,
		TokenPath:     filepath.Join(configDir, "token"),
		EnableTLS:     v.GetBool("ENABLE_TLS"),
		AuthScheme:    v.GetString("AUTH_SCHEME"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}
	return config, nil
}

// MustLoad загружает конфигурацию клиента
func MustLoad(v *viper.Viper) *Config {
	config, err := Load(v)
	if err != nil {
		panic(err.Error())
	}
	return config
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	switch c.AuthScheme {
	case SchemeBearer, SchemeBasic:
	default:
		return fmt.Errorf("неизвестная схема аутентификации %q", c.AuthScheme)
	}
	return nil
}

// BaseURL собирает адрес сервера с протоколом
func (c *Config) BaseURL() string {
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + c.ServerAddress
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
