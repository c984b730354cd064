package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

type Config struct {
	Env     string
	DB      db
	Server  server
	Logger  logger
	Auth    auth
	Crypto  crypto
	Storage string
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
	SQLitePath  string `env:"SQLITE_PATH"`
}

type server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	// ExposeRaw registers /raw_users and /raw_blogs, which leak password
	// verifiers and stored ciphertext.
	ExposeRaw bool `env:"EXPOSE_RAW"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL"`
}

type auth struct {
	Mode       string        `env:"ACCESS_MODE"`
	Secret     string        `env:"TOKEN_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL"`
	BcryptCost int           `env:"BCRYPT_COST"`
	// GeneratedSecret is set when Secret was created at startup; tokens
	// then die with the process.
	GeneratedSecret bool
}

type crypto struct {
	EncryptBlogs bool `env:"ENCRYPT_BLOGS"`
	// Key is hex; empty means a new key per process.
	Key string `env:"ENCRYPTION_KEY"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", ":8000")
	v.SetDefault("read_timeout", 10*time.Second)
	v.SetDefault("write_timeout", 10*time.Second)
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("expose_raw", false)
	v.SetDefault("log_level", "")
	v.SetDefault("access_mode", "bearer")
	v.SetDefault("token_ttl", 30*time.Minute)
	v.SetDefault("bcrypt_cost", 0)
	v.SetDefault("encrypt_blogs", true)
	v.SetDefault("storage", StorageMemory)
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("sqlite_path", "blogkeeper.db")
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := Config{
		Env: v.GetString("app_env"),
		DB: db{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
			SQLitePath:  v.GetString("sqlite_path"),
		},
		Server: server{
			RunAddress:      v.GetString("run_address"),
			ReadTimeout:     v.GetDuration("read_timeout"),
			WriteTimeout:    v.GetDuration("write_timeout"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
			ExposeRaw:       v.GetBool("expose_raw"),
		},
		Logger: logger{LogLevel: v.GetString("log_level")},
		Auth: auth{
			Mode:       v.GetString("access_mode"),
			Secret:     v.GetString("token_secret"),
			TokenTTL:   v.GetDuration("token_ttl"),
			BcryptCost: v.GetInt("bcrypt_cost"),
		},
		Crypto: crypto{
			EncryptBlogs: v.GetBool("encrypt_blogs"),
			Key:          v.GetString("encryption_key"),
		},
		Storage: v.GetString("storage"),
	}

	// local runs without TOKEN_SECRET get a random per-process secret;
	// other environments must configure one
	if config.Auth.Secret == "" && config.Env == EnvLocal {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		config.Auth.Secret = secret
		config.Auth.GeneratedSecret = true
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return config
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown APP_ENV %q", c.Env)
	}

	switch c.Auth.Mode {
	case "none", "basic", "either", "bearer":
	default:
		return fmt.Errorf("unknown ACCESS_MODE %q", c.Auth.Mode)
	}

	if c.Auth.Secret == "" {
		return fmt.Errorf("TOKEN_SECRET is required outside the %s environment", EnvLocal)
	}

	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("DATABASE_URI is required for %s storage", StoragePostgres)
		}
	case StorageSQLite:
		if c.DB.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for %s storage", StorageSQLite)
		}
	default:
		return fmt.Errorf("unknown STORAGE %q", c.Storage)
	}

	return nil
}

// EphemeralSecret reports whether the signing secret was generated at startup.
func (c *Config) EphemeralSecret() bool {
	return c.Auth.GeneratedSecret
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
