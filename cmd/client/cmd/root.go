package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"blogkeeper/cmd/client/cmd/auth"
	"blogkeeper/cmd/client/cmd/blog"
	"blogkeeper/cmd/client/cmd/types"
	"blogkeeper/internal/app/client"
	"blogkeeper/internal/app/client/config"
	"blogkeeper/internal/utils/logger"
)

var (
	cfgFile   string
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	debug     bool
	serverURL string
	scheme    string
)

var rootCmd = &cobra.Command{
	Use:   "blogkeeper",
	Short: "Blogkeeper - клиент блог-сервиса",
	Long: `Blogkeeper - консольный клиент для регистрации, входа
и работы с записями блога.

Запросы к записям подписываются bearer-токеном (после auth login)
или Basic-учеткой, если сервер запущен в режиме basic.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Ошибка:"), err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if scheme != "" {
		cfg.AuthScheme = scheme
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log = logger.WithLevel(cfg.Env, level)

	app = client.New(cfg, log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, types.ClientAppKey, app))
	return nil
}

func loadConfig() (*config.Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		v.AddConfigPath(filepath.Join(home, ".blogkeeper"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load(v)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера (host:port)")
	rootCmd.PersistentFlags().StringVar(&scheme, "auth", "", "схема аутентификации: bearer или basic")

	auth.AuthCmd.AddCommand(auth.RegisterCmd, auth.LoginCmd, auth.LogoutCmd)
	blog.BlogCmd.AddCommand(blog.CreateCmd, blog.ListCmd)
	rootCmd.AddCommand(auth.AuthCmd, blog.BlogCmd, usersCmd)
}
