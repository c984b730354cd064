package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"blogkeeper/cmd/client/cmd/types"
	"blogkeeper/internal/app/client"
)

var (
	rememberMe bool
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Получить bearer-токен",
	Long: `Обмен email и пароля на bearer-токен через /token.

С флагом --remember токен сохраняется локально и используется
последующими командами до истечения срока.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		email, err := PromptEmail()
		if err != nil {
			return err
		}
		password, err := PromptPassword("Пароль: ")
		if err != nil {
			return err
		}

		fmt.Println("Аутентификация...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		token, err := app.Login(ctx, email, password, rememberMe)
		if err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Println()
		color.Green("✅ Вход выполнен успешно!")
		if !rememberMe {
			fmt.Println("Токен не сохранен. Для использования в других командах:")
			fmt.Println(token)
		}

		return nil
	},
}

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Удалить сохраненный токен",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		if err := app.ClearToken(); err != nil {
			return err
		}
		color.Green("✓ Токен удален")
		return nil
	},
}

func init() {
	LoginCmd.Flags().BoolVarP(&rememberMe, "remember", "r", false, "запомнить меня (сохранить токен)")
}
