package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"blogkeeper/cmd/client/cmd/types"
	"blogkeeper/internal/app/client"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать нового пользователя",
	Long: `Регистрация нового пользователя на сервере.

Повторная регистрация с тем же email создает вторую запись; входить
можно только с паролем первой.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Регистрация нового пользователя ===")
		fmt.Println()

		email, err := PromptEmail()
		if err != nil {
			return err
		}

		password, err := PromptPassword("Пароль: ")
		if err != nil {
			return err
		}
		passwordConfirm, err := PromptPassword("Повторите пароль: ")
		if err != nil {
			return err
		}

		if password != passwordConfirm {
			return fmt.Errorf("пароли не совпадают")
		}
		if len(password) > 72 {
			return fmt.Errorf("пароль длиннее 72 байт")
		}

		fmt.Println("Регистрация...")
		if err := app.Register(cmd.Context(), email, password); err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		fmt.Println()
		color.Green("✅ Регистрация успешно завершена!")
		fmt.Println("Теперь вы можете войти в систему: blogkeeper auth login")

		return nil
	},
}
