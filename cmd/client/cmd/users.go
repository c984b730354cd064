package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"blogkeeper/cmd/client/cmd/types"
	"blogkeeper/internal/app/client"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Список зарегистрированных email",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		emails, err := app.ListUsers(ctx)
		if err != nil {
			return fmt.Errorf("ошибка получения списка пользователей: %w", err)
		}

		if len(emails) == 0 {
			fmt.Println("Пользователи не найдены")
			return nil
		}

		color.Cyan("Пользователей: %d", len(emails))
		for _, email := range emails {
			fmt.Println(" ", email)
		}
		return nil
	},
}
