package blog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"blogkeeper/internal/app/client"
)

var (
	title   string
	content string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать запись",
	Example: `  blogkeeper blog create --title "Первая" --content "Текст"
  blogkeeper --auth basic blog create -t "Первая" -c "Текст"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := authorizedApp(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.CreateBlog(ctx, title, content); err != nil {
			if errors.Is(err, client.ErrUnauthorized) {
				return fmt.Errorf("%w: выполните blogkeeper auth login --remember", err)
			}
			return fmt.Errorf("ошибка создания записи: %w", err)
		}

		color.Green("✓ Запись создана")
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&title, "title", "t", "", "заголовок")
	CreateCmd.Flags().StringVarP(&content, "content", "c", "", "текст записи")
	_ = CreateCmd.MarkFlagRequired("title")
}
