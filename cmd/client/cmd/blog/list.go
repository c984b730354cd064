package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"blogkeeper/internal/domain/blog"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long:  `Записи возвращаются в порядке создания, содержимое уже расшифровано сервером.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := authorizedApp(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		entries, err := app.ListBlogs(ctx)
		if err != nil {
			return fmt.Errorf("ошибка получения списка записей: %w", err)
		}

		switch listFormat {
		case "json":
			return printEntriesJSON(entries)
		default:
			printEntriesSimple(entries)
			return nil
		}
	},
}

func printEntriesSimple(entries []blog.Entry) {
	if len(entries) == 0 {
		fmt.Println("Записи не найдены")
		return
	}

	fmt.Printf("Найдено записей: %d\n\n", len(entries))
	title := color.New(color.Bold, color.FgCyan)
	for i, e := range entries {
		title.Printf("%d. %s\n", i+1, e.Title)
		fmt.Println("   ", e.Content)
	}
}

func printEntriesJSON(entries []blog.Entry) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода: simple, json")
}
