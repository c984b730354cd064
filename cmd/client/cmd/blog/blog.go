package blog

import (
	"fmt"

	"github.com/spf13/cobra"

	"blogkeeper/cmd/client/cmd/auth"
	"blogkeeper/cmd/client/cmd/types"
	"blogkeeper/internal/app/client"
	"blogkeeper/internal/app/client/config"
)

// BlogCmd - родительская команда для операций с записями
var BlogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Записи блога",
}

// authorizedApp достает приложение и, в режиме basic, запрашивает учетку.
func authorizedApp(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("приложение не инициализировано")
	}

	if app.Config().AuthScheme == config.SchemeBasic {
		email, err := auth.PromptEmail()
		if err != nil {
			return nil, err
		}
		password, err := auth.PromptPassword("Пароль: ")
		if err != nil {
			return nil, err
		}
		app.UseBasic(email, password)
	}

	return app, nil
}
