package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kheobs/labsite/pkg/envs"
	"github.com/kheobs/labsite/pkg/i18n"
	"github.com/kheobs/labsite/pkg/logging"
	"github.com/kheobs/labsite/pkg/router"
)

var webServerCmd = &cobra.Command{
	Use:   "webserver",
	Short: "webserver start http server.",
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger()
		logger := logging.GetSystemLogger()

		if err := i18n.Init(envs.DefaultLocale); err != nil {
			logger.Fatalf("invalid DEFAULT_LOCALE: %s", err)
		}

		color.Green("Starting server at http://0.0.0.0:%s/", envs.ServerPort)
		if err := router.Run(context.Background()); err != nil {
			logger.Fatalf("server exited with error: %s", err)
		}
		logger.Info("server exited")
	},
}

func init() {
	rootCmd.AddCommand(webServerCmd)
}
