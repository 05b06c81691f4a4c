package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kheobs/labsite/pkg/envs"
	"github.com/kheobs/labsite/pkg/loader"
)

// NewValidateCmd ...
func NewValidateCmd() *cobra.Command {
	var contentDir string

	validateCmd := cobra.Command{
		Use:   "validate",
		Short: "Load the content directory and report malformed files.",
		Run: func(cmd *cobra.Command, args []string) {
			data, err := loader.New(contentDir).Exec()
			if err != nil {
				color.Red("content %s is invalid: %s", contentDir, err)
				os.Exit(1)
			}

			color.Green("content %s is valid", contentDir)
			fmt.Printf(
				"team members: %d\nprojects: %d\npublications: %d\nnews: %d\nevents: %d\ntools: %d\nstations: %d\ncarousels: %d\n",
				data.Team.MemberCount(), len(data.Projects), len(data.Publications), len(data.News),
				len(data.Events), len(data.Tools), len(data.Stations), len(data.Carousels),
			)
		},
	}

	validateCmd.Flags().StringVar(&contentDir, "dir", envs.ContentBaseDir, "content directory to validate")

	return &validateCmd
}

func init() {
	rootCmd.AddCommand(NewValidateCmd())
}
