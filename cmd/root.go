package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labsite",
	Short: "labsite serves the KHEOBS climate lab website.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("welcome to use labsite, use `labsite -h` for help")
	},
}

// Execute ...
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
