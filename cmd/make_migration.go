package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/kheobs/labsite/pkg/envs"
	"github.com/kheobs/labsite/pkg/infras/database"
	"github.com/kheobs/labsite/pkg/logging"
)

var migrationTmpl = template.Must(template.New("migration").Parse(strings.TrimLeft(`
package migration

import (
	"github.com/kheobs/labsite/pkg/infras/database"
	"github.com/kheobs/labsite/pkg/model"
)

// {{ .summary }}
func init() {
	// Do Not Edit Migration ID!
	database.RegisterMigration(createTables(
		"{{ .id }}",
		{{- range .tables }}
		&model.{{ . }}{},
		{{- end }}
	))
}
`, "\n")))

var (
	migrationSummary string
	migrationTables  []string
	migrationDir     string
)

var makeMigrationCmd = &cobra.Command{
	Use:   "make-migration",
	Short: "Generate a migration file that creates (and on rollback drops) the given record tables.",
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger()
		logger := logging.GetSystemLogger()

		if len(migrationTables) == 0 {
			logger.Fatal("at least one --table is required, e.g. --table ContactMessage")
		}
		migrationID := database.GenMigrationID()
		summary := migrationSummary
		if summary == "" {
			summary = "create tables " + strings.Join(migrationTables, ", ")
		}

		fileName := fmt.Sprintf("%s.go", migrationID)
		filePath := filepath.Join(migrationDir, fileName)
		// 同一秒内重复执行不覆盖已有迁移
		file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			logger.Fatalf("failed to create migration file with path: %s, err: %s", filePath, err)
		}
		defer file.Close()

		data := map[string]any{"id": migrationID, "summary": summary, "tables": migrationTables}
		if err = migrationTmpl.Execute(file, data); err != nil {
			logger.Fatalf("failed to render migration file from template: %s", err)
		}

		logger.Infof("migration file %s generated, review it and then run `migrate` to apply", fileName)
	},
}

func init() {
	makeMigrationCmd.Flags().StringVar(&migrationSummary, "summary", "", "one-line description written above the migration")
	makeMigrationCmd.Flags().StringSliceVar(&migrationTables, "table", nil, "model type names under pkg/model, repeatable")
	makeMigrationCmd.Flags().StringVar(&migrationDir, "dir", filepath.Join(envs.BaseDir, "pkg/migration"), "migration package directory")
	rootCmd.AddCommand(makeMigrationCmd)
}
