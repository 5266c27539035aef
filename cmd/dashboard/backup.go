package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fastygo/dashboard/usecase"
	"github.com/fastygo/dashboard/usecase/settings"
)

func newExportCmd() *cobra.Command {
	var dir string
	var stdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of tasks, notes and the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer shutdown(a)

			file, err := usecase.Command[settings.ExportFile](cmd.Context(), a.Dispatcher, usecase.CmdExport, struct{}{})
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if stdout {
				_, err = cmd.OutOrStdout().Write(append(file.Body, '\n'))
				return err
			}

			path := filepath.Join(dir, file.Filename)
			if err := os.WriteFile(path, file.Body, 0o600); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks and %d notes to %s\n",
				len(file.Data.Tasks), len(file.Data.Notes), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write the backup into")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the backup instead of writing a file")

	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Validate a backup file and report its contents",
		Long:  "Parse a backup produced by export. The file is only inspected; nothing is merged into the workspace.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readBackup(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			a, err := bootstrap(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer shutdown(a)

			report, err := usecase.Command[settings.ImportReport](cmd.Context(), a.Dispatcher, usecase.CmdImport, payload)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func readBackup(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	return payload, nil
}

func printReport(w io.Writer, report settings.ImportReport) {
	user := "no"
	if report.HasUser {
		user = "yes"
	}
	fmt.Fprintf(w, "Backup OK\n  user:     %s\n  tasks:    %d\n  notes:    %d\n", user, report.Tasks, report.Notes)
	if report.ExportedAt != "" {
		fmt.Fprintf(w, "  exported: %s\n", report.ExportedAt)
	}
}
