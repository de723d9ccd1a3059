package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/lifetrack/internal/cli/formatter"
	"github.com/alexanderramin/lifetrack/internal/importer"
	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all tasks, transactions and the profile as a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			schema, err := a.Backup.Export(cmd.Context(), ownerID, a.now())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := importer.Write(w, schema); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}
			if out != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks and %d transactions to %s\n",
					len(schema.Tasks), len(schema.Entries), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")

	return cmd
}

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add the records of a JSON backup to your account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			schema, err := importer.LoadBackup(args[0])
			if err != nil {
				return fmt.Errorf("loading backup: %w", err)
			}
			res, err := a.Backup.Import(cmd.Context(), ownerID, schema)
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("Imported %d tasks and %d transactions", res.TaskCount, res.EntryCount)
			if res.ProfileSaved {
				msg += " and updated the profile"
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render(msg))
			return nil
		},
	}
}
