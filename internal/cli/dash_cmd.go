package cli

import (
	"fmt"

	"github.com/alexanderramin/lifetrack/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Interactive dashboard with overview, tasks, finance and insights tabs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			if !a.interactive() {
				d, err := a.dashboard(cmd.Context(), ownerID, "")
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(d))
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatInsights(d.Insights))
				return nil
			}

			p := tea.NewProgram(
				newDashModel(cmd.Context(), a, ownerID),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}
}
