package cli

import (
	"fmt"

	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/cli/formatter"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"todo"},
		Short:   "Manage tasks and daily rituals",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskToggleCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(a *App) *cobra.Command {
	var (
		title string
		date  string
		daily bool
	)
	priority := domain.PriorityMedium

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			now := a.now()
			t, err := a.Tasks.Add(cmd.Context(), ownerID, app.AddTaskRequest{
				Title:    title,
				Priority: priority,
				Date:     date,
				IsDaily:  daily,
				Now:      &now,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskLine("Added", t))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().VarP(newPriorityValue(&priority), "priority", "p", "low, medium or high")
	cmd.Flags().StringVar(&date, "date", "", "Day the task belongs to (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&daily, "daily", false, "Mark as a daily ritual")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(a *App) *cobra.Command {
	var (
		month  string
		status domain.TaskStatus
		daily  bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			tasks, err := a.Tasks.List(cmd.Context(), ownerID, app.TaskFilter{
				Month:     month,
				Status:    status,
				DailyOnly: daily,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, a.now()))
			return nil
		},
	}

	cmd.Flags().Var(newMonthValue(&month), "month", "Only tasks dated in this month")
	cmd.Flags().Var(newTaskStatusValue(&status), "status", "pending or completed")
	cmd.Flags().BoolVar(&daily, "daily", false, "Only daily rituals")

	return cmd
}

func newTaskToggleCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Flip a task between pending and completed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolveTaskID(cmd.Context(), a, ownerID, args[0])
			if err != nil {
				return err
			}
			t, err := a.Tasks.Toggle(cmd.Context(), ownerID, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskLine("Toggled", t))
			return nil
		},
	}
}

func newTaskRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolveTaskID(cmd.Context(), a, ownerID, args[0])
			if err != nil {
				return err
			}
			if err := a.Tasks.Delete(cmd.Context(), ownerID, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
