package cli

import (
	"fmt"

	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/cli/formatter"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newFinanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "finance",
		Aliases: []string{"fin"},
		Short:   "Track income, expenses and savings",
	}

	cmd.AddCommand(
		newFinanceAddCmd(app),
		newFinanceListCmd(app),
		newFinanceRemoveCmd(app),
		newFinanceSummaryCmd(app),
	)

	return cmd
}

func newFinanceAddCmd(a *App) *cobra.Command {
	var (
		typ         domain.EntryType
		amount      decimal.Decimal
		category    string
		description string
		date        string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			now := a.now()
			e, err := a.Ledger.Add(cmd.Context(), ownerID, app.AddEntryRequest{
				Type:           typ,
				Category:       category,
				Amount:         amount,
				Description:    description,
				Date:           date,
				StrictCategory: strict,
				Now:            &now,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s\n",
				formatter.StyleGreen.Render("Added"),
				formatter.TruncID(e.ID),
				formatter.EntryTypeStyle(e.Type).Render(string(e.Type)),
				formatter.FormatMoney(e.Amount),
				formatter.Dim(e.Category+" · "+e.Date),
			)
			return nil
		},
	}

	cmd.Flags().Var(newEntryTypeValue(&typ), "type", "income, expense or saving")
	cmd.Flags().Var(newDecimalValue(&amount), "amount", "Amount, e.g. 12.50")
	cmd.Flags().StringVar(&category, "category", "", "Category (default Other)")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&date, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&strict, "strict-category", false, "Reject categories outside the built-in list for the type")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func newFinanceListCmd(a *App) *cobra.Command {
	var (
		month string
		typ   domain.EntryType
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := a.Ledger.List(cmd.Context(), ownerID, app.EntryFilter{Month: month, Type: typ})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntryList(entries))
			return nil
		},
	}

	cmd.Flags().Var(newMonthValue(&month), "month", "Only transactions dated in this month")
	cmd.Flags().Var(newEntryTypeValue(&typ), "type", "income, expense or saving")

	return cmd
}

func newFinanceRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a transaction",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolveEntryID(cmd.Context(), a, ownerID, args[0])
			if err != nil {
				return err
			}
			if err := a.Ledger.Delete(cmd.Context(), ownerID, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed transaction %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newFinanceSummaryCmd(a *App) *cobra.Command {
	var (
		month  string
		typ    domain.EntryType
		months int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Monthly totals, spending by category and the income/expense trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			if months <= 0 {
				months = a.TrendMonths
			}
			now := a.now()
			sum, err := a.Finance.Summary(cmd.Context(), ownerID, app.FinanceRequest{
				Now:         &now,
				Month:       month,
				Type:        typ,
				TrendMonths: months,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFinanceSummary(sum))
			return nil
		},
	}

	cmd.Flags().Var(newMonthValue(&month), "month", "Month to summarise (default current)")
	cmd.Flags().Var(newEntryTypeValue(&typ), "type", "Only list transactions of this type")
	cmd.Flags().IntVar(&months, "months", 0, "Months of trend history (default from config)")

	return cmd
}
