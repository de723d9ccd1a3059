package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign up, sign in and manage the current session",
	}

	cmd.AddCommand(
		newAuthSignUpCmd(app),
		newAuthSignInCmd(app),
		newAuthSignOutCmd(app),
		newAuthWhoAmICmd(app),
	)

	return cmd
}

type authFunc func(ctx context.Context, email, password string) (*app.AuthResult, error)

func credentialsCmd(a *App, use, short, verb string, run authFunc) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				if !a.interactive() {
					return fmt.Errorf("--password is required when not running in a terminal")
				}
				if err := passwordForm(&password).RunWithContext(cmd.Context()); err != nil {
					return err
				}
			}

			res, err := run(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := a.Sessions.Save(res.Session.Token); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s as %s\n", formatter.StyleGreen.Render(verb), formatter.Bold(res.User.Email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthSignUpCmd(a *App) *cobra.Command {
	return credentialsCmd(a, "signup", "Create an account and sign in", "Signed up", a.Auth.SignUp)
}

func newAuthSignInCmd(a *App) *cobra.Command {
	return credentialsCmd(a, "signin", "Sign in to an existing account", "Signed in", a.Auth.SignIn)
}

func newAuthSignOutCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.Sessions.Load()
			if err != nil {
				return err
			}
			if token != "" {
				if err := a.Auth.SignOut(cmd.Context(), token); err != nil {
					return err
				}
			}
			if err := a.Sessions.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newAuthWhoAmICmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.UserOverride != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.UserOverride, formatter.Dim("(--user override)"))
				return nil
			}
			token, err := a.Sessions.Load()
			if err != nil {
				return err
			}
			res, err := a.Auth.Session(cmd.Context(), token)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.Bold(res.User.Email),
				formatter.Dim("session expires "+res.Session.ExpiresAt.Local().Format("2006-01-02 15:04")))
			return nil
		},
	}
}
