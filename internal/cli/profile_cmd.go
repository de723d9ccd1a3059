package cli

import (
	"fmt"

	"github.com/alexanderramin/lifetrack/internal/cli/formatter"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
		newProfileEditCmd(app),
	)

	return cmd
}

func newProfileShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.Profiles.Get(cmd.Context(), ownerID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

// changedPatch sets a patch field only for flags given on the command line,
// so an explicit empty value clears the field and an omitted one keeps it.
func changedPatch(flags *pflag.FlagSet, f *profileFields) domain.ProfilePatch {
	var patch domain.ProfilePatch
	pick := func(name string, v *string) *string {
		if flags.Changed(name) {
			return v
		}
		return nil
	}
	patch.Nickname = pick("nickname", &f.Nickname)
	patch.Age = pick("age", &f.Age)
	patch.FavQuote = pick("quote", &f.FavQuote)
	patch.Goal = pick("goal", &f.Goal)
	return patch
}

func newProfileSetCmd(a *App) *cobra.Command {
	var fields profileFields

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields from flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := changedPatch(cmd.Flags(), &fields)
			if patch == (domain.ProfilePatch{}) {
				return fmt.Errorf("nothing to update: pass at least one of --nickname, --age, --quote, --goal")
			}
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.Profiles.Update(cmd.Context(), ownerID, patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Nickname, "nickname", "", "Nickname shown in greetings")
	cmd.Flags().StringVar(&fields.Age, "age", "", "Age (0-150, empty to clear)")
	cmd.Flags().StringVar(&fields.FavQuote, "quote", "", "Favourite quote")
	cmd.Flags().StringVar(&fields.Goal, "goal", "", "Main goal")

	return cmd
}

func newProfileEditCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit your profile in an interactive form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("profile edit needs a terminal; use: lifetrack profile set --nickname ...")
			}
			ownerID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.Profiles.Get(cmd.Context(), ownerID)
			if err != nil {
				return err
			}

			fields := profileFieldsFrom(p)
			if err := profileForm(fields, !p.OnboardingComplete()).RunWithContext(cmd.Context()); err != nil {
				return err
			}

			updated, err := a.Profiles.Update(cmd.Context(), ownerID, fields.patch())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(updated))
			return nil
		},
	}
}
