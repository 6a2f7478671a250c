package main

import (
	"github.com/spf13/cobra"

	"github.com/ratulalahy/med-debt-collector/internal/appstate"
)

func (c *cli) prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the persisted display preferences",
	}

	show := &cobra.Command{
		Use:  "show",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := c.app.store(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), st.State().Preferences)
		},
	}

	var theme, language, timezone, dateFormat, currency string
	var email, push, sms bool
	set := &cobra.Command{
		Use:  "set",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := c.app.store(ctx)
			if err != nil {
				return err
			}

			fl := cmd.Flags()
			var patch appstate.PreferencesPatch
			strFlag := func(name string, v *string) *string {
				if fl.Changed(name) {
					return v
				}
				return nil
			}
			patch.Theme = strFlag("theme", &theme)
			patch.Language = strFlag("language", &language)
			patch.Timezone = strFlag("timezone", &timezone)
			patch.DateFormat = strFlag("date-format", &dateFormat)
			patch.Currency = strFlag("currency", &currency)
			if fl.Changed("email") || fl.Changed("push") || fl.Changed("sms") {
				ch := st.State().Preferences.Notifications
				if fl.Changed("email") {
					ch.Email = email
				}
				if fl.Changed("push") {
					ch.Push = push
				}
				if fl.Changed("sms") {
					ch.SMS = sms
				}
				patch.Notifications = &ch
			}

			if err := st.UpdatePreferences(ctx, patch); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), st.State().Preferences)
		},
	}
	fl := set.Flags()
	fl.StringVar(&theme, "theme", "", "light or dark")
	fl.StringVar(&language, "language", "", "UI language")
	fl.StringVar(&timezone, "timezone", "", "IANA timezone")
	fl.StringVar(&dateFormat, "date-format", "", "date display format")
	fl.StringVar(&currency, "currency", "", "ISO 4217 currency code")
	fl.BoolVar(&email, "email", true, "email notifications")
	fl.BoolVar(&push, "push", true, "push notifications")
	fl.BoolVar(&sms, "sms", false, "SMS notifications")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := c.app.store(cmd.Context())
			if err != nil {
				return err
			}
			if err := st.Dispatch(cmd.Context(), appstate.Reset{}); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), st.State().Preferences)
		},
	}

	cmd.AddCommand(show, set, reset)
	return cmd
}
