package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/notequiz/internal/i18n"
	"github.com/abhisek/notequiz/internal/store"
)

var langCmd = &cobra.Command{
	Use:       "lang [en|vi]",
	Short:     "Show or save the interface language",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"en", "vi"},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), e.loc.T("lang.current", e.loc.LanguageName()))
			return nil
		}

		lang, err := i18n.ParseLanguage(args[0])
		if err != nil {
			return err
		}
		if err := e.store.PreferenceRepo().Set(cmd.Context(), store.PrefLanguage, string(lang)); err != nil {
			return err
		}
		e.loc.SetLanguage(lang)
		fmt.Fprintln(cmd.OutOrStdout(), e.loc.T("lang.set", e.loc.LanguageName()))
		return nil
	},
}
