package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/infoloom/infoloom/api/internal/prefs"
)

func newThemeCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the theme preference",
	}

	var systemDark bool
	get := &cobra.Command{
		Use:   "get",
		Short: "Print the active theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storage, err := opts.storage()
			if err != nil {
				return err
			}
			theme, err := prefs.Theme(storage, systemDark)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		},
	}
	get.Flags().BoolVar(&systemDark, "system-dark", false, "treat the system preference as dark when nothing is stored")

	set := &cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Store the theme preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{prefs.ThemeDark, prefs.ThemeLight},
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, err := opts.storage()
			if err != nil {
				return err
			}
			if err := prefs.SetTheme(storage, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), args[0])
			return nil
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}
