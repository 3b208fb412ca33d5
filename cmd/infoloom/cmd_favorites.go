package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newFavoritesCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorited UC slugs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every favorite, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			favs, err := opts.favorites()
			if err != nil {
				return err
			}
			for _, slug := range favs.Slugs() {
				fmt.Fprintln(cmd.OutOrStdout(), slug)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <slug>",
		Short: "Add the slug if absent, remove it otherwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			favs, err := opts.favorites()
			if err != nil {
				return err
			}
			added, err := favs.Toggle(args[0])
			if err != nil {
				return err
			}
			out := newPrinter(opts)
			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s added\n", out.star(), args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s removed\n", args[0])
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check <slug>",
		Short: "Report whether the slug is a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			favs, err := opts.favorites()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), favs.IsFavorite(args[0]))
			return nil
		},
	})

	return cmd
}

type printer struct {
	starColor *color.Color
	dimColor  *color.Color
}

func newPrinter(opts *cliOptions) printer {
	p := printer{
		starColor: color.New(color.FgYellow, color.Bold),
		dimColor:  color.New(color.Faint),
	}
	if opts.noColor {
		p.starColor.DisableColor()
		p.dimColor.DisableColor()
	}
	return p
}

func (p printer) star() string {
	return p.starColor.Sprint("★")
}

func (p printer) dim(s string) string {
	return p.dimColor.Sprint(s)
}
