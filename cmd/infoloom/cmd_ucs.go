package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/infoloom/infoloom/api/internal/public/domain"
)

func newUCsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ucs",
		Short: "List UCs from the API, starring favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			favs, err := opts.favorites()
			if err != nil {
				return err
			}
			var ucs []domain.UC
			if err := getJSON(cmd.Context(), opts, "/api/ucs", &ucs); err != nil {
				return err
			}

			out := newPrinter(opts)
			w := cmd.OutOrStdout()
			for _, uc := range ucs {
				mark := " "
				if favs.IsFavorite(uc.Slug) {
					mark = out.star()
				}
				fmt.Fprintf(w, "%s %-8s %s %s\n", mark, uc.Sigla, uc.Nome, out.dim("("+uc.Slug+")"))
			}
			return nil
		},
	}
}

func newDatesCmd(opts *cliOptions) *cobra.Command {
	var favoritesOnly bool
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "List evaluation dates per UC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var summaries []domain.UCSummary
			if err := getJSON(cmd.Context(), opts, "/api/dates", &summaries); err != nil {
				return err
			}

			// The dates view carries no slug, so favorites are matched through /api/ucs.
			var keep map[string]bool
			if favoritesOnly {
				favs, err := opts.favorites()
				if err != nil {
					return err
				}
				var ucs []domain.UC
				if err := getJSON(cmd.Context(), opts, "/api/ucs", &ucs); err != nil {
					return err
				}
				keep = make(map[string]bool)
				for _, uc := range ucs {
					if favs.IsFavorite(uc.Slug) {
						keep[uc.Sigla] = true
					}
				}
			}

			out := newPrinter(opts)
			w := cmd.OutOrStdout()
			for _, s := range summaries {
				if keep != nil && !keep[s.Sigla] {
					continue
				}
				fmt.Fprintf(w, "%s %s\n", s.Sigla, out.dim(s.Perfil))
				for _, a := range s.Avaliacoes {
					fmt.Fprintf(w, "  %s  %s\n", a.Data, a.Descricao)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "only show favorited UCs")
	return cmd
}

func getJSON(ctx context.Context, opts *cliOptions, path string, target any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	url := strings.TrimRight(opts.apiURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	resp, err := opts.httpClient().Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("GET %s: %s: %s", url, resp.Status, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrapf(err, "decode %s", url)
	}
	return nil
}
