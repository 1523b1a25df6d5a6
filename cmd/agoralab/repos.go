package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agoralab-core/internal/domain/repo"
)

func newReposCmd(c *cli) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "repos",
		Short: "Load the repository listing once and print a page of it",
		Example: `  agoralab repos
  agoralab repos --page 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.repos(cmd.Context(), cmd.OutOrStdout(), page)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to print (clamped to the available pages)")
	return cmd
}

func (c *cli) repos(ctx context.Context, out io.Writer, page int) error {
	a, err := newApp(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.listing.Mount(ctx); err != nil {
		return err
	}
	if err := a.listing.Wait(ctx); err != nil {
		a.listing.Unmount()
		return err
	}

	// a failed load prints the empty page; the cause is already logged by the listing
	return printRepositories(out, a.listing.GoToPage(page))
}

func printRepositories(out io.Writer, view repo.PageView) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTARS\tLANGUAGE\tORG\tURL")
	for _, r := range view.Items {
		language := "-"
		if l := r.Language(); l != nil && *l != "" {
			language = *l
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", r.Name(), r.StargazerCount(), language, r.Org(), r.URL())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\nShowing %s (page %d of %d)\n", view.Label(), view.Page, view.TotalPages)
	return err
}
