package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newPostsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "posts",
		Short: "Print the blog post listing, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.posts(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (c *cli) posts(ctx context.Context, out io.Writer) error {
	a, err := newApp(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer a.Close()

	posts, err := a.posts.ListPosts(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PUBLISHED\tSLUG\tTITLE")
	for _, p := range posts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.PublishedAt().Format(time.DateOnly), p.Slug(), p.Title())
	}
	return w.Flush()
}
