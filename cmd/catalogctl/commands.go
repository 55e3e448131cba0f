package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"libraryapp/internal/book"
	"libraryapp/internal/store"
)

type storeOpener func(ctx context.Context) (*store.Store, func() error, error)

type app struct {
	books   *book.Service
	close   func() error
	jsonOut bool
}

func newRootCmd(open storeOpener) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Inspect and edit the library catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			st, closeFn, err := open(cmd.Context())
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			a.books = book.NewService(st, nil)
			a.close = closeFn
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.close == nil {
				return nil
			}
			return a.close()
		},
	}
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Print JSON instead of a table")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newFeaturedCmd(a),
		newCategoriesCmd(a),
		newFeatureCmd(a),
		newUnfeatureCmd(a),
		newDeleteCmd(a),
	)
	return root
}

func newListCmd(a *app) *cobra.Command {
	var (
		categories []int
		sortKey    string
		direction  string
		pageIndex  int
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books",
		Long: `List one page of books.

Examples:
  catalogctl list                          # First page, insertion order
  catalogctl list --categories 8,11        # Motivasi or Romance
  catalogctl list --sort date --direction desc
  catalogctl list --page-size 2 --page 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := book.PageQuery{
				Categories: categories,
				Sort:       book.SortKey(sortKey),
				Direction:  book.Direction(direction),
				PageIndex:  pageIndex,
				PageSize:   pageSize,
			}
			switch q.Sort {
			case book.SortNone, book.SortName, book.SortDate:
			default:
				return fmt.Errorf("unknown sort key %q", sortKey)
			}
			if q.Direction != book.Asc && q.Direction != book.Desc {
				return fmt.Errorf("unknown direction %q", direction)
			}

			page, err := a.books.Page(cmd.Context(), q)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, page)
			}
			if len(page.Items) == 0 {
				fmt.Fprintln(out, "No books found.")
				return nil
			}
			writeBooks(out, page.Items)
			fmt.Fprintf(out, "\nPage %d of %d, %d book(s)\n", page.PageIndex+1, page.TotalPages, page.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&categories, "categories", nil, "Category ids to filter by")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort key: name or date")
	cmd.Flags().StringVar(&direction, "direction", string(book.Asc), "Sort direction: asc or desc")
	cmd.Flags().IntVar(&pageIndex, "page", 0, "Zero based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", book.DefaultPageSize, "Books per page")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			v, err := a.books.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("book %d: %w", id, err)
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, v)
			}
			fmt.Fprintf(out, "ID:          %d\n", v.ID)
			fmt.Fprintf(out, "Title:       %s\n", v.Title)
			fmt.Fprintf(out, "Author:      %s\n", v.Author)
			fmt.Fprintf(out, "Published:   %s\n", v.Published)
			fmt.Fprintf(out, "Categories:  %s\n", categoryNames(v.Categories))
			fmt.Fprintf(out, "Image:       %s\n", v.ImageURL)
			fmt.Fprintf(out, "\n%s\n", v.Description)
			return nil
		},
	}
}

func newFeaturedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List the carousel books in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := a.books.Featured(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, views)
			}
			if len(views) == 0 {
				fmt.Fprintln(out, "Carousel is empty.")
				return nil
			}
			writeBooks(out, views)
			return nil
		},
	}
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := a.books.Categories(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, cats)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME")
			for _, c := range cats {
				fmt.Fprintf(tw, "%d\t%s\n", c.ID, c.Name)
			}
			return tw.Flush()
		},
	}
}

func newFeatureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "feature <id>",
		Short: "Add a book to the carousel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.books.AddToCarousel(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Book %d added to the carousel.\n", id)
			return nil
		},
	}
}

func newUnfeatureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unfeature <id>",
		Short: "Remove a book from the carousel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.books.RemoveFromCarousel(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Book %d removed from the carousel.\n", id)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book and drop it from the carousel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.books.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Book %d deleted.\n", id)
			return nil
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid book id %q", s)
	}
	return id, nil
}

func writeBooks(out io.Writer, views []book.View) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tPUBLISHED\tCATEGORIES")
	for _, v := range views {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", v.ID, truncate(v.Title, 40), v.Author, v.Published, categoryNames(v.Categories))
	}
	_ = tw.Flush()
}

func categoryNames(cats []book.Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
