// Package cli implements the pager command: it prints the pagination bar for
// a position, either drawn for a terminal or as JSON.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/maxviazov/catalog-pagination/internal/config"
	"github.com/maxviazov/catalog-pagination/internal/logger"
	"github.com/maxviazov/catalog-pagination/internal/pagination"
	"github.com/maxviazov/catalog-pagination/internal/render"
	"github.com/maxviazov/catalog-pagination/internal/service"
)

const rootExample = `  pager --current 5 --total 10
  pager --current 3 --items 240 --page-size 20 --max 7
  pager --current 12 --total 10 --json`

type options struct {
	current  int
	total    int
	items    int
	pageSize int
	max      int
	asJSON   bool
	plain    bool
	verbose  bool

	fromItems bool
}

// NewRootCmd builds the pager command.
func NewRootCmd(version string) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "pager",
		Short:         "Print the pagination bar for a page position",
		Long:          "pager renders the compressed page list (first, last, neighbours of the current page and ellipses) a pagination control shows.",
		Version:       version,
		Example:       rootExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			totalSet := cmd.Flags().Changed("total")
			itemsSet := cmd.Flags().Changed("items")
			switch {
			case totalSet && itemsSet:
				return errors.New("--total and --items are mutually exclusive")
			case !totalSet && !itemsSet:
				return errors.New("one of --total or --items is required")
			case itemsSet && opts.pageSize <= 0:
				return errors.New("--items requires --page-size > 0")
			}
			opts.fromItems = itemsSet
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.current, "current", "c", 1, "current page (1-based)")
	f.IntVarP(&opts.total, "total", "t", 0, "total number of pages")
	f.IntVar(&opts.items, "items", 0, "total number of items; pages are derived with --page-size")
	f.IntVar(&opts.pageSize, "page-size", 0, "items per page, used with --items")
	f.IntVarP(&opts.max, "max", "m", pagination.DefaultMaxVisiblePages, "slots shown before the bar compresses")
	f.BoolVar(&opts.asJSON, "json", false, "print the bar as JSON")
	f.BoolVar(&opts.plain, "plain", false, "print without colours even on a terminal")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	return cmd
}

func run(ctx context.Context, out, errOut io.Writer, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log, err := newLogger(errOut, opts.verbose)
	if err != nil {
		return err
	}

	total := opts.total
	if opts.fromItems {
		total = pagination.TotalPages(opts.items, opts.pageSize)
		log.Debug().Int("items", opts.items).Int("page_size", opts.pageSize).Int("total_pages", total).Msg("derived page count")
	}

	pager := service.NewPaginationService(config.PaginationConfig{MaxVisiblePages: pagination.DefaultMaxVisiblePages}, nil, log)
	links, err := pager.Build(ctx, opts.current, total, opts.max)
	if err != nil {
		return describe(err)
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(links)
	}

	style := render.DefaultStyle()
	if opts.plain || !isTerminal(out) {
		style = render.PlainStyle()
	}
	_, err = fmt.Fprintln(out, render.Bar(links.Pages, links.CurrentPage, style))
	return err
}

// describe flattens validation errors into one readable line.
func describe(err error) error {
	fields := service.FieldErrors(err)
	if len(fields) == 0 {
		return err
	}
	parts := make([]string, 0, len(fields))
	for _, fe := range fields {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return fmt.Errorf("%w: %s", err, strings.Join(parts, "; "))
}

func newLogger(w io.Writer, verbose bool) (zerolog.Logger, error) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	base, err := logger.New(&logger.LoggerConfig{
		Env:          "prod",
		Level:        level,
		Format:       "console",
		OutputTarget: "stderr",
		ServiceName:  "pager",
	})
	if err != nil {
		return zerolog.Nop(), err
	}
	// the configured logger always targets a process stream; tests hand in their own writer
	if w != os.Stderr {
		base = base.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})
	}
	return base, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
