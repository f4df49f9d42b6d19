package main

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/dirsearch/internal/directory"
	"github.com/pdiddy/dirsearch/internal/output"
	"github.com/pdiddy/dirsearch/internal/pool"
	"github.com/pdiddy/dirsearch/pkg/types"
)

// Input modes select which directory entry point runs.
const (
	inputAll     = "all"
	inputName    = "name"
	inputPartial = "partial"
)

func init() {
	rootCmd.Flags().String("format", output.FormatPretty, "output format: pretty, mutt, json, yaml")
	rootCmd.Flags().String("input", inputAll, "search to run: all, name, or partial")
	rootCmd.Flags().String("who", "all", "audience for name searches: all, faculty, admin, classified, other_staff, student_employees")
	rootCmd.Flags().StringSlice("department", nil, "restrict name searches to a department (repeatable, e.g. physics)")
	rootCmd.Flags().Int("workers", types.DefaultWorkers, "maximum concurrent requests")
	_ = viper.BindPFlag("workers", rootCmd.Flags().Lookup("workers"))
}

// searchOptions are the parsed command-line choices for one run.
type searchOptions struct {
	Format      string
	Input       string
	Who         string
	Departments []string
}

func runSearch(cmd *cobra.Command, args []string) error {
	var opts searchOptions
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.Input, _ = cmd.Flags().GetString("input")
	opts.Who, _ = cmd.Flags().GetString("who")
	opts.Departments, _ = cmd.Flags().GetStringSlice("department")

	client := directory.NewClient(loadConfig(), logger)
	return search(cmd.Context(), client, cmd.OutOrStdout(), args[0], opts)
}

// search runs one lookup and writes it in the chosen format. A mutt lookup
// that prints nothing returns errNoEntries.
func search(ctx context.Context, client *directory.Client, w io.Writer, query string, opts searchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	format, err := output.Lookup(opts.Format)
	if err != nil {
		return err
	}
	nameOpts, err := parseNameOptions(opts.Who, opts.Departments)
	if err != nil {
		return err
	}

	p := pool.New(client.Config.Workers)
	defer p.Close()
	nameOpts.Pool = p

	var seq iter.Seq2[*types.Person, error]
	switch opts.Input {
	case inputAll:
		seq = client.Search(ctx, query, nameOpts)
	case inputName:
		seq = client.SearchByName(ctx, query, nameOpts)
	case inputPartial:
		seq = client.SearchByPartial(ctx, query, p)
	default:
		return fmt.Errorf("unknown input %q (valid: all, name, partial)", opts.Input)
	}

	n, err := format(w, seq)
	if err != nil {
		return err
	}
	logger.Debug("search finished", zap.String("query", query), zap.Int("results", n))
	if opts.Format == output.FormatMutt && n == 0 {
		return errNoEntries
	}
	return nil
}

func parseNameOptions(who string, departments []string) (directory.NameOptions, error) {
	var opts directory.NameOptions
	w, err := directory.LookupWho(who)
	if err != nil {
		return opts, err
	}
	opts.Who = w
	for _, name := range departments {
		d, err := directory.LookupDepartment(name)
		if err != nil {
			return opts, err
		}
		opts.Departments = append(opts.Departments, d)
	}
	return opts, nil
}
