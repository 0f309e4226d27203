// Package cli implements the dashctl command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-dashboard/internal/config"
	"github.com/spec-kit/employee-dashboard/internal/directory"
	"github.com/spec-kit/employee-dashboard/internal/upstream"
)

// Options holds the flags shared by every command.
type Options struct {
	BaseURL    string
	Limit      int
	Timeout    int
	JSONOutput bool
	Verbose    bool
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// NewRootCmd builds dashctl with all subcommands writing to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:           "dashctl",
		Short:         "Query the employee directory from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "", "Upstream base URL (defaults to UPSTREAM_BASE_URL)")
	cmd.PersistentFlags().IntVar(&opts.Limit, "limit", 0, "Number of users to fetch (defaults to UPSTREAM_PAGE_LIMIT)")
	cmd.PersistentFlags().IntVar(&opts.Timeout, "timeout", 0, "Upstream timeout in seconds (defaults to UPSTREAM_TIMEOUT_SECONDS)")
	cmd.PersistentFlags().BoolVar(&opts.JSONOutput, "json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(
		newListCmd(opts),
		newStatsCmd(opts),
		newDetailCmd(opts),
		newExportCmd(opts),
	)
	return cmd
}

func (o *Options) upstreamConfig() (config.UpstreamConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.UpstreamConfig{}, err
	}
	up := cfg.Upstream
	if o.BaseURL != "" {
		up.BaseURL = o.BaseURL
	}
	if o.Limit > 0 {
		up.PageLimit = o.Limit
	}
	if o.Timeout > 0 {
		up.TimeoutSeconds = o.Timeout
	}
	return up, nil
}

func (o *Options) logger() *zap.Logger {
	if !o.Verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadStore fetches the roster once.
func (o *Options) loadStore(ctx context.Context) (*directory.Store, error) {
	up, err := o.upstreamConfig()
	if err != nil {
		return nil, err
	}
	store := directory.NewStore(upstream.NewClient(up), up.PageLimit, o.logger())
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(out io.Writer, headers []string, rows [][]string) error {
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(out, t.Render())
	return err
}
