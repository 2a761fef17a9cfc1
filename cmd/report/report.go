// Package report prints the machine-readable run summary.
package report

import (
	"io"

	"fjacquet/work-metrics/cmd/common"
	"fjacquet/work-metrics/cmd/root"
	"fjacquet/work-metrics/internal/container"
	"fjacquet/work-metrics/internal/fileutils"
	"fjacquet/work-metrics/internal/logging"
	"fjacquet/work-metrics/internal/validation"

	"github.com/spf13/cobra"
)

// Options configures a report run.
type Options struct {
	Input   string
	Output  string
	Format  string
	Filters common.FilterFlags
}

var opts Options

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Print a JSON or YAML summary of the computation",
	Long: `Print the run summary: source file, session id, row counts (raw,
enriched, dropped for an invalid date, filtered), the active filter, the grand
totals, the transfer line count and the unrecognized unit codes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		opts.Input = root.SharedFlags.Input
		opts.Output = root.SharedFlags.Output
		return Run(cmd.OutOrStdout(), c, opts)
	},
}

func init() {
	opts.Filters.Bind(Cmd)
	Cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Report format (json or yaml)")
}

// Run computes the summary and writes it to w, or to Output when set.
func Run(w io.Writer, c *container.Container, o Options) error {
	if err := validation.IsValidReportFormat(o.Format); err != nil {
		return err
	}

	s, computed, err := common.OpenSession(c, o.Input, o.Filters)
	if err != nil {
		return err
	}

	out, err := c.GetReportGenerator().GenerateReport(s.Summary(computed), o.Format)
	if err != nil {
		return err
	}

	if o.Output == "" {
		_, err = w.Write(out)
		return err
	}

	path, err := fileutils.ResolveOutputPath(o.Output, "report."+o.Format)
	if err != nil {
		return err
	}
	if err := fileutils.WriteFile(path, out); err != nil {
		return err
	}
	c.GetLogger().Info("Wrote report", logging.F(logging.FieldOutputFile, path), logging.F(logging.FieldFormat, o.Format))
	return nil
}
