// Package export writes the metric tables to a workbook and optional CSV files.
package export

import (
	"fmt"
	"io"
	"time"

	"fjacquet/work-metrics/cmd/common"
	"fjacquet/work-metrics/cmd/root"
	"fjacquet/work-metrics/internal/container"
	"fjacquet/work-metrics/internal/exporter"
	"fjacquet/work-metrics/internal/fileutils"

	"github.com/spf13/cobra"
)

// Options configures an export run.
type Options struct {
	Input   string
	Output  string
	CSVDir  string
	Filters common.FilterFlags
	Today   time.Time
}

var opts Options

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the metric tables to an XLSX workbook",
	Long: `Write the four metric tables as the sheets day_user, day_user_item,
day_totals and transfers of one workbook (default work_metrics_<today>.xlsx).
With --csv-dir each table is also written as a delimited CSV file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		opts.Input = root.SharedFlags.Input
		opts.Output = root.SharedFlags.Output
		opts.Today = time.Now()
		return Run(cmd.OutOrStdout(), c, opts)
	},
}

func init() {
	opts.Filters.Bind(Cmd)
	Cmd.Flags().StringVar(&opts.CSVDir, "csv-dir", "", "Also write one CSV file per table into this directory")
}

// Run computes the tables and writes them.
func Run(w io.Writer, c *container.Container, o Options) error {
	_, computed, err := common.OpenSession(c, o.Input, o.Filters)
	if err != nil {
		return err
	}

	today := o.Today
	if today.IsZero() {
		today = time.Now()
	}
	defaultName := exporter.DefaultFileName(c.GetConfig().Export.FilePrefix, today)
	path, err := fileutils.ResolveOutputPath(o.Output, defaultName)
	if err != nil {
		return err
	}

	exp := c.GetExporter()
	if err := exp.SaveWorkbook(path, computed.Result); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Workbook written to %s\n", path); err != nil {
		return err
	}

	if o.CSVDir != "" {
		paths, err := exp.SaveCSVDir(o.CSVDir, computed.Result)
		if err != nil {
			return err
		}
		for _, p := range paths {
			if _, err := fmt.Fprintf(w, "CSV written to %s\n", p); err != nil {
				return err
			}
		}
	}

	common.ReportUnits(w, c.GetLogger(), computed.UnrecognizedUnits)
	return nil
}
