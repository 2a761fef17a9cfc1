// Package analyze prints the four metric tables of a work-line export.
package analyze

import (
	"io"

	"fjacquet/work-metrics/cmd/common"
	"fjacquet/work-metrics/cmd/root"
	"fjacquet/work-metrics/internal/aggregator"
	"fjacquet/work-metrics/internal/container"
	"fjacquet/work-metrics/internal/render"

	"github.com/spf13/cobra"
)

// Options configures an analyze run.
type Options struct {
	Input   string
	Filters common.FilterFlags
	Long    bool
}

var opts Options

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print day, user, item and transfer metrics",
	Long: `Print the Day×User, Day×User×Item, Day totals and Transfers tables of a
work-line export. By default only the last day of the export is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		opts.Input = root.SharedFlags.Input
		return Run(cmd.OutOrStdout(), c, opts)
	},
}

func init() {
	opts.Filters.Bind(Cmd)
	Cmd.Flags().BoolVar(&opts.Long, "long", false, "Show the Day×User×Item table in long form (one row per metric)")
}

// Run computes and prints the tables.
func Run(w io.Writer, c *container.Container, o Options) error {
	s, computed, err := common.OpenSession(c, o.Input, o.Filters)
	if err != nil {
		return err
	}

	r := render.NewRenderer(w)
	span := s.Span()
	if err := r.Line("Source: %s | days in file: %s..%s | rows: %d", s.Source(), span.First, span.Last, s.Len()); err != nil {
		return err
	}
	if err := r.Line("Filter: %s\n", common.DescribeSelection(computed.Filter)); err != nil {
		return err
	}

	res := computed.Result
	if err := r.DayUser(res.DayUser); err != nil {
		return err
	}
	if o.Long {
		err = r.Long(aggregator.Melt(res.DayUserItem))
	} else {
		err = r.DayUserItem(res.DayUserItem)
	}
	if err != nil {
		return err
	}
	if err := r.DayTotals(res.DayTotals); err != nil {
		return err
	}
	if err := r.Transfers(res.Transfers); err != nil {
		return err
	}

	common.ReportUnits(w, c.GetLogger(), computed.UnrecognizedUnits)
	return nil
}
