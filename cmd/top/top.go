// Package top prints the highest-scoring Day×User×Item rows.
package top

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/work-metrics/cmd/common"
	"fjacquet/work-metrics/cmd/root"
	"fjacquet/work-metrics/internal/container"
	"fjacquet/work-metrics/internal/models"
	"fjacquet/work-metrics/internal/ranking"
	"fjacquet/work-metrics/internal/render"
	"fjacquet/work-metrics/internal/validation"

	"github.com/spf13/cobra"
)

// Options configures a top run.
type Options struct {
	Input   string
	Filters common.FilterFlags
	N       int
	Day     string
	User    string
}

var opts Options

// Cmd represents the top command
var Cmd = &cobra.Command{
	Use:   "top",
	Short: "Print the top items by combined inbound, outbound and conversion",
	Long: `Rank the Day×User×Item rows by their combined metric (inbound + outbound +
conversion) and print the best N. --day and --user narrow the ranking to one
day or one user; rows with equal scores keep their day, user, item order.`,
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
	Cmd.Flags().IntVarP(&opts.N, "top", "n", 0, "Number of rows (default from ranking.default_top_n)")
	Cmd.Flags().StringVar(&opts.Day, "day", "", "Rank only this day (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&opts.User, "user", "", "Rank only this user")
}

// Run computes and prints the ranking.
func Run(w io.Writer, c *container.Container, o Options) error {
	narrow := ranking.Narrowing{User: strings.TrimSpace(o.User)}
	if o.Day != "" {
		day, err := models.ParseDay(o.Day)
		if err != nil {
			return fmt.Errorf("invalid --day: %w", err)
		}
		narrow.Day = day
	}

	n := o.N
	if n == 0 && c != nil {
		n = c.GetConfig().Ranking.DefaultTopN
	}
	if err := validation.IsValidTopN(n); err != nil {
		return err
	}

	s, computed, err := common.OpenSession(c, o.Input, o.Filters)
	if err != nil {
		return err
	}

	ranked := s.TopN(computed, narrow, n)
	r := render.NewRenderer(w)
	if err := r.Line("Filter: %s\n", common.DescribeSelection(computed.Filter)); err != nil {
		return err
	}
	if err := r.TopN(title(n, narrow), ranked); err != nil {
		return err
	}

	common.ReportUnits(w, c.GetLogger(), computed.UnrecognizedUnits)
	return nil
}

func title(n int, narrow ranking.Narrowing) string {
	parts := []string{fmt.Sprintf("Top %d items", n)}
	if !narrow.Day.IsZero() {
		parts = append(parts, "day "+narrow.Day.String())
	}
	if narrow.User != "" {
		parts = append(parts, "user "+narrow.User)
	}
	return strings.Join(parts, " | ")
}
