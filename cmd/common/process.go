// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/work-metrics/internal/container"
	"fjacquet/work-metrics/internal/logging"
	"fjacquet/work-metrics/internal/models"
	"fjacquet/work-metrics/internal/render"
	"fjacquet/work-metrics/internal/session"
	"fjacquet/work-metrics/internal/validation"

	"github.com/spf13/cobra"
)

// FilterFlags are the filter options shared by every reporting command.
type FilterFlags struct {
	From    string
	To      string
	AllDays bool
	Users   []string
	Item    string
}

// Bind registers the filter flags on cmd.
func (f *FilterFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.From, "from", "", "First day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.To, "to", "", "Last day to include (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&f.AllDays, "all-days", false, "Include every day instead of only the last one")
	cmd.Flags().StringSliceVar(&f.Users, "users", nil, "Users to include (repeatable or comma-separated)")
	cmd.Flags().StringVar(&f.Item, "item", "", "Item code substring (case-insensitive)")
}

// Selection builds the filter for a dataset. Without --from, --to or
// --all-days the dataset's default selection (its last day) is kept.
func (f FilterFlags) Selection(defaults models.FilterSelection) (models.FilterSelection, error) {
	sel := models.FilterSelection{From: defaults.From, To: defaults.To}
	if f.AllDays || f.From != "" || f.To != "" {
		sel.From, sel.To = models.Day{}, models.Day{}
	}

	if f.From != "" {
		day, err := models.ParseDay(f.From)
		if err != nil {
			return models.FilterSelection{}, fmt.Errorf("invalid --from: %w", err)
		}
		sel.From = day
	}
	if f.To != "" {
		day, err := models.ParseDay(f.To)
		if err != nil {
			return models.FilterSelection{}, fmt.Errorf("invalid --to: %w", err)
		}
		sel.To = day
	}

	for _, u := range f.Users {
		if u = strings.TrimSpace(u); u != "" {
			sel.Users = append(sel.Users, u)
		}
	}
	sel.ItemQuery = strings.TrimSpace(f.Item)
	if err := validation.IsValidDayRange(sel); err != nil {
		return models.FilterSelection{}, err
	}
	return sel, nil
}

// OpenSession loads the input, applies the filter flags and computes the tables.
func OpenSession(c *container.Container, input string, filters FilterFlags) (*session.Session, session.Computation, error) {
	if c == nil {
		return nil, session.Computation{}, fmt.Errorf("container not initialized")
	}

	s, err := c.OpenSession(input)
	if err != nil {
		return nil, session.Computation{}, err
	}

	sel, err := filters.Selection(s.Filter())
	if err != nil {
		return nil, session.Computation{}, err
	}
	s.SetFilter(sel)

	computed := s.Compute()
	c.GetLogger().Debug("Computed tables",
		logging.F(logging.FieldSession, s.ID()),
		logging.F(logging.FieldRows, computed.FilteredRows))
	return s, computed, nil
}

// ReportUnits prints the unit advisory when the filtered data holds unit codes
// other than ST and PAL. It does nothing otherwise.
func ReportUnits(w io.Writer, log logging.Logger, units []string) {
	if len(units) == 0 {
		return
	}
	list := render.UnitList(units)
	log.Warn("Unrecognized units; raw quantities used", logging.F(logging.FieldUnits, list))
	_, _ = fmt.Fprintf(w, "Note: unrecognized units (raw quantity used): %s\n", list)
}

// DescribeSelection renders a filter as one line.
func DescribeSelection(sel models.FilterSelection) string {
	days := "all days"
	switch {
	case !sel.From.IsZero() && sel.From.Equal(sel.To):
		days = sel.From.String()
	case !sel.From.IsZero() || !sel.To.IsZero():
		days = fmt.Sprintf("%s..%s", orOpen(sel.From), orOpen(sel.To))
	}

	users := "all users"
	if len(sel.Users) > 0 {
		users = strings.Join(sel.Users, ", ")
	}

	out := fmt.Sprintf("days: %s | users: %s", days, users)
	if sel.ItemQuery != "" {
		out += fmt.Sprintf(" | item: %q", sel.ItemQuery)
	}
	return out
}

func orOpen(d models.Day) string {
	if d.IsZero() {
		return "*"
	}
	return d.String()
}
