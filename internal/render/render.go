// Package render prints metric tables to a terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/work-metrics/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

// EmptyUnitLabel stands for the empty unit code in advisories.
const EmptyUnitLabel = "(empty)"

// Styles groups the styles used for tables.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultStyles returns the standard table styles.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2E86AB")),
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// Renderer writes titled tables to an output stream.
type Renderer struct {
	out    io.Writer
	styles Styles
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, styles: DefaultStyles()}
}

// Table writes a titled table. Numeric columns are right-aligned.
func (r *Renderer) Table(title string, headers []string, rows [][]string, numeric ...int) error {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(r.styles.Title.Render(title))
		sb.WriteString("\n")
	}

	if len(rows) == 0 {
		sb.WriteString(r.styles.Muted.Render("(no rows)"))
		sb.WriteString("\n\n")
		_, err := io.WriteString(r.out, sb.String())
		return err
	}

	right := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		right[c] = true
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Muted).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			if right[col] {
				return r.styles.Cell.Align(lipgloss.Right)
			}
			return r.styles.Cell
		})

	sb.WriteString(t.String())
	sb.WriteString("\n\n")
	_, err := io.WriteString(r.out, sb.String())
	return err
}

// DayUser writes the Day×User table.
func (r *Renderer) DayUser(rows []models.DayUserMetrics) error {
	out := make([][]string, 0, len(rows))
	for _, m := range rows {
		out = append(out, []string{
			m.Day.String(), m.User,
			Decimal(m.Inbound), Decimal(m.Outbound), Decimal(m.Conversion), Decimal(m.TotalExclTransfer),
		})
	}
	return r.Table("Day × User",
		[]string{"day", "user", "inbound_sum", "outbound_sum", "conversion_sum", "total_excl_transfer"},
		out, 2, 3, 4, 5)
}

// DayUserItem writes the Day×User×Item table.
func (r *Renderer) DayUserItem(rows []models.DayUserItemMetrics) error {
	out := make([][]string, 0, len(rows))
	for _, m := range rows {
		out = append(out, []string{
			m.Day.String(), m.User, m.Item,
			Decimal(m.Inbound), Decimal(m.Outbound), Decimal(m.Conversion),
		})
	}
	return r.Table("Day × User × Item",
		[]string{"day", "user", "item", "inbound_sum", "outbound_sum", "conversion_sum"},
		out, 3, 4, 5)
}

// Long writes the melted Day×User×Item view.
func (r *Renderer) Long(rows []models.MetricValue) error {
	out := make([][]string, 0, len(rows))
	for _, m := range rows {
		out = append(out, []string{m.Day.String(), m.User, m.Item, m.Metric, Decimal(m.Value)})
	}
	return r.Table("Day × User × Item (long)",
		[]string{"day", "user", "item", "metric", "value"},
		out, 4)
}

// DayTotals writes the Day totals table.
func (r *Renderer) DayTotals(rows []models.DayTotals) error {
	out := make([][]string, 0, len(rows))
	for _, m := range rows {
		out = append(out, []string{
			m.Day.String(),
			Decimal(m.Inbound), Decimal(m.Outbound), Decimal(m.Conversion), Decimal(m.TotalExclTransfer),
		})
	}
	return r.Table("Day totals",
		[]string{"day", "inbound_sum", "outbound_sum", "conversion_sum", "total_excl_transfer"},
		out, 1, 2, 3, 4)
}

// Transfers writes the transfer line counts.
func (r *Renderer) Transfers(rows []models.TransferCount) error {
	out := make([][]string, 0, len(rows))
	for _, m := range rows {
		out = append(out, []string{m.Day.String(), m.LocationBucket, strconv.Itoa(m.Lines)})
	}
	return r.Table("Transfers",
		[]string{"day", "location_bucket", "transfer_line_count"},
		out, 2)
}

// TopN writes ranked item rows with their position.
func (r *Renderer) TopN(title string, rows []models.RankedItem) error {
	out := make([][]string, 0, len(rows))
	for i, m := range rows {
		out = append(out, []string{
			strconv.Itoa(i + 1), m.Day.String(), m.User, m.Item,
			Decimal(m.Inbound), Decimal(m.Outbound), Decimal(m.Conversion), Decimal(m.Score),
		})
	}
	return r.Table(title,
		[]string{"#", "day", "user", "item", "inbound_sum", "outbound_sum", "conversion_sum", "score"},
		out, 0, 4, 5, 6, 7)
}

// Line writes a plain line.
func (r *Renderer) Line(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.out, format+"\n", args...)
	return err
}

// Decimal formats a metric value without trailing zeros.
func Decimal(d decimal.Decimal) string {
	return d.String()
}

// UnitList formats unit codes for an advisory, naming the empty code.
func UnitList(units []string) string {
	labels := make([]string, 0, len(units))
	for _, u := range units {
		if u == "" {
			u = EmptyUnitLabel
		}
		labels = append(labels, u)
	}
	return strings.Join(labels, ", ")
}
