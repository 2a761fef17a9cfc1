package models

import (
	"time"

	"fjacquet/work-metrics/internal/dateutils"
)

// Day is a calendar date without time of day. The zero Day means "no day".
type Day struct {
	t time.Time
}

// NewDay truncates t to its calendar date.
func NewDay(t time.Time) Day {
	if t.IsZero() {
		return Day{}
	}
	return Day{t: dateutils.TruncateDay(t)}
}

// ParseDay parses YYYY-MM-DD.
func ParseDay(s string) (Day, error) {
	t, err := dateutils.ParseDay(s)
	if err != nil {
		return Day{}, err
	}
	return NewDay(t), nil
}

// MustParseDay is ParseDay for literals in tests and defaults.
func MustParseDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Day) Time() time.Time       { return d.t }
func (d Day) IsZero() bool          { return d.t.IsZero() }
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
func (d Day) After(other Day) bool  { return d.t.After(other.t) }
func (d Day) Equal(other Day) bool  { return d.t.Equal(other.t) }
func (d Day) Compare(other Day) int { return d.t.Compare(other.t) }

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return dateutils.FormatDay(d.t)
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (d Day) MarshalCSV() (string, error) {
	return d.String(), nil
}

// MarshalText lets JSON and YAML encoders print the ISO form.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses the ISO form; empty text is the zero Day.
func (d *Day) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
