package models

import "strings"

// FilterSelection narrows the enriched records before aggregation.
// Zero values mean "no narrowing" for every field.
type FilterSelection struct {
	From      Day      `json:"from,omitempty" yaml:"from,omitempty"`
	To        Day      `json:"to,omitempty" yaml:"to,omitempty"`
	Users     []string `json:"users,omitempty" yaml:"users,omitempty"`
	ItemQuery string   `json:"item_query,omitempty" yaml:"item_query,omitempty"`
}

// Matches reports whether r passes every active filter.
func (f FilterSelection) Matches(r EnrichedRecord) bool {
	if !f.From.IsZero() && r.Day.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && r.Day.After(f.To) {
		return false
	}
	if len(f.Users) > 0 && !containsString(f.Users, r.User) {
		return false
	}
	if q := strings.TrimSpace(f.ItemQuery); q != "" {
		if !strings.Contains(strings.ToLower(r.Item), strings.ToLower(q)) {
			return false
		}
	}
	return true
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
