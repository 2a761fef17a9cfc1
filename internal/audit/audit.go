// Package audit reports unit codes the quantity rules do not recognize.
package audit

import (
	"sort"

	"fjacquet/work-metrics/internal/models"
)

// UnrecognizedUnits returns the sorted distinct normalized unit codes of the
// records other than the piece and pallet units. An empty unit code is
// reported as "".
func UnrecognizedUnits(records []models.EnrichedRecord) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		if r.UnitNorm == models.UnitPiece || r.UnitNorm == models.UnitPallet {
			continue
		}
		seen[r.UnitNorm] = struct{}{}
	}

	units := make([]string, 0, len(seen))
	for u := range seen {
		units = append(units, u)
	}
	sort.Strings(units)
	return units
}
