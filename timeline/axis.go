package timeline

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hexavax/hexavax-engine/consts"
)

const dateLayout = "2006-01-02"

// BuildDateAxis extracts the distinct dates of a sample list, sorted
// ascending by chronological value. Dates are parsed and compared as times,
// not strings, so a format change upstream cannot silently reorder the axis.
// Unparseable dates are dropped with a warning.
func BuildDateAxis(dates []string) []string {
	type parsed struct {
		raw string
		t   time.Time
	}

	seen := make(map[string]struct{}, len(dates))
	axis := make([]parsed, 0, len(dates))
	for _, d := range dates {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			log.WithField("prefix", "timeline").Warnf("dropping unparseable date %q: %s", d, err)
			continue
		}
		axis = append(axis, parsed{raw: d, t: t})
	}

	sort.Slice(axis, func(i, j int) bool { return axis[i].t.Before(axis[j].t) })

	out := make([]string, len(axis))
	for i, p := range axis {
		out[i] = p.raw
	}
	return out
}

// ResolveCurrentDate maps a scrub position to a concrete date. Out-of-range
// indexes yield "", never a panic and never a wrap-around.
func ResolveCurrentDate(axis []string, index int) string {
	if index < 0 || index >= len(axis) {
		return ""
	}
	return axis[index]
}

// InitialIndex is the default scrub position: the campaign start date's index
// when the axis contains it, otherwise 0.
func InitialIndex(axis []string) int {
	for i, d := range axis {
		if d == consts.CampaignStartDate {
			return i
		}
	}
	return 0
}

// RemapToLedgerYear substitutes the ledger's fixed historical year into a
// displayed date before a budget lookup. "2025-11-20" resolves against ledger
// date "2024-11-20"; dates already in the ledger year pass through unchanged.
func RemapToLedgerYear(date string) string {
	if len(date) < 4 {
		return date
	}
	if date[:4] == consts.BudgetLedgerYear {
		return date
	}
	return consts.BudgetLedgerYear + date[4:]
}
