// Package search ranks catalog entries against an incremental query.
package search

import (
	"sort"
	"strings"

	"launchbox/internal/models"
)

// MaxResults caps the result list length.
const MaxResults = 10

// Search scores every catalog entry against the query and returns the top
// matches, best first. An empty query yields no results rather than the
// full catalog.
//
// Scoring scans an entry's keywords in insertion order and stops at the
// first keyword containing the lowercased query. Later, possibly
// higher-weighted keywords are never considered; the first-match rule is a
// deliberate shortcut, and keyword insertion order encodes the intended
// priorities. The score favors, in order: prefix matches, keyword weight,
// keyword position, and finally how often the application has been
// launched.
func Search(query string, catalog models.Catalog) []models.Result {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	var results []models.Result
	for idx, app := range catalog {
		score := 0
		for i, kw := range app.Keywords {
			at := strings.Index(kw.Word, q)
			if at < 0 {
				continue
			}
			multiplier := 100
			if at == 0 {
				multiplier = 10000
			}
			// 100-i can go negative past 100 keywords; the
			// resulting non-positive score drops the entry.
			score = (100-i)*kw.Weight*multiplier + app.LaunchCount
			break
		}
		if score > 0 {
			results = append(results, models.Result{Index: idx, Score: score})
		}
	}

	// Stable sort: ties keep catalog order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}
