// Package search implements thread-color lookup over catalog entries. The
// CLI `palette find` command queries it.
package search

import (
	"sort"
	"strings"

	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// Result is one catalog entry matched by a query.
type Result struct {
	Item       models.PaletteItem
	Confidence float64
	Branch     string
}

// Options tunes a search.
type Options struct {
	// Threshold is the minimum confidence score (0-100) for results.
	Threshold float64
	// Limit restricts the maximum number of results returned. 0 means no
	// limit.
	Limit int
}

// Engine scores catalog entries against free-form queries: exact brand or
// number matches first, then keyword matches over the color names.
type Engine struct{}

// NewEngine creates a search engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Search finds catalog entries matching the query, sorted by confidence.
func (e *Engine) Search(query string, items []models.PaletteItem, opts Options) []Result {
	if len(items) == 0 || strings.TrimSpace(query) == "" {
		return nil
	}

	results := matchExact(query, items)
	results = append(results, matchKeywords(query, items)...)

	var filtered []Result
	for _, r := range results {
		if r.Confidence >= opts.Threshold {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Confidence > filtered[j].Confidence
	})

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}
	return filtered
}

// SearchOne finds the best match for the query.
func (e *Engine) SearchOne(query string, items []models.PaletteItem) (Result, bool) {
	results := e.Search(query, items, Options{Limit: 1})
	if len(results) == 0 {
		return Result{}, false
	}
	return results[0], true
}

// matchExact finds entries whose number, or "brand number" pair, equals the
// query.
func matchExact(query string, items []models.PaletteItem) []Result {
	var results []Result

	query = strings.TrimSpace(strings.ToLower(query))
	for _, item := range items {
		number := strings.ToLower(item.Number)
		combined := strings.TrimSpace(strings.ToLower(item.Brand + " " + item.Number))
		if number == query || combined == query {
			results = append(results, Result{Item: item, Confidence: 100, Branch: "exact"})
		}
	}
	return results
}

// matchKeywords scores entries by the share of query words appearing in the
// color name.
func matchKeywords(query string, items []models.PaletteItem) []Result {
	var results []Result

	queryWords := extractWords(strings.ToLower(query))
	if len(queryWords) == 0 {
		return results
	}

	for _, item := range items {
		nameWords := extractWords(strings.ToLower(item.Name))

		matchCount := 0
		for _, qw := range queryWords {
			for _, nw := range nameWords {
				if strings.Contains(nw, qw) || strings.Contains(qw, nw) {
					matchCount++
					break
				}
			}
		}

		if matchCount > 0 {
			confidence := float64(matchCount) / float64(len(queryWords)) * 100
			// Exact matches own the 100 mark.
			if confidence > 99 {
				confidence = 99
			}
			results = append(results, Result{Item: item, Confidence: confidence, Branch: "keyword"})
		}
	}
	return results
}

func extractWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == ',' || r == '.'
	})
}
