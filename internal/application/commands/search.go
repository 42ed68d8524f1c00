package commands

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"wemtool/internal/application"
	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// LookupResult wraps domain.IndexMatch with a relevance score
type LookupResult struct {
	domain.IndexMatch
	Score int
}

// LookupCommand finds mapping entries by ID or debug name
type LookupCommand struct {
	index ports.MappingIndex
	Query string
	Limit int
}

// NewLookupCommand creates a new LookupCommand
func NewLookupCommand(index ports.MappingIndex, query string, limit int) *LookupCommand {
	return &LookupCommand{
		index: index,
		Query: query,
		Limit: limit,
	}
}

// Execute runs the lookup. An exact ID or debug name short-circuits the
// search; otherwise substring matches are returned scored and sorted.
func (c *LookupCommand) Execute(ctx context.Context) ([]LookupResult, error) {
	query := strings.TrimSpace(c.Query)
	if err := application.ValidateRequired("query", query); err != nil {
		return nil, err
	}
	limit := c.Limit
	if limit <= 0 {
		limit = 20
	}

	if n, err := c.index.Count(); err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	} else if n == 0 {
		return nil, application.ErrIndexEmpty
	}

	exact, err := c.index.LookupID(query)
	if err != nil {
		return nil, err
	}
	if exact != nil {
		return []LookupResult{{IndexMatch: *exact, Score: exactScore}}, nil
	}

	byName, err := c.index.LookupDebugName(query)
	if err != nil {
		return nil, err
	}
	if len(byName) > 0 {
		results := make([]LookupResult, len(byName))
		for i, m := range byName {
			results[i] = LookupResult{IndexMatch: m, Score: exactScore}
		}
		return results, nil
	}

	if len(query) < 2 {
		return nil, nil
	}

	// Over-fetch so ranking can promote matches the index orders late
	matches, err := c.index.Search(query, limit*4)
	if err != nil {
		return nil, err
	}

	sorted := FuzzySort(matches, query)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

const exactScore = 1000

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && isSeparator(target[i-1]) {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '.', '-', '_', '/':
		return true
	}
	return false
}

// FuzzySort sorts index matches by relevance to the query. The file name
// of a debug name is scored on its own so "line_01" ranks Act_01/Line_01.wav
// as a prefix match.
func FuzzySort(matches []domain.IndexMatch, query string) []LookupResult {
	scored := make([]LookupResult, 0, len(matches))

	for _, m := range matches {
		s1 := FuzzyScore(m.ID, query)
		s2 := FuzzyScore(m.DebugName, query)
		s3 := FuzzyScore(path.Base(m.DebugName), query)

		best := max(s1, s2, s3)

		if best > 0 {
			scored = append(scored, LookupResult{
				IndexMatch: m,
				Score:      best,
			})
		}
	}

	// Sort by score descending
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
