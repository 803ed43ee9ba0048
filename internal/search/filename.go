package search

import (
	"strings"

	"github.com/Paintersrp/home/internal/refs"
)

// MaxResults bounds the number of matches returned by Search.
const MaxResults = 20

// Entry is a searchable catalog item.
type Entry struct {
	Ref         refs.NoteRef
	DisplayName string
}

// Search returns the entries whose display name contains query, ignoring
// case, in catalog order and capped at MaxResults. A blank query returns
// nil without reading entries.
func Search(entries []Entry, query string) []Entry {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	matches := make([]Entry, 0, MaxResults)
	for _, entry := range entries {
		if !strings.Contains(strings.ToLower(entry.DisplayName), term) {
			continue
		}
		matches = append(matches, entry)
		if len(matches) == MaxResults {
			break
		}
	}
	return matches
}
