package strip

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const containsBonus = 1 << 16

// Find returns the tab whose title best matches query. The shortest title
// containing the query wins; otherwise the smallest edit distance does, as
// long as at most half of the query has to change.
func (s *Strip) Find(query string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Item{}, false
	}

	best, bestScore := -1, 0
	for i, it := range s.items {
		title := strings.ToLower(it.Title)
		score := levenshtein.ComputeDistance(q, title)
		if strings.Contains(title, q) {
			score = len(title) - containsBonus
		}
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore > len([]rune(q))/2 {
		return Item{}, false
	}
	return s.items[best], true
}
