package menu

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match locates an actionable item that matched a search query.
type Match struct {
	Menu     int
	Item     int
	Label    string
	Distance int
}

// Find ranks actionable items whose labels fuzzily contain query. Closer
// matches come first; ties keep menu order.
func (b *Bar) Find(query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	var labels []string
	var refs [][2]int
	for i, m := range b.menus {
		for j, it := range m.Items {
			if !it.actionable() || it.Label == "" {
				continue
			}
			labels = append(labels, it.Label)
			refs = append(refs, [2]int{i, j})
		}
	}
	ranks := fuzzy.RankFindFold(query, labels)
	sort.SliceStable(ranks, func(a, b int) bool {
		if ranks[a].Distance != ranks[b].Distance {
			return ranks[a].Distance < ranks[b].Distance
		}
		return ranks[a].OriginalIndex < ranks[b].OriginalIndex
	})
	out := make([]Match, 0, len(ranks))
	for _, r := range ranks {
		ref := refs[r.OriginalIndex]
		out = append(out, Match{Menu: ref[0], Item: ref[1], Label: r.Target, Distance: r.Distance})
	}
	return out
}
