package catalog

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
)

// Recommend returns the entries that fit within the given memory budget,
// ordered by category (chat, code, vision, embedding) and, within a category,
// largest first so the best model the machine can run leads the list.
func Recommend(entries []Entry, budget uint64) []Entry {
	var fit []Entry
	for _, e := range entries {
		if e.MinMemory <= budget {
			fit = append(fit, e)
		}
	}

	catRank := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		catRank[c] = i
	}

	sort.SliceStable(fit, func(i, j int) bool {
		if fit[i].Category != fit[j].Category {
			return catRank[fit[i].Category] < catRank[fit[j].Category]
		}
		return fit[i].MinMemory > fit[j].MinMemory
	})

	return fit
}

// Best returns the single largest entry of a category that fits the budget.
// The second return is false when nothing in the category fits.
func Best(entries []Entry, cat Category, budget uint64) (Entry, bool) {
	ranked := Recommend(ByCategory(entries, cat), budget)
	if len(ranked) == 0 {
		return Entry{}, false
	}
	return ranked[0], true
}

// FitNote returns a warning when a known model exceeds the memory budget,
// or an empty string when it fits or isn't in the catalog.
func FitNote(entries []Entry, ref string, budget uint64) string {
	e, ok := Lookup(entries, ref)
	if !ok || e.MinMemory <= budget {
		return ""
	}
	return fmt.Sprintf("%s needs about %s of memory but this machine has %s available for models",
		e.Name, humanize.IBytes(e.MinMemory), humanize.IBytes(budget))
}
