package paneltext

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// Contains reports whether needle is an element of list, using exact string
// equality. No normalization, trimming or case folding is performed. An
// empty list contains nothing.
//
// Lists are expected to be short (entity states, page names and the like);
// membership is a linear scan.
func Contains(needle string, list ...string) bool {
	if len(list) == 0 {
		return false
	}
	candidates := arraylist.New()
	for _, s := range list {
		candidates.Add(s)
	}
	return candidates.Contains(needle)
}
