package clp

import (
	"os"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/amterp/color"
)

// maxSuggestionDistance is the largest edit distance still offered as a suggestion.
const maxSuggestionDistance = 2

// closestName returns the candidate nearest to name, or "" if none is within
// maxSuggestionDistance. Ties go to the lexicographically smaller candidate.
func closestName(name string, candidates []string) string {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range sorted {
		d := levenshtein.Distance(name, candidate, nil)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

func initializeColorFromEnv() {
	colorValue := strings.ToLower(strings.TrimSpace(os.Getenv("CLP_COLOR")))
	switch colorValue {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	default:
		// "", "auto" and anything else: let amterp/color decide based on tty
	}
}
