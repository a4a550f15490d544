package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio is the normalised Levenshtein similarity of a and b in the range 0-100.
func Ratio(a, b string) float64 {
	la, lb := runeLen(a), runeLen(b)
	longest := max(la, lb)
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(dist)/float64(longest))
}

// PartialRatio scores the shorter string against its best-aligned window of the longer one,
// including windows that overhang either end.
func PartialRatio(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 100
		}
		return 0
	}

	s := string(short)
	best := 0.0
	consider := func(window []rune) bool {
		if r := Ratio(s, string(window)); r > best {
			best = r
		}
		return best == 100
	}

	m, n := len(short), len(long)
	for i := 0; i+m <= n; i++ {
		if consider(long[i : i+m]) {
			return best
		}
	}
	for k := 1; k < m && k <= n; k++ {
		if consider(long[:k]) || consider(long[n-k:]) {
			return best
		}
	}
	return best
}

// TokenSortRatio compares a and b with their tokens sorted, so token order is irrelevant.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

// TokenSetRatio compares the shared tokens of a and b against each side's full token set, so
// duplicated and extra tokens are tolerated.
func TokenSetRatio(a, b string) float64 {
	sect, diffAB, diffBA := tokenSets(a, b)
	if sect == "" && (diffAB == "" || diffBA == "") {
		if diffAB == diffBA {
			return 100
		}
		return 0
	}

	combinedAB := strings.TrimSpace(sect + " " + diffAB)
	combinedBA := strings.TrimSpace(sect + " " + diffBA)

	best := Ratio(combinedAB, combinedBA)
	if sect != "" {
		best = max(best, Ratio(sect, combinedAB), Ratio(sect, combinedBA))
	}
	return best
}

// PartialTokenRatio is 100 when a and b share a token, otherwise the best PartialRatio over
// the sorted tokens and the token differences.
func PartialTokenRatio(a, b string) float64 {
	sect, diffAB, diffBA := tokenSets(a, b)
	if sect != "" {
		return 100
	}

	best := PartialRatio(sortedTokens(a), sortedTokens(b))
	if diffAB != "" && diffBA != "" {
		best = max(best, PartialRatio(diffAB, diffBA))
	}
	return best
}

// WRatio blends the sequence, partial and token ratios. Every branch is a max with Ratio, so
// the composite never scores below plain sequence similarity.
func WRatio(a, b string) float64 {
	la, lb := runeLen(a), runeLen(b)
	if la == 0 || lb == 0 {
		if la == lb {
			return 100
		}
		return 0
	}

	lenRatio := float64(max(la, lb)) / float64(min(la, lb))
	score := Ratio(a, b)

	if lenRatio < 1.5 {
		return max(score, 0.95*max(TokenSortRatio(a, b), TokenSetRatio(a, b)))
	}

	partialScale := 0.9
	if lenRatio >= 8 {
		partialScale = 0.6
	}

	score = max(score, partialScale*PartialRatio(a, b))
	return max(score, 0.95*partialScale*PartialTokenRatio(a, b))
}

func runeLen(s string) int {
	return len([]rune(s))
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// tokenSets returns the sorted intersection of the token sets of a and b and the sorted
// tokens unique to each side, each joined with single spaces.
func tokenSets(a, b string) (sect, diffAB, diffBA string) {
	setA := tokenSet(a)
	setB := tokenSet(b)

	var shared, onlyA, onlyB []string
	for t := range setA {
		if _, ok := setB[t]; ok {
			shared = append(shared, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range setB {
		if _, ok := setA[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}

	sort.Strings(shared)
	sort.Strings(onlyA)
	sort.Strings(onlyB)
	return strings.Join(shared, " "), strings.Join(onlyA, " "), strings.Join(onlyB, " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		set[t] = struct{}{}
	}
	return set
}
