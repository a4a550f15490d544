package fuzzy

import "sort"

// Match is one scored candidate. Index is the candidate's position in the input slice.
type Match struct {
	Choice string
	Index  int
	Score  float64
}

// Extract scores every choice against query and returns at most limit matches scoring at
// least cutoff, best first. Equal scores keep their input order.
func Extract(query string, choices []string, scorer Scorer, limit int, cutoff float64) ([]Match, error) {
	if limit <= 0 || len(choices) == 0 {
		return []Match{}, nil
	}

	matches := make([]Match, 0, len(choices))
	for i, choice := range choices {
		score, err := scorer.Score(query, choice)
		if err != nil {
			return nil, err
		}
		if score >= cutoff {
			matches = append(matches, Match{Choice: choice, Index: i, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// ExtractOne returns the best match scoring at least cutoff. The boolean is false when no
// choice clears the cutoff.
func ExtractOne(query string, choices []string, scorer Scorer, cutoff float64) (Match, bool, error) {
	matches, err := Extract(query, choices, scorer, 1, cutoff)
	if err != nil || len(matches) == 0 {
		return Match{}, false, err
	}
	return matches[0], true, nil
}
