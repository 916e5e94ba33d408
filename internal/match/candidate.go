package match

import (
	"sort"
)

// Candidate is a known name ranked against a misspelt one.
type Candidate struct {
	Name string
	// Distance is the edit distance between the normalized names.
	Distance int
	// Score is the similarity of the raw names (0-1), used to break ties.
	Score float64
}

// CandidateList is a list of candidates, best first once ranked.
type CandidateList []Candidate

// RankCandidates ranks names by closeness to target. Exact matches are
// skipped; everything else is kept, sorted by normalized distance, then raw
// similarity, then name.
func RankCandidates(target string, names []string) CandidateList {
	var candidates CandidateList

	for _, name := range names {
		if name == target {
			continue
		}

		candidates = append(candidates, Candidate{
			Name:     name,
			Distance: NameDistance(target, name),
			Score:    Similarity(target, name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns the names within maxDistance of target, best first.
func Suggest(target string, names []string, maxDistance int) []string {
	var res []string

	for _, c := range RankCandidates(target, names) {
		if c.Distance > maxDistance {
			break
		}

		res = append(res, c.Name)
	}

	return res
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Distance != c[j].Distance {
		return c[i].Distance < c[j].Distance
	}

	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the closest candidate, or nil if there is none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the two best candidates are equally close.
func (c CandidateList) IsAmbiguous() bool {
	return len(c) > 1 && c[0].Distance == c[1].Distance
}
