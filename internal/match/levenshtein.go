package match

// Levenshtein returns the edit distance between a and b: the minimum number of
// single-rune insertions, deletions or substitutions turning one into the
// other. Comparison is case sensitive.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	// Keep the row over the shorter string.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity maps the edit distance of a and b onto [0, 1], where 1 means
// identical: 1 - distance / max(len(a), len(b)), lengths in runes.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// NameDistance is the edit distance between two names after NormalizeName, so
// "darkBlue" and "dark-blue" are at distance 0.
func NameDistance(a, b string) int {
	return Levenshtein(NormalizeName(a), NormalizeName(b))
}
