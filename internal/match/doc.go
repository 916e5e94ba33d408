// Package match ranks known names against a misspelt one, for "did you mean"
// hints.
//
// Key functions:
//   - Levenshtein: edit distance between strings
//   - NormalizeName: case and separator folding before comparison
//   - RankCandidates / Suggest: closest known names to a target
package match
