package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidates(t *testing.T) {
	names := []string{"primary", "secondary", "tertiary", "danger", "primary-dark"}

	candidates := RankCandidates("primray", names)
	require.Len(t, candidates, len(names))

	best := candidates.Best()
	require.NotNil(t, best)
	assert.Equal(t, "primary", best.Name)
	assert.Equal(t, 2, best.Distance)

	for i := 1; i < len(candidates); i++ {
		assert.LessOrEqual(t, candidates[i-1].Distance, candidates[i].Distance)
	}

	assert.Len(t, candidates.Top(2), 2)
	assert.Len(t, candidates.Top(10), len(names))
}

func TestRankCandidates_SkipsExactMatch(t *testing.T) {
	candidates := RankCandidates("info", []string{"info", "inf0"})

	require.Len(t, candidates, 1)
	assert.Equal(t, "inf0", candidates[0].Name)
}

func TestRankCandidates_TieBreaks(t *testing.T) {
	// Both are one edit away after normalization; raw similarity then name
	// decides.
	candidates := RankCandidates("gren", []string{"green", "Green", "greens"})

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}

	assert.Equal(t, []string{"green", "Green", "greens"}, names)
	assert.True(t, candidates.IsAmbiguous())
}

func TestSuggest(t *testing.T) {
	names := []string{"foreground", "background", "primary", "brand-blue"}

	assert.Equal(t, []string{"foreground"}, Suggest("forground", names, 2))
	assert.Equal(t, []string{"brand-blue"}, Suggest("brandBlue", names, 2))
	assert.Empty(t, Suggest("#ff0000", names, 2))
	assert.Empty(t, Suggest("primary", names, 2), "exact names are not suggestions")
	assert.Nil(t, CandidateList{}.Best())
}
