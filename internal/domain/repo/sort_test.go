package repo_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agoralab-core/internal/domain/repo"
)

func mustRecord(t testing.TB, org, name string, stars int) *repo.Record {
	t.Helper()
	orgID, err := repo.NewOrgID(org)
	require.NoError(t, err)
	record, err := repo.NewRecord(orgID, name, nil, stars, nil, "https://github.com/"+org+"/"+name)
	require.NoError(t, err)
	return record
}

func randomRecords(t testing.TB, rng *rand.Rand, n int) []*repo.Record {
	t.Helper()
	records := make([]*repo.Record, n)
	for i := range records {
		records[i] = mustRecord(t, "org", fmt.Sprintf("repo-%d", i), rng.IntN(20))
	}
	return records
}

func stars(records []*repo.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.StargazerCount()
	}
	return out
}

func TestSortByPopularity(t *testing.T) {
	records := []*repo.Record{
		mustRecord(t, "A", "small", 3),
		mustRecord(t, "A", "big", 10),
		mustRecord(t, "B", "mid", 7),
	}

	sorted := repo.SortByPopularity(records)

	assert.Equal(t, []int{10, 7, 3}, stars(sorted))
	assert.Equal(t, []int{3, 10, 7}, stars(records), "input must not be reordered")
}

func TestSortByPopularityIsStableOnTies(t *testing.T) {
	first := mustRecord(t, "A", "first", 5)
	second := mustRecord(t, "B", "second", 5)
	third := mustRecord(t, "A", "third", 5)
	top := mustRecord(t, "B", "top", 9)

	sorted := repo.SortByPopularity([]*repo.Record{first, second, top, third})

	require.Len(t, sorted, 4)
	assert.Same(t, top, sorted[0])
	assert.Same(t, first, sorted[1])
	assert.Same(t, second, sorted[2])
	assert.Same(t, third, sorted[3])
}

func TestSortByPopularityEmpty(t *testing.T) {
	assert.Empty(t, repo.SortByPopularity(nil))
}

func TestSortByPopularityNonIncreasing(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for round := 0; round < 50; round++ {
		records := randomRecords(t, rng, rng.IntN(40))
		sorted := repo.SortByPopularity(records)

		require.Len(t, sorted, len(records))
		for i := 1; i < len(sorted); i++ {
			if sorted[i-1].StargazerCount() < sorted[i].StargazerCount() {
				t.Fatalf("round %d: position %d (%d stars) precedes %d stars",
					round, i-1, sorted[i-1].StargazerCount(), sorted[i].StargazerCount())
			}
		}
	}
}
