package history_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/astmatch/internal/history"
	"github.com/oxhq/astmatch/internal/matcher"
)

func TestOpen_MemoryDatabaseMigrates(t *testing.T) {
	store, err := history.Open(":memory:", false)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.Recent(10)
	require.NoError(t, err)
	require.Empty(t, runs)
}

func TestRecord_RoundTripsMatchCount(t *testing.T) {
	store, err := history.Open(":memory:", false)
	require.NoError(t, err)
	defer store.Close()

	matches := []*matcher.PatternMatch{matcher.NewPatternMatch(nil, nil)}
	run, err := store.Record("c", "snippet.c", "int $x = 1;", matches)
	require.NoError(t, err)
	require.Equal(t, 1, run.MatchCount)

	recent, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, "snippet.c", recent[0].SourceFile)
}
