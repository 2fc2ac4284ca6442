package timewin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/glon/errors"
	"github.com/grovetools/glon/pkg/scan"
)

func TestResolveAllTime(t *testing.T) {
	now := time.Now()

	w, err := Resolve("", now)
	require.NoError(t, err)
	assert.Equal(t, "all time", w.Label)
	assert.True(t, w.Cutoff.Equal(time.Unix(0, 0).UTC()))
}

func TestResolveDays(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	w, err := Resolve("30", now)
	require.NoError(t, err)
	assert.Equal(t, "last 30 days", w.Label)
	assert.True(t, w.Cutoff.Equal(now.Add(-30*24*time.Hour)))
}

func TestResolveHugeDayCountCoversAllTime(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	// A day count too large for time.Duration must not overflow into a
	// future cutoff that would exclude everything.
	w, err := Resolve("200000000", now)
	require.NoError(t, err)
	assert.Equal(t, "last 200000000 days", w.Label)
	assert.True(t, w.Cutoff.Equal(time.Unix(0, 0).UTC()))
	assert.True(t, w.Cutoff.Before(now))

	ancient := []scan.Project{
		{Owner: "alice", Repo: "tools", LastModified: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	assert.Len(t, Filter(ancient, w), 1)
}

func TestResolveLastWeek(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	w, err := Resolve("last week", now)
	require.NoError(t, err)
	assert.True(t, w.Cutoff.Equal(now.Add(-7*24*time.Hour)))
}

func TestResolveLastMonthClamps(t *testing.T) {
	// March 31 minus one month clamps to the last day of February.
	now := time.Date(2023, time.March, 31, 10, 30, 0, 0, time.UTC)

	w, err := Resolve("last month", now)
	require.NoError(t, err)
	assert.Equal(t, time.February, w.Cutoff.Month())
	assert.Equal(t, 28, w.Cutoff.Day())
	assert.Equal(t, 10, w.Cutoff.Hour())

	// Leap year February has 29 days.
	now = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	w, err = Resolve("last month", now)
	require.NoError(t, err)
	assert.Equal(t, 29, w.Cutoff.Day())

	// January minus one month crosses the year boundary.
	now = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	w, err = Resolve("last month", now)
	require.NoError(t, err)
	assert.Equal(t, 2023, w.Cutoff.Year())
	assert.Equal(t, time.December, w.Cutoff.Month())
}

func TestResolveLastYearClamps(t *testing.T) {
	// February 29 minus one year clamps to February 28.
	now := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	w, err := Resolve("last year", now)
	require.NoError(t, err)
	assert.Equal(t, 2023, w.Cutoff.Year())
	assert.Equal(t, time.February, w.Cutoff.Month())
	assert.Equal(t, 28, w.Cutoff.Day())
}

func TestResolveCaseInsensitivePhrases(t *testing.T) {
	now := time.Now()

	_, err := Resolve("Last Week", now)
	assert.NoError(t, err)
}

func TestResolveInvalid(t *testing.T) {
	now := time.Now()

	for _, expr := range []string{"last fortnight", "yesterday", "-5", "soon"} {
		_, err := Resolve(expr, now)
		require.Error(t, err, "expression %q", expr)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidWindow))
	}
}

func TestFilterWindowBoundary(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	w, err := Resolve("30", now)
	require.NoError(t, err)

	projects := []scan.Project{
		{Owner: "alice", Repo: "young", LastModified: now.Add(-29 * 24 * time.Hour)},
		{Owner: "alice", Repo: "old", LastModified: now.Add(-31 * 24 * time.Hour)},
	}

	result := Filter(projects, w)
	require.Len(t, result, 1)
	assert.Equal(t, "young", result[0].Repo)
}

func TestFilterSortsByRecency(t *testing.T) {
	now := time.Now()
	projects := []scan.Project{
		{Owner: "alice", Repo: "oldest", LastModified: now.Add(-3 * time.Hour)},
		{Owner: "bob", Repo: "newest", LastModified: now},
		{Owner: "carol", Repo: "middle", LastModified: now.Add(-1 * time.Hour)},
	}

	result := Filter(projects, All())
	require.Len(t, result, 3)
	assert.Equal(t, "newest", result[0].Repo)
	assert.Equal(t, "middle", result[1].Repo)
	assert.Equal(t, "oldest", result[2].Repo)
}

func TestFilterBreaksTiesLexically(t *testing.T) {
	now := time.Now()
	projects := []scan.Project{
		{Owner: "zed", Repo: "app", LastModified: now},
		{Owner: "alice", Repo: "tools", LastModified: now},
		{Owner: "alice", Repo: "app", LastModified: now},
	}

	first := Filter(projects, All())
	second := Filter(projects, All())

	require.Len(t, first, 3)
	assert.Equal(t, "alice", first[0].Owner)
	assert.Equal(t, "app", first[0].Repo)
	assert.Equal(t, "alice", first[1].Owner)
	assert.Equal(t, "tools", first[1].Repo)
	assert.Equal(t, "zed", first[2].Owner)

	// Idempotent across repeated calls.
	assert.Equal(t, first, second)
}
