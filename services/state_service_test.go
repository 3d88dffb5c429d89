package services

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicob/lotto-backend/models"
)

// pinnedState builds a StateService whose clock reads the given Dublin
// wall-clock time.
func pinnedState(t *testing.T, year int, month time.Month, day, hour, minute int) (*StateService, *ClockService) {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Dublin")
	require.NoError(t, err)

	now := time.Date(year, month, day, hour, minute, 0, 0, loc)
	clock, err := NewClockServiceAt("Europe/Dublin", now)
	require.NoError(t, err)

	return NewStateService(clock, 20, 2), clock
}

func mustParse(t *testing.T, clock *ClockService, key string) time.Time {
	t.Helper()
	parsed, err := clock.ParseDateKey(key)
	require.NoError(t, err)
	return parsed
}

func TestClassify_ExistingResultIsAvailable(t *testing.T) {
	state, clock := pinnedState(t, 2024, time.January, 10, 12, 0)

	requested := mustParse(t, clock, "2024-01-06")
	latest := mustParse(t, clock, "2024-01-06")

	assert.Equal(t, models.StateAvailable, state.Classify(requested, &latest, true))
}

func TestClassify_EmptyStoreIsNotFound(t *testing.T) {
	state, clock := pinnedState(t, 2024, time.January, 10, 12, 0)

	// With no latest draw there is nothing to reason about, even for
	// future dates.
	requested := mustParse(t, clock, "2024-02-07")
	assert.Equal(t, models.StateNotFound, state.Classify(requested, nil, false))
}

func TestClassify_FutureDateIsPending(t *testing.T) {
	// Scenario: requested is a Wednesday two weeks ahead, the archive
	// ends last Saturday.
	state, clock := pinnedState(t, 2024, time.January, 8, 12, 0)

	requested := mustParse(t, clock, "2024-01-24")
	latest := mustParse(t, clock, "2024-01-06")

	assert.Equal(t, models.StatePending, state.Classify(requested, &latest, false))
}

func TestClassify_TodayBeforeCutoffIsPending(t *testing.T) {
	// Wednesday 19:59 local, one minute before the draw. The supplied
	// exists flag wins over any physically present document.
	state, clock := pinnedState(t, 2024, time.January, 3, 19, 59)

	requested := mustParse(t, clock, "2024-01-03")
	latest := mustParse(t, clock, "2023-12-30")

	assert.Equal(t, models.StatePending, state.Classify(requested, &latest, false))
}

func TestClassify_TodayAfterCutoffFreshArchiveIsNotFound(t *testing.T) {
	state, clock := pinnedState(t, 2024, time.January, 3, 20, 1)

	requested := mustParse(t, clock, "2024-01-03")
	latest := mustParse(t, clock, "2024-01-02")

	assert.Equal(t, models.StateNotFound, state.Classify(requested, &latest, false))
}

func TestClassify_StaleArchiveIsPending(t *testing.T) {
	// The newest stored draw is three days old; a requested date after
	// it is assumed drawn but not yet ingested.
	state, clock := pinnedState(t, 2024, time.January, 9, 12, 0)

	requested := mustParse(t, clock, "2024-01-08")
	latest := mustParse(t, clock, "2024-01-06")

	assert.Equal(t, models.StatePending, state.Classify(requested, &latest, false))
}

func TestClassify_StaleArchiveButEarlierDateIsNotFound(t *testing.T) {
	state, clock := pinnedState(t, 2024, time.January, 9, 12, 0)

	// The archive is stale, but the requested date precedes its newest
	// entry, so the result should have existed already.
	requested := mustParse(t, clock, "2024-01-05")
	latest := mustParse(t, clock, "2024-01-06")

	assert.Equal(t, models.StateNotFound, state.Classify(requested, &latest, false))
}

func TestClassify_PastDateFreshArchiveIsNotFound(t *testing.T) {
	state, clock := pinnedState(t, 2024, time.January, 7, 12, 0)

	requested := mustParse(t, clock, "2024-01-05")
	latest := mustParse(t, clock, "2024-01-06")

	assert.Equal(t, models.StateNotFound, state.Classify(requested, &latest, false))
}

func TestClassify_Totality(t *testing.T) {
	state, clock := pinnedState(t, 2024, time.June, 15, 12, 0)
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, clock.Location())

	properties := gopter.NewProperties(nil)

	properties.Property("every (requested, latest, exists) triple classifies to exactly one state, available iff exists", prop.ForAll(
		func(requestedOffset, latestOffset int, hasLatest, exists bool) bool {
			requested := base.AddDate(0, 0, requestedOffset)

			var latest *time.Time
			if hasLatest {
				l := base.AddDate(0, 0, latestOffset)
				latest = &l
			}

			got := state.Classify(requested, latest, exists)

			if exists {
				return got == models.StateAvailable
			}
			return got == models.StatePending || got == models.StateNotFound
		},
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
